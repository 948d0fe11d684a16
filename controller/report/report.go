package report

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mustafagenc/planly/controller"
	"github.com/mustafagenc/planly/middleware"
	"github.com/mustafagenc/planly/services"
)

func ReportController(router *gin.Engine, reportService *services.ReportService, tokens middleware.AccessTokenParser) {
	routes := router.Group("/reports", middleware.AccessTokenMiddleware(tokens))
	{
		routes.GET("/yearly/:year", func(c *gin.Context) {
			YearlyStats(c, reportService)
		})
		routes.GET("/yearly/:year/pdf", func(c *gin.Context) {
			YearlyPDF(c, reportService)
		})
		routes.GET("/monthly/:year/:month", func(c *gin.Context) {
			MonthlyReport(c, reportService)
		})
	}
}

func YearlyStats(c *gin.Context, reportService *services.ReportService) {
	year, ok := controller.IntParam(c, "year")
	if !ok {
		return
	}
	stats, err := reportService.YearlyStats(c.Request.Context(), controller.UserID(c), year)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func YearlyPDF(c *gin.Context, reportService *services.ReportService) {
	year, ok := controller.IntParam(c, "year")
	if !ok {
		return
	}
	stats, err := reportService.YearlyStats(c.Request.Context(), controller.UserID(c), year)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.RenderYearlyPDF(&buf, stats); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="planly-%d.pdf"`, year))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func MonthlyReport(c *gin.Context, reportService *services.ReportService) {
	year, ok := controller.IntParam(c, "year")
	if !ok {
		return
	}
	month, ok := controller.IntParam(c, "month")
	if !ok {
		return
	}
	report, err := reportService.MonthlyReport(c.Request.Context(), controller.UserID(c), year, time.Month(month))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
