package worklog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mustafagenc/planly/controller"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/middleware"
	"github.com/mustafagenc/planly/services"
)

func WorkLogController(router *gin.Engine, workLogService *services.WorkLogService, tokens middleware.AccessTokenParser) {
	routes := router.Group("/worklogs", middleware.AccessTokenMiddleware(tokens))
	{
		routes.GET("", func(c *gin.Context) {
			ListWorkLogs(c, workLogService)
		})
		routes.POST("", func(c *gin.Context) {
			CreateWorkLog(c, workLogService)
		})
		routes.POST("/batch", func(c *gin.Context) {
			CreateWorkLogBatch(c, workLogService)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateWorkLog(c, workLogService)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteWorkLog(c, workLogService)
		})
	}
}

func ListWorkLogs(c *gin.Context, workLogService *services.WorkLogService) {
	var query dto.WorkLogQuery
	if !controller.BindQuery(c, &query) {
		return
	}
	logs, err := workLogService.ListWorkLogs(c.Request.Context(), controller.UserID(c), query)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func CreateWorkLog(c *gin.Context, workLogService *services.WorkLogService) {
	var request dto.CreateWorkLogRequest
	if !controller.BindJSON(c, &request) {
		return
	}
	log, err := workLogService.CreateWorkLog(c.Request.Context(), controller.UserID(c), request)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

// CreateWorkLogBatch logs one day per business day in the range.
func CreateWorkLogBatch(c *gin.Context, workLogService *services.WorkLogService) {
	var request dto.CreateWorkLogBatchRequest
	if !controller.BindJSON(c, &request) {
		return
	}
	logs, err := workLogService.CreateWorkLogBatch(c.Request.Context(), controller.UserID(c), request)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"count": len(logs),
		"logs":  logs,
	})
}

func UpdateWorkLog(c *gin.Context, workLogService *services.WorkLogService) {
	var request dto.UpdateWorkLogRequest
	if !controller.BindJSON(c, &request) {
		return
	}
	log, err := workLogService.UpdateWorkLog(c.Request.Context(), controller.UserID(c), c.Param("id"), request)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func DeleteWorkLog(c *gin.Context, workLogService *services.WorkLogService) {
	log, err := workLogService.DeleteWorkLog(c.Request.Context(), controller.UserID(c), c.Param("id"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Work log deleted successfully",
		"deleted": log,
	})
}
