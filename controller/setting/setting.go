package setting

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mustafagenc/planly/controller"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/middleware"
	"github.com/mustafagenc/planly/services"
)

// SettingController registers the settings routes. GET resolves :ref as a
// key, PUT and DELETE as a setting id.
func SettingController(router *gin.Engine, settingService *services.SettingService, tokens middleware.AccessTokenParser) {
	routes := router.Group("/settings", middleware.AccessTokenMiddleware(tokens))
	{
		routes.GET("", func(c *gin.Context) {
			ListSettings(c, settingService)
		})
		routes.POST("", func(c *gin.Context) {
			CreateSetting(c, settingService)
		})
		routes.GET("/:ref", func(c *gin.Context) {
			GetSettingByKey(c, settingService)
		})
		routes.PUT("/:ref", func(c *gin.Context) {
			UpdateSetting(c, settingService)
		})
		routes.DELETE("/:ref", func(c *gin.Context) {
			DeleteSetting(c, settingService)
		})
	}
}

func ListSettings(c *gin.Context, settingService *services.SettingService) {
	settings, err := settingService.List(c.Request.Context(), controller.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func GetSettingByKey(c *gin.Context, settingService *services.SettingService) {
	setting, err := settingService.GetByKey(c.Request.Context(), controller.UserID(c), c.Param("ref"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

func CreateSetting(c *gin.Context, settingService *services.SettingService) {
	var request dto.CreateSettingRequest
	if !controller.BindJSON(c, &request) {
		return
	}
	setting, err := settingService.Create(c.Request.Context(), controller.UserID(c), request)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, setting)
}

func UpdateSetting(c *gin.Context, settingService *services.SettingService) {
	var request dto.UpdateSettingRequest
	if !controller.BindJSON(c, &request) {
		return
	}
	setting, err := settingService.Update(c.Request.Context(), controller.UserID(c), c.Param("ref"), request)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

func DeleteSetting(c *gin.Context, settingService *services.SettingService) {
	if err := settingService.Delete(c.Request.Context(), controller.UserID(c), c.Param("ref")); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Setting deleted successfully"})
}
