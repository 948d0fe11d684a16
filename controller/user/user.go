package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mustafagenc/planly/controller"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/middleware"
	"github.com/mustafagenc/planly/services"
)

func UserController(router *gin.Engine, userService *services.UserService, tokens middleware.AccessTokenParser) {
	routes := router.Group("/user", middleware.AccessTokenMiddleware(tokens))
	{
		routes.GET("/profile", func(c *gin.Context) {
			GetProfile(c, userService)
		})
		routes.PUT("/profile", func(c *gin.Context) {
			UpdateProfileUser(c, userService)
		})
		routes.DELETE("/account", func(c *gin.Context) {
			DeleteUser(c, userService)
		})
	}
}

func GetProfile(c *gin.Context, userService *services.UserService) {
	profile, err := userService.Profile(c.Request.Context(), controller.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfileUser(c *gin.Context, userService *services.UserService) {
	var updateProfile dto.UpdateProfileRequest
	if !controller.BindJSON(c, &updateProfile) {
		return
	}
	if updateProfile.Name == nil && updateProfile.Password == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}

	profile, err := userService.UpdateProfile(c.Request.Context(), controller.UserID(c), updateProfile)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    profile,
	})
}

func DeleteUser(c *gin.Context, userService *services.UserService) {
	if err := userService.DeleteAccount(c.Request.Context(), controller.UserID(c)); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
