package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mustafagenc/planly/controller"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/services"
)

func SignUpController(router *gin.Engine, authService *services.AuthService) {
	router.POST("/auth/signup", func(c *gin.Context) {
		Signup(c, authService)
	})
	router.GET("/auth/setup", func(c *gin.Context) {
		Setup(c, authService)
	})
}

func Signup(c *gin.Context, authService *services.AuthService) {
	var request dto.SignupRequest
	if !controller.BindJSON(c, &request) {
		return
	}

	user, err := authService.Register(c.Request.Context(), request)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"id":      user.UserID,
		"role":    user.Role,
	})
}

// Setup tells a fresh client whether the first account still has to be created.
func Setup(c *gin.Context, authService *services.AuthService) {
	hasUser, err := authService.HasAnyUser(c.Request.Context())
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"needsSetup": !hasUser})
}
