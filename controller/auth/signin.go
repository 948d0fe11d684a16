package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mustafagenc/planly/controller"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/middleware"
	"github.com/mustafagenc/planly/services"
)

func SignInController(router *gin.Engine, authService *services.AuthService, tokens middleware.AccessTokenParser) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, authService)
	})
	router.POST("/auth/refresh", func(c *gin.Context) {
		Refresh(c, authService)
	})
	router.POST("/auth/signout", middleware.AccessTokenMiddleware(tokens), func(c *gin.Context) {
		Signout(c, authService)
	})
}

func Signin(c *gin.Context, authService *services.AuthService) {
	var request dto.SigninRequest
	if !controller.BindJSON(c, &request) {
		return
	}

	tokens, err := authService.Login(c.Request.Context(), request)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"token":   tokens,
	})
}

func Refresh(c *gin.Context, authService *services.AuthService) {
	var request dto.RefreshRequest
	if !controller.BindJSON(c, &request) {
		return
	}

	tokens, err := authService.Refresh(c.Request.Context(), request.RefreshToken)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokens})
}

// Signout forgets the stored refresh token; access tokens expire on their own.
func Signout(c *gin.Context, authService *services.AuthService) {
	if err := authService.Logout(c.Request.Context(), controller.UserID(c)); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout Successfully"})
}
