package definition

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mustafagenc/planly/controller"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/middleware"
	"github.com/mustafagenc/planly/services"
)

// DefinitionController serves projects, units and people under one route
// family keyed by :kind.
func DefinitionController(router *gin.Engine, definitionService *services.DefinitionService, tokens middleware.AccessTokenParser) {
	routes := router.Group("/definitions/:kind", middleware.AccessTokenMiddleware(tokens))
	{
		routes.GET("", func(c *gin.Context) {
			ListDefinitions(c, definitionService)
		})
		routes.POST("", func(c *gin.Context) {
			CreateDefinition(c, definitionService)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			RenameDefinition(c, definitionService)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteDefinition(c, definitionService)
		})
	}
}

func ListDefinitions(c *gin.Context, definitionService *services.DefinitionService) {
	defs, err := definitionService.List(c.Request.Context(), controller.UserID(c), c.Param("kind"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, defs)
}

func CreateDefinition(c *gin.Context, definitionService *services.DefinitionService) {
	var request dto.DefinitionRequest
	if !controller.BindJSON(c, &request) {
		return
	}
	def, err := definitionService.Create(c.Request.Context(), controller.UserID(c), c.Param("kind"), request)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, def)
}

func RenameDefinition(c *gin.Context, definitionService *services.DefinitionService) {
	var request dto.DefinitionRequest
	if !controller.BindJSON(c, &request) {
		return
	}
	def, err := definitionService.Rename(c.Request.Context(), controller.UserID(c), c.Param("kind"), c.Param("id"), request)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, def)
}

func DeleteDefinition(c *gin.Context, definitionService *services.DefinitionService) {
	if err := definitionService.Delete(c.Request.Context(), controller.UserID(c), c.Param("kind"), c.Param("id")); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
