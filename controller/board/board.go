package board

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mustafagenc/planly/controller"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/middleware"
	"github.com/mustafagenc/planly/services"
)

// BoardController serves the kanban view of the caller's tasks.
func BoardController(router *gin.Engine, taskService *services.TaskService, tokens middleware.AccessTokenParser) {
	router.GET("/tasks/board", middleware.AccessTokenMiddleware(tokens), func(c *gin.Context) {
		GetBoard(c, taskService)
	})
}

func GetBoard(c *gin.Context, taskService *services.TaskService) {
	var query dto.TaskQuery
	if !controller.BindQuery(c, &query) {
		return
	}

	board, err := taskService.Board(c.Request.Context(), controller.UserID(c), query)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}
