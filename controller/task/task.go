package task

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mustafagenc/planly/controller"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/middleware"
	"github.com/mustafagenc/planly/services"
)

func TaskController(router *gin.Engine, taskService *services.TaskService, tokens middleware.AccessTokenParser) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware(tokens))
	{
		routes.GET("", func(c *gin.Context) {
			ListTasks(c, taskService)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, taskService)
		})
		routes.PUT("/order", func(c *gin.Context) {
			ReorderTasks(c, taskService)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetTask(c, taskService)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateTask(c, taskService)
		})
		routes.PATCH("/:id/status", func(c *gin.Context) {
			UpdateTaskStatus(c, taskService)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteTask(c, taskService)
		})
	}
}

func ListTasks(c *gin.Context, taskService *services.TaskService) {
	var query dto.TaskQuery
	if !controller.BindQuery(c, &query) {
		return
	}
	tasks, err := taskService.ListTasks(c.Request.Context(), controller.UserID(c), query)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func CreateTask(c *gin.Context, taskService *services.TaskService) {
	var request dto.CreateTaskRequest
	if !controller.BindJSON(c, &request) {
		return
	}
	task, err := taskService.CreateTask(c.Request.Context(), controller.UserID(c), request)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func GetTask(c *gin.Context, taskService *services.TaskService) {
	task, err := taskService.GetTask(c.Request.Context(), controller.UserID(c), c.Param("id"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func UpdateTask(c *gin.Context, taskService *services.TaskService) {
	var request dto.UpdateTaskRequest
	if !controller.BindJSON(c, &request) {
		return
	}
	task, err := taskService.UpdateTask(c.Request.Context(), controller.UserID(c), c.Param("id"), request)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func UpdateTaskStatus(c *gin.Context, taskService *services.TaskService) {
	var request dto.UpdateTaskStatusRequest
	if !controller.BindJSON(c, &request) {
		return
	}
	task, err := taskService.UpdateTaskStatus(c.Request.Context(), controller.UserID(c), c.Param("id"), request)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func DeleteTask(c *gin.Context, taskService *services.TaskService) {
	if err := taskService.DeleteTask(c.Request.Context(), controller.UserID(c), c.Param("id")); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// ReorderTasks applies the whole batch or nothing.
func ReorderTasks(c *gin.Context, taskService *services.TaskService) {
	var request dto.ReorderTasksRequest
	if !controller.BindJSON(c, &request) {
		return
	}
	if err := taskService.ReorderTasks(c.Request.Context(), controller.UserID(c), request); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tasks reordered successfully"})
}
