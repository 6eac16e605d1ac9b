package routes

import (
	controller "golang-exercisebackend/controllers"

	"github.com/gin-gonic/gin"
)

func ExerciseRoutes(incomingRoutes *gin.RouterGroup, ec *controller.ExerciseController) {
	incomingRoutes.POST("/exercises", ec.CreateExercise())
	incomingRoutes.GET("/exercises", ec.GetExercises())
	incomingRoutes.GET("/exercises/export", ec.ExportExercises())
	if ec.SnapshotsEnabled() {
		incomingRoutes.POST("/exercises/export", ec.UploadSnapshot())
	}
	incomingRoutes.GET("/exercises/:id", ec.GetExercise())
	incomingRoutes.PUT("/exercises/:id", ec.UpdateExercise())
	incomingRoutes.DELETE("/exercises/:id", ec.DeleteExercise())
}
