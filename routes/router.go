package routes

import (
	controller "golang-exercisebackend/controllers"
	middleware "golang-exercisebackend/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with logging, recovery, request ids and CORS.
func NewRouter(ec *controller.ExerciseController, allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(allowOrigins))

	ExerciseRoutes(router.Group("/"), ec)
	return router
}
