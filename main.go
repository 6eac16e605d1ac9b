package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	config "golang-exercisebackend/config"
	controller "golang-exercisebackend/controllers"
	database "golang-exercisebackend/database"
	helpers "golang-exercisebackend/helpers"
	routes "golang-exercisebackend/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store database.ExerciseStore
	switch cfg.Store {
	case config.StoreMemory:
		store = database.NewMemoryExerciseStore()
		log.Print("Using in-memory exercise store")
	default:
		client, err := database.DBInstance(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
			}
		}()
		collection := database.OpenCollection(client, cfg.MongoDatabase, cfg.MongoCollection)
		store = database.NewMongoExerciseStore(collection)
	}

	exerciseController := controller.NewExerciseController(store)
	if cfg.SnapshotsEnabled() {
		s3Client, err := helpers.NewS3Client(ctx, cfg.Spaces)
		if err != nil {
			log.Fatalf("Error creating S3 client: %v", err)
		}
		exerciseController.WithSnapshotUploader(helpers.NewSnapshotUploader(s3Client, cfg.Spaces.Bucket))
	}

	router := routes.NewRouter(exerciseController, cfg.AllowOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server listening on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Print("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
