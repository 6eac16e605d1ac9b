package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang-exercisebackend/database"
	"golang-exercisebackend/helpers"
	"golang-exercisebackend/middleware"
	"golang-exercisebackend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// SnapshotUploader stores an exercise snapshot and returns its object key.
type SnapshotUploader interface {
	Upload(ctx context.Context, exercises []models.Exercise) (string, error)
}

// ExerciseController serves the /exercises API on top of an ExerciseStore.
type ExerciseController struct {
	store    database.ExerciseStore
	uploader SnapshotUploader
	now      func() time.Time
}

func NewExerciseController(store database.ExerciseStore) *ExerciseController {
	return &ExerciseController{store: store, now: time.Now}
}

// WithSnapshotUploader enables POST /exercises/export.
func (ec *ExerciseController) WithSnapshotUploader(uploader SnapshotUploader) *ExerciseController {
	ec.uploader = uploader
	return ec
}

// SnapshotsEnabled reports whether an uploader is configured.
func (ec *ExerciseController) SnapshotsEnabled() bool {
	return ec.uploader != nil
}

// bindExercise decodes and validates a create or replace body. Any failure
// is reported to the client without naming the field.
func bindExercise(c *gin.Context) (models.ExerciseInput, bool) {
	var input models.ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		return input, false
	}
	if err := helpers.ValidateExercise(input, helpers.ExerciseRules); err != nil {
		return input, false
	}
	return input, true
}

func logFailure(c *gin.Context, action string, err error) {
	log.Printf("[%s] %s failed: %v", middleware.GetRequestID(c), action, err)
}

func (ec *ExerciseController) CreateExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		input, ok := bindExercise(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"Error": "Invalid request"})
			return
		}

		exercise, err := ec.store.CreateExercise(c.Request.Context(), input)
		if err != nil {
			logFailure(c, "create exercise", err)
			c.JSON(http.StatusBadRequest, gin.H{"Error": "Invalid request"})
			return
		}
		c.JSON(http.StatusCreated, exercise)
	}
}

// GetExercises lists every exercise. A store failure is answered with an
// error body but status 200, which existing clients rely on.
func (ec *ExerciseController) GetExercises() gin.HandlerFunc {
	return func(c *gin.Context) {
		exercises, err := ec.store.FindExercises(c.Request.Context(), bson.M{})
		if err != nil {
			logFailure(c, "list exercises", err)
			c.JSON(http.StatusOK, gin.H{"Error": "Invalid request"})
			return
		}
		c.JSON(http.StatusOK, exercises)
	}
}

func (ec *ExerciseController) GetExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		exercise, err := ec.store.FindExerciseByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			logFailure(c, "get exercise", err)
			c.JSON(http.StatusBadRequest, gin.H{"Error": "Request failed"})
			return
		}
		if exercise == nil {
			c.JSON(http.StatusNotFound, gin.H{"Error": "Not found"})
			return
		}
		c.JSON(http.StatusOK, exercise)
	}
}

// UpdateExercise replaces the whole record and echoes the submitted fields
// with the path id.
func (ec *ExerciseController) UpdateExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		input, ok := bindExercise(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"Error": "Invalid request"})
			return
		}

		exerciseID := c.Param("id")
		replaced, err := ec.store.ReplaceExercise(c.Request.Context(), exerciseID, input)
		if err != nil {
			logFailure(c, "replace exercise", err)
			c.JSON(http.StatusBadRequest, gin.H{"Error": "Invalid Request"})
			return
		}
		if replaced != 1 {
			c.JSON(http.StatusNotFound, gin.H{"Error": "Not Found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"_id":    exerciseID,
			"name":   *input.Name,
			"reps":   *input.Reps,
			"weight": *input.Weight,
			"unit":   *input.Unit,
			"date":   *input.Date,
		})
	}
}

// DeleteExercise answers a store failure with status 200 and a lower-case
// "error" key, matching what existing clients see.
func (ec *ExerciseController) DeleteExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := ec.store.DeleteExerciseByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			logFailure(c, "delete exercise", err)
			c.JSON(http.StatusOK, gin.H{"error": "Request failed"})
			return
		}
		if deleted != 1 {
			c.JSON(http.StatusNotFound, gin.H{"Error": "Not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ExportExercises downloads every exercise as a JSON snapshot.
func (ec *ExerciseController) ExportExercises() gin.HandlerFunc {
	return func(c *gin.Context) {
		exercises, err := ec.store.FindExercises(c.Request.Context(), bson.M{})
		if err != nil {
			logFailure(c, "export exercises", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed"})
			return
		}

		at := ec.now()
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, helpers.SnapshotFileName(at)))
		c.JSON(http.StatusOK, helpers.NewSnapshot(exercises, at))
	}
}

// UploadSnapshot writes a JSON snapshot of every exercise to object storage.
func (ec *ExerciseController) UploadSnapshot() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ec.uploader == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Snapshot upload is not configured"})
			return
		}

		exercises, err := ec.store.FindExercises(c.Request.Context(), bson.M{})
		if err != nil {
			logFailure(c, "snapshot exercises", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed"})
			return
		}

		key, err := ec.uploader.Upload(c.Request.Context(), exercises)
		if err != nil {
			logFailure(c, "upload snapshot", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload snapshot"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"key": key, "count": len(exercises)})
	}
}
