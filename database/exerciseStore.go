package database

import (
	"context"
	"errors"
	"fmt"

	"golang-exercisebackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrInvalidID is returned when an id is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("invalid exercise id")
	// ErrIncompleteRecord is returned when a write is missing a required field.
	ErrIncompleteRecord = errors.New("exercise record is missing a required field")
)

// ExerciseStore persists exercise records addressed by id.
//
// FindExerciseByID returns (nil, nil) when no record has the id.
// ReplaceExercise and DeleteExerciseByID return the number of records
// affected, 0 or 1.
type ExerciseStore interface {
	CreateExercise(ctx context.Context, input models.ExerciseInput) (models.Exercise, error)
	FindExercises(ctx context.Context, filter bson.M) ([]models.Exercise, error)
	FindExerciseByID(ctx context.Context, id string) (*models.Exercise, error)
	ReplaceExercise(ctx context.Context, id string, input models.ExerciseInput) (int64, error)
	DeleteExerciseByID(ctx context.Context, id string) (int64, error)
}

// ParseID converts an id path parameter into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return objID, nil
}

// MongoExerciseStore is the ExerciseStore backed by a MongoDB collection.
type MongoExerciseStore struct {
	collection *mongo.Collection
}

func NewMongoExerciseStore(collection *mongo.Collection) *MongoExerciseStore {
	return &MongoExerciseStore{collection: collection}
}

func (s *MongoExerciseStore) CreateExercise(ctx context.Context, input models.ExerciseInput) (models.Exercise, error) {
	if !input.Complete() {
		return models.Exercise{}, ErrIncompleteRecord
	}

	exercise := input.Exercise(primitive.NewObjectID())
	if _, err := s.collection.InsertOne(ctx, exercise); err != nil {
		return models.Exercise{}, fmt.Errorf("inserting exercise: %w", err)
	}
	return exercise, nil
}

func (s *MongoExerciseStore) FindExercises(ctx context.Context, filter bson.M) ([]models.Exercise, error) {
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("finding exercises: %w", err)
	}
	defer cursor.Close(ctx)

	exercises := []models.Exercise{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, fmt.Errorf("decoding exercises: %w", err)
	}
	return exercises, nil
}

func (s *MongoExerciseStore) FindExerciseByID(ctx context.Context, id string) (*models.Exercise, error) {
	objID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var exercise models.Exercise
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&exercise)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding exercise %s: %w", id, err)
	}
	return &exercise, nil
}

// ReplaceExercise overwrites every field of the record. The matched count is
// reported, so replaying an identical replace still returns 1.
func (s *MongoExerciseStore) ReplaceExercise(ctx context.Context, id string, input models.ExerciseInput) (int64, error) {
	objID, err := ParseID(id)
	if err != nil {
		return 0, err
	}
	if !input.Complete() {
		return 0, ErrIncompleteRecord
	}

	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": objID}, input.Exercise(objID))
	if err != nil {
		return 0, fmt.Errorf("replacing exercise %s: %w", id, err)
	}
	return result.MatchedCount, nil
}

func (s *MongoExerciseStore) DeleteExerciseByID(ctx context.Context, id string) (int64, error) {
	objID, err := ParseID(id)
	if err != nil {
		return 0, err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, fmt.Errorf("deleting exercise %s: %w", id, err)
	}
	return result.DeletedCount, nil
}
