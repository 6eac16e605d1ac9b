package database

import (
	"context"
	"fmt"
	"sync"

	"golang-exercisebackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryExerciseStore keeps exercise records in process memory. Ids use the
// same ObjectID format as the MongoDB store.
type MemoryExerciseStore struct {
	mu        sync.RWMutex
	exercises map[primitive.ObjectID]models.Exercise
	order     []primitive.ObjectID
}

func NewMemoryExerciseStore() *MemoryExerciseStore {
	return &MemoryExerciseStore{
		exercises: make(map[primitive.ObjectID]models.Exercise),
	}
}

func (s *MemoryExerciseStore) CreateExercise(ctx context.Context, input models.ExerciseInput) (models.Exercise, error) {
	if !input.Complete() {
		return models.Exercise{}, ErrIncompleteRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exercise := input.Exercise(primitive.NewObjectID())
	s.exercises[exercise.ID] = exercise
	s.order = append(s.order, exercise.ID)
	return exercise, nil
}

// FindExercises returns records in insertion order. Filter keys are matched
// by equality against the bson field names of models.Exercise.
func (s *MemoryExerciseStore) FindExercises(ctx context.Context, filter bson.M) ([]models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exercises := []models.Exercise{}
	for _, id := range s.order {
		exercise := s.exercises[id]
		ok, err := matches(exercise, filter)
		if err != nil {
			return nil, err
		}
		if ok {
			exercises = append(exercises, exercise)
		}
	}
	return exercises, nil
}

func (s *MemoryExerciseStore) FindExerciseByID(ctx context.Context, id string) (*models.Exercise, error) {
	objID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	exercise, ok := s.exercises[objID]
	if !ok {
		return nil, nil
	}
	return &exercise, nil
}

func (s *MemoryExerciseStore) ReplaceExercise(ctx context.Context, id string, input models.ExerciseInput) (int64, error) {
	objID, err := ParseID(id)
	if err != nil {
		return 0, err
	}
	if !input.Complete() {
		return 0, ErrIncompleteRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.exercises[objID]; !ok {
		return 0, nil
	}
	s.exercises[objID] = input.Exercise(objID)
	return 1, nil
}

func (s *MemoryExerciseStore) DeleteExerciseByID(ctx context.Context, id string) (int64, error) {
	objID, err := ParseID(id)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.exercises[objID]; !ok {
		return 0, nil
	}
	delete(s.exercises, objID)
	for i, existing := range s.order {
		if existing == objID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func matches(exercise models.Exercise, filter bson.M) (bool, error) {
	for key, want := range filter {
		var got interface{}
		switch key {
		case "_id":
			got = exercise.ID
		case "name":
			got = exercise.Name
		case "reps":
			got = exercise.Reps
		case "weight":
			got = exercise.Weight
		case "unit":
			got = string(exercise.Unit)
		case "date":
			got = exercise.Date
		default:
			return false, fmt.Errorf("unsupported filter field %q", key)
		}
		if u, ok := want.(models.Unit); ok {
			want = string(u)
		}
		if got != want {
			return false, nil
		}
	}
	return true, nil
}
