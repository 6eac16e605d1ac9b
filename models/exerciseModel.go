package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Unit string

const (
	UnitKgs Unit = "kgs"
	UnitLbs Unit = "lbs"
)

// Exercise is a single logged set of an exercise.
type Exercise struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name"`
	Reps   int                `json:"reps" bson:"reps"`
	Weight int                `json:"weight" bson:"weight"`
	Unit   Unit               `json:"unit" bson:"unit"`
	Date   string             `json:"date" bson:"date"`
}

// ExerciseInput is the request body for create and replace. Fields are
// pointers so a missing field can be told apart from a zero value.
type ExerciseInput struct {
	Name   *string `json:"name"`
	Reps   *int    `json:"reps"`
	Weight *int    `json:"weight"`
	Unit   *string `json:"unit"`
	Date   *string `json:"date"`
}

// Complete reports whether every field of the input is present.
func (in ExerciseInput) Complete() bool {
	return in.Name != nil && in.Reps != nil && in.Weight != nil && in.Unit != nil && in.Date != nil
}

// Exercise builds the stored record for the given id. Callers must check
// Complete first.
func (in ExerciseInput) Exercise(id primitive.ObjectID) Exercise {
	return Exercise{
		ID:     id,
		Name:   *in.Name,
		Reps:   *in.Reps,
		Weight: *in.Weight,
		Unit:   Unit(*in.Unit),
		Date:   *in.Date,
	}
}

// ExerciseSnapshot is the document written by the export endpoints.
type ExerciseSnapshot struct {
	ExportedAt string     `json:"exported_at"`
	Count      int        `json:"count"`
	Exercises  []Exercise `json:"exercises"`
}
