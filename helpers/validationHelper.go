package helpers

import (
	"fmt"
	"regexp"

	"golang-exercisebackend/models"

	"github.com/go-playground/validator/v10"
)

var datePattern = regexp.MustCompile(`^\d\d-\d\d-\d\d$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// MM-DD-YY, digits only; the calendar values are not checked
	if err := v.RegisterValidation("exercisedate", func(fl validator.FieldLevel) bool {
		return datePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidationRule checks one field of an exercise input against a validator
// tag.
type ValidationRule struct {
	Field      string
	Constraint string
	Value      func(in models.ExerciseInput) interface{}
}

// ExerciseRules is the ordered rule list for create and replace bodies.
// Field checks run first, then the date pattern.
var ExerciseRules = []ValidationRule{
	{Field: "name", Constraint: "required,min=1", Value: func(in models.ExerciseInput) interface{} { return in.Name }},
	{Field: "reps", Constraint: "required,gt=0", Value: func(in models.ExerciseInput) interface{} { return in.Reps }},
	{Field: "weight", Constraint: "required,gt=0", Value: func(in models.ExerciseInput) interface{} { return in.Weight }},
	{Field: "unit", Constraint: "required,oneof=kgs lbs", Value: func(in models.ExerciseInput) interface{} { return in.Unit }},
	{Field: "date", Constraint: "required,exercisedate", Value: func(in models.ExerciseInput) interface{} { return in.Date }},
}

// ValidationError names the first rule an input failed.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s failed %q", e.Field, e.Constraint)
}

// ValidateExercise runs rules in order and stops at the first failure.
func ValidateExercise(in models.ExerciseInput, rules []ValidationRule) error {
	for _, rule := range rules {
		if err := validate.Var(rule.Value(in), rule.Constraint); err != nil {
			return &ValidationError{Field: rule.Field, Constraint: rule.Constraint}
		}
	}
	return nil
}
