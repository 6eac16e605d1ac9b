package database

import (
	"context"
	"os"
	"testing"
	"time"

	"golang-exercisebackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()

	got, err := ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, bad := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", id.Hex() + "0"} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, ErrInvalidID, "id %q", bad)
	}
}

// newTestMongoStore connects to MONGODB_TEST_URI and returns a store on a
// throwaway collection that is dropped after the test.
func newTestMongoStore(t *testing.T) *MongoExerciseStore {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := DBInstance(ctx, uri)
	require.NoError(t, err)

	collection := OpenCollection(client, "exercises_test", "exercises_"+primitive.NewObjectID().Hex())
	t.Cleanup(func() {
		ctx := context.Background()
		_ = collection.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return NewMongoExerciseStore(collection)
}

func TestMongoStoreLifecycle(t *testing.T) {
	store := newTestMongoStore(t)
	ctx := context.Background()

	all, err := store.FindExercises(ctx, bson.M{})
	require.NoError(t, err)
	assert.Empty(t, all)

	created, err := store.CreateExercise(ctx, squats())
	require.NoError(t, err)

	got, err := store.FindExerciseByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)

	replacement := squats()
	replacement.Weight = intPtr(120)
	n, err := store.ReplaceExercise(ctx, created.ID.Hex(), replacement)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = store.ReplaceExercise(ctx, created.ID.Hex(), replacement)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err = store.FindExerciseByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 120, got.Weight)

	lbs, err := store.FindExercises(ctx, bson.M{"unit": "lbs"})
	require.NoError(t, err)
	assert.Len(t, lbs, 1)

	n, err = store.DeleteExerciseByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = store.DeleteExerciseByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	got, err = store.FindExerciseByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMongoStoreRejectsBadInput(t *testing.T) {
	store := newTestMongoStore(t)
	ctx := context.Background()

	_, err := store.CreateExercise(ctx, models.ExerciseInput{Name: strPtr("Squats")})
	require.ErrorIs(t, err, ErrIncompleteRecord)

	_, err = store.FindExerciseByID(ctx, "nope")
	require.ErrorIs(t, err, ErrInvalidID)

	n, err := store.ReplaceExercise(ctx, primitive.NewObjectID().Hex(), squats())
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}
