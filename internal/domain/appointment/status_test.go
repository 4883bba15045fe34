package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(StatusPending))
	assert.True(t, IsValid(StatusCompleted))
	assert.True(t, IsValid(StatusCancelled))
	assert.False(t, IsValid(Status("archived")))
	assert.False(t, IsValid(Status("")))
}

func TestTransitionGuards(t *testing.T) {
	assert.NoError(t, CanComplete(StatusPending))
	assert.Error(t, CanComplete(StatusCompleted))
	assert.Error(t, CanComplete(StatusCancelled))

	assert.NoError(t, CanCancel(StatusPending))
	assert.Error(t, CanCancel(StatusCompleted))
	assert.Error(t, CanCancel(StatusCancelled))

	assert.NoError(t, CanReopen(StatusCompleted))
	assert.Error(t, CanReopen(StatusPending))
	assert.Error(t, CanReopen(StatusCancelled))
}
