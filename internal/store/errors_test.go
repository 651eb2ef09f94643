package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrors(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrPropertyNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup failed: %w", ErrUserNotFound)))
	assert.False(t, IsNotFoundError(ErrEmailExists))
	assert.False(t, IsNotFoundError(errors.New("boom")))

	// Entity-specific errors stay distinguishable from each other.
	assert.False(t, errors.Is(ErrUserNotFound, ErrPropertyNotFound))
}

func TestDuplicateErrors(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(ErrAlreadyInterested))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert failed: %w", ErrAlreadyInterested)))
	assert.False(t, IsDuplicateError(ErrNotFound))

	assert.False(t, errors.Is(ErrEmailExists, ErrAlreadyInterested))
}
