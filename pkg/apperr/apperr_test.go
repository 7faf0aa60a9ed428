package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeMatching(t *testing.T) {
	err := E(CodeNotFound, "Cart not found")
	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeForbidden))
	assert.False(t, Is(errors.New("plain"), CodeNotFound))
	assert.Nil(t, As(errors.New("plain")))
}

func TestWrapKeepsCauseOutOfMessage(t *testing.T) {
	cause := errors.New("duplicate key value")
	err := Wrap(CodeTransactionFailure, "Failed to place order", cause)

	assert.True(t, Is(err, CodeTransactionFailure))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to place order", As(err).Msg)
}

func TestWrappedErrorSurvivesFmtWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", E(CodeInvalidState, "Cart is empty"))
	assert.True(t, Is(err, CodeInvalidState))
}
