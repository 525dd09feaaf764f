package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(Validation("x")))
	assert.Equal(t, http.StatusBadRequest, Status(State("x")))
	assert.Equal(t, http.StatusConflict, Status(Conflict("x")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("x")))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
}

func TestStatus_Wrapped(t *testing.T) {
	err := fmt.Errorf("submit: %w", Conflict("truck number already exists"))
	assert.Equal(t, http.StatusConflict, Status(err))
	assert.True(t, IsKind(err, KindConflict))
	assert.Equal(t, "truck number already exists", Message(err))
}

func TestMessage_PlainError(t *testing.T) {
	assert.Equal(t, "boom", Message(errors.New("boom")))
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(NotFound("nope"), KindNotFound))
	assert.False(t, IsKind(NotFound("nope"), KindConflict))
	assert.False(t, IsKind(errors.New("boom"), KindNotFound))
}
