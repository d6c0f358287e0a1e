package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})

	t.Run("domain error preserved", func(t *testing.T) {
		err := NewConflict("email already exists", map[string]any{"email": "a@b.c"})
		mapped := ToDomainError(err)
		assert.Equal(t, "CONFLICT", mapped.Code)
		assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
	})

	t.Run("wrapped domain error unwrapped", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", NewNotFound("student", nil))
		mapped := ToDomainError(err)
		assert.Equal(t, "NOT_FOUND", mapped.Code)
	})

	t.Run("missing rows maps to not found", func(t *testing.T) {
		mapped := ToDomainError(pgx.ErrNoRows)
		assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
	})

	t.Run("unknown maps to internal without leaking", func(t *testing.T) {
		mapped := ToDomainError(errors.New("connection refused to 10.0.0.3"))
		assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
		assert.Equal(t, "internal server error", mapped.Message)
	})
}

func TestDomainErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewInternalError(inner)

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, domainErr.Error(), "boom")
}
