package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
	}{
		{"bad request", NewBadRequestError(stderrors.New("unexpected EOF")), http.StatusBadRequest},
		{"not found", NewNotFoundError("user", int64(1)), http.StatusNotFound},
		{"database", NewDatabaseError("create user", stderrors.New("boom")), http.StatusInternalServerError},
		{"cache", NewCacheError("get user", stderrors.New("boom")), http.StatusInternalServerError},
		{"transfer", NewTransferError("EQAbc", stderrors.New("boom")), http.StatusBadGateway},
		{"internal", New(ErrCodeInternal, "oops"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus())
		})
	}
}

func TestAppError_PublicMessage(t *testing.T) {
	cause := stderrors.New(`duplicate key value violates unique constraint "users_telegram_id_key"`)
	err := NewDatabaseError("create user", cause)

	assert.Equal(t, cause.Error(), err.PublicMessage())
	assert.Contains(t, err.Error(), "DATABASE_ERROR")
	assert.Equal(t, "user not found", NewNotFoundError("user", 7).PublicMessage())
}

func TestAsAppError(t *testing.T) {
	appErr := NewDatabaseError("update wallet", stderrors.New("conn refused"))
	wrapped := fmt.Errorf("connect wallet: %w", appErr)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Same(t, appErr, got)

	_, ok = AsAppError(stderrors.New("plain"))
	assert.False(t, ok)
}
