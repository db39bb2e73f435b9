package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("order %s not found", "x"), http.StatusNotFound},
		{"invalid", InvalidArgument("bad date"), http.StatusBadRequest},
		{"conflict", Conflict("duplicate"), http.StatusConflict},
		{"forbidden", Forbidden("role"), http.StatusForbidden},
		{"partial", PartialFailure("r1", errors.New("db down")), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("failed to load: %w", NotFound("gone")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestPartialFailureKeepsCause(t *testing.T) {
	cause := errors.New("insert failed")
	err := PartialFailure("report-1", cause)

	assert.True(t, Is(err, KindPartialFailure))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "report-1", err.ReportID)
	assert.Contains(t, err.Error(), "report-1")
}
