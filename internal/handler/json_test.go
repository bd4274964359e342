package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omparkhi/JobWeb/internal/domain"
)

func TestServiceErrorMapping(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		err     error
		status  int
		message string
	}{
		{fmt.Errorf("job: %w", domain.ErrNotFound), http.StatusNotFound, "job"},
		{fmt.Errorf("you can only delete your own jobs: %w", domain.ErrForbidden), http.StatusForbidden, "you can only delete your own jobs"},
		{fmt.Errorf("you have already applied for this job: %w", domain.ErrConflict), http.StatusConflict, "you have already applied for this job"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		h.serviceError(rec, req, tc.err)

		require.Equal(t, tc.status, rec.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.False(t, resp.Success)
		require.Equal(t, tc.message, resp.Message)
	}
}

func TestServiceErrorFallsBackToInternal(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.serviceError(rec, req, errors.New("connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "internal server error", resp.Message)
}
