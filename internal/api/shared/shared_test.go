package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	id := GetTraceID(ctx)
	assert.Len(t, id, 32)
	assert.NotEqual(t, id, GetTraceID(SetTraceID(context.Background())))
}

func TestUserContext(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)

	_, ok = UserFromContext(WithUser(context.Background(), &domain.User{}))
	assert.False(t, ok, "users without a username are rejected")

	alice := &domain.User{Username: "alice"}
	got, ok := UserFromContext(WithUser(context.Background(), alice))
	require.True(t, ok)
	assert.Same(t, alice, got)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x"}`))
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, &v))
	assert.Equal(t, "x", v.Title)

	for _, body := range []string{"", "{", `{"title":5}`} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		err := DecodeJSON(httptest.NewRecorder(), req, &v)
		require.Error(t, err, "body %q", body)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, "invalid request format", err.Error())
	}
}

func TestRespondWithData(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithData(rec, httptest.NewRequest(http.MethodGet, "/", nil), map[string]int{"id": 1})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":1}}`, rec.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"client error logs at debug", http.StatusNotFound, "DEBUG"},
		{"server error logs at error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := logger.GetTestLogger(t)
			req := httptest.NewRequest(http.MethodGet, "/api/tasks/1", nil)
			ctx := logger.WithLogger(SetTraceID(req.Context()), log)
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			RespondWithErrorAndLog(rec, req, tt.status, "safe message",
				assert.AnError)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t,
				`{"errors":"safe message","trace_id":"`+GetTraceID(ctx)+`"}`,
				rec.Body.String())

			entries, err := buf.GetLogEntries()
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0]["level"])
			assert.Equal(t, GetTraceID(ctx), entries[0]["trace_id"])
		})
	}
}
