package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/mocks"
	"github.com/phrazzld/taskbook-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setup      func(m *mocks.MockUserService)
		wantStatus int
		wantError  string
	}{
		{
			name: "success",
			body: map[string]any{"username": "alice", "password": "secret", "name": "Alice"},
			setup: func(m *mocks.MockUserService) {
				m.On("Register", mock.Anything, service.RegisterUserInput{
					Username: "alice", Password: "secret", Name: "Alice",
				}).Return(&domain.User{Username: "alice", Name: "Alice", Password: "hash"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "duplicate username",
			body: map[string]any{"username": "alice", "password": "secret", "name": "Alice"},
			setup: func(m *mocks.MockUserService) {
				m.On("Register", mock.Anything, mock.Anything).
					Return(nil, domain.NewValidationError("username", "already exists"))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "username already exists",
		},
		{
			name:       "malformed body",
			body:       "[",
			setup:      func(m *mocks.MockUserService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mocks.MockUserService{}
			tt.setup(users)
			h := NewUserHandler(users, discardLogger())

			rec := httptest.NewRecorder()
			h.Register(rec, newRequest(t, http.MethodPost, "/api/users", tt.body, nil, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Errors)
				return
			}
			var body struct {
				Data map[string]any `json:"data"`
			}
			decodeBody(t, rec, &body)
			assert.Equal(t, map[string]any{"username": "alice", "name": "Alice"}, body.Data)
		})
	}
}

func TestUserHandler_Login(t *testing.T) {
	users := &mocks.MockUserService{}
	users.On("Login", mock.Anything, service.LoginUserInput{Username: "alice", Password: "secret"}).
		Return("token-alice", nil)
	users.On("Login", mock.Anything, service.LoginUserInput{Username: "alice", Password: "wrong"}).
		Return("", domain.NewUnauthorizedError("username or password is wrong", nil))
	h := NewUserHandler(users, discardLogger())

	rec := httptest.NewRecorder()
	h.Login(rec, newRequest(t, http.MethodPost, "/api/users/login",
		map[string]string{"username": "alice", "password": "secret"}, nil, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data TokenResponse `json:"data"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "token-alice", body.Data.Token)

	rec = httptest.NewRecorder()
	h.Login(rec, newRequest(t, http.MethodPost, "/api/users/login",
		map[string]string{"username": "alice", "password": "wrong"}, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "username or password is wrong", decodeError(t, rec).Errors)
}

func TestUserHandler_CurrentAndUpdate(t *testing.T) {
	users := &mocks.MockUserService{}
	users.On("Current", mock.Anything, alice).Return(alice, nil)
	renamed := &domain.User{Username: "alice", Name: "Alice A."}
	users.On("Update", mock.Anything, alice, mock.MatchedBy(func(in service.UpdateUserInput) bool {
		return in.Name != nil && *in.Name == "Alice A." && in.Password == nil
	})).Return(renamed, nil)
	h := NewUserHandler(users, discardLogger())

	rec := httptest.NewRecorder()
	h.Current(rec, newRequest(t, http.MethodGet, "/api/users/current", nil, alice, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"username":"alice","name":"Alice"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Update(rec, newRequest(t, http.MethodPatch, "/api/users/current",
		map[string]string{"name": "Alice A."}, alice, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"username":"alice","name":"Alice A."}}`, rec.Body.String())
}

func TestUserHandler_Logout(t *testing.T) {
	users := &mocks.MockUserService{}
	users.On("Logout", mock.Anything, alice).Return(nil).Once()
	users.On("Logout", mock.Anything, alice).Return(errors.New("db down")).Once()
	h := NewUserHandler(users, discardLogger())

	rec := httptest.NewRecorder()
	h.Logout(rec, newRequest(t, http.MethodDelete, "/api/users/logout", nil, alice, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.Logout(rec, newRequest(t, http.MethodDelete, "/api/users/logout", nil, alice, nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec).Errors)
}
