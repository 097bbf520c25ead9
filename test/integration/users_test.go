package integration

import (
	"net/http"
	"testing"

	"github.com/blockseblock/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_UserProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	s := setupTestServer(t)

	w := s.do(t, http.MethodGet, "/api/users/me", learner, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode[models.ErrorResponse](t, w).Error)

	w = s.doJSON(t, http.MethodPost, "/api/users", learner, models.UserProfileRequest{Name: "Ada", Email: "ada@example.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	registered := decode[models.UserResponse](t, w).User
	require.NotNil(t, registered)
	assert.Equal(t, models.User{Principal: learner, Name: "Ada", Email: "ada@example.com", Role: models.RoleStudent}, *registered)

	w = s.doJSON(t, http.MethodPut, "/api/users/me", learner, models.UserProfileRequest{Name: "Ada Lovelace", Email: "ada@example.org"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/users/me", learner, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[models.UserResponse](t, w).User
	require.NotNil(t, me)
	assert.Equal(t, "Ada Lovelace", me.Name)
	assert.Equal(t, "ada@example.org", me.Email)
	assert.Equal(t, models.RoleStudent, me.Role)

	w = s.doJSON(t, http.MethodPut, "/api/users/me", "another-principal", models.UserProfileRequest{Name: "Grace", Email: "grace@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/users", learner, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	users := decode[models.UsersResponse](t, w).Users
	require.Len(t, users, 2)
	assert.Equal(t, learner, users[0].Principal)
	assert.Equal(t, "another-principal", users[1].Principal)

	t.Run("invalid email", func(t *testing.T) {
		w := s.doJSON(t, http.MethodPut, "/api/users/me", learner, models.UserProfileRequest{Name: "Ada", Email: "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid email format", decode[models.ErrorResponse](t, w).Error)
	})

	t.Run("principal required", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/users/me", "", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
