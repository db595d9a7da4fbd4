package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlasaero/hr-time-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routerTestSecret = "test-secret-key-for-jwt"

func TestRouter_RequiresAuthentication(t *testing.T) {
	jwtService := jwt.NewJWTService(routerTestSecret, "1h")
	router := NewRouter(jwtService, NewWorklogHandler(&worklogServiceStub{}))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/worklogs/today", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AuthenticatedToday(t *testing.T) {
	jwtService := jwt.NewJWTService(routerTestSecret, "1h")
	stub := &worklogServiceStub{hasToday: true}
	router := NewRouter(jwtService, NewWorklogHandler(stub))

	employeeID := "emp-1"
	token, _, err := jwtService.GenerateAccessToken("user-1", "user@example.com", &employeeID)
	require.NoError(t, err)

	// The session employee is taken from the token claims
	r := httptest.NewRequest(http.MethodGet, "/api/v1/worklogs/today", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["has_worklogs_today"])
}

func TestRouter_Heartbeat(t *testing.T) {
	jwtService := jwt.NewJWTService(routerTestSecret, "1h")
	router := NewRouter(jwtService, NewWorklogHandler(&worklogServiceStub{}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
