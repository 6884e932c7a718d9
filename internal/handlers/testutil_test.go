package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/speakup-app/speakup-api/internal/services"
	"github.com/speakup-app/speakup-api/internal/store"
	"github.com/speakup-app/speakup-api/internal/utils"
)

// Handler tests run against the fallback backend: no database, gate
// permanently closed. That covers both the degraded mode contract and
// the backend-independent handler logic.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.NewGate(nil, 0, zerolog.Nop()), nil, store.NewFallback())
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	h := New(st, tokens, services.NewScriptGenerator(), zerolog.Nop(), false, 3600)
	return NewRouter(h, []string{"http://localhost:5173"})
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Total   int             `json:"total"`
	Pages   int             `json:"pages"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "response body: %s", w.Body.String())
	return w, env
}

// registerUser creates a user and returns its session token.
func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w, env := doRequest(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"Test User","email":"`+email+`","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, "register failed: %s", w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}
