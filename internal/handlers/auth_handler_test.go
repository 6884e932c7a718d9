package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"Ana","email":"ana@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var data struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.ID)
	assert.Equal(t, "Ana", data.Name)
	assert.Equal(t, "ana@example.com", data.Email)
	assert.NotEmpty(t, data.Token)

	// The session cookie is installed alongside the body token.
	cookies := w.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name == "token" && ck.Value != "" {
			found = true
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.True(t, found, "expected a token cookie")
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{"email":"a@b.co"}`, "Please provide name, email and password"},
		{"short password", `{"name":"A","email":"a@b.co","password":"12345"}`, "Password must be at least 6 characters"},
		{"bad email", `{"name":"A","email":"not-an-email","password":"secret123"}`, "Please provide a valid email"},
		{"email without tld", `{"name":"A","email":"a@b","password":"secret123"}`, "Please provide a valid email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, env := doRequest(t, r, http.MethodPost, "/api/auth/register", tc.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tc.want, env.Message)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "dup@example.com")

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"Again","email":"dup@example.com","password":"secret123"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "User already exists with this email. Please login instead.", env.Message)
}

func TestLogin(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "ana@example.com")

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"ana@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestLoginConstantShapeFailure(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "ana@example.com")

	// Unknown email and wrong password produce the same response.
	wUnknown, envUnknown := doRequest(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"secret123"}`, "")
	wWrong, envWrong := doRequest(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"ana@example.com","password":"wrongpass"}`, "")

	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wWrong.Code)
	assert.Equal(t, envUnknown.Message, envWrong.Message)
	assert.Equal(t, "Invalid email or password", envWrong.Message)
}

func TestProfile(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "ana@example.com")

	w, env := doRequest(t, r, http.MethodGet, "/api/auth/profile", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "ana@example.com", data.Email)
	assert.Empty(t, data.Password, "password hash must not leak")
}

func TestProfileRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/auth/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)

	w, _ = doRequest(t, r, http.MethodGet, "/api/auth/profile", "", "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileUnavailableInFallback(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "ana@example.com")

	w, _ := doRequest(t, r, http.MethodPut, "/api/auth/profile", `{"name":"New Name"}`, token)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLogout(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/logout", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var cleared bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "token" && ck.Value == "" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must expire the token cookie")
}
