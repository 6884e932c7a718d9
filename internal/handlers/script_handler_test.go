package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListScripts(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/scripts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, 1, env.Total)
}

func TestGenerateScript(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/scripts/generate",
		`{"situation":"Overcharged at a cafe","tone":"assertive"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Situation   string   `json:"situation"`
		Tone        string   `json:"tone"`
		OpeningLine string   `json:"openingLine"`
		ClosingLine string   `json:"closingLine"`
		FullScript  string   `json:"fullScript"`
		Tips        []string `json:"tips"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Overcharged at a cafe", data.Situation)
	assert.Equal(t, "assertive", data.Tone)
	assert.Contains(t, data.OpeningLine, "overcharged at a cafe")
	assert.NotEmpty(t, data.ClosingLine)
	assert.NotEmpty(t, data.FullScript)
	assert.NotEmpty(t, data.Tips)
}

func TestGenerateScriptDefaultsToCalm(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/scripts/generate",
		`{"situation":"Someone cut in line"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Tone string `json:"tone"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "calm", data.Tone)
}

func TestGenerateScriptValidation(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/scripts/generate", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Situation description is required", env.Message)

	w, env = doRequest(t, r, http.MethodPost, "/api/scripts/generate",
		`{"situation":"s","tone":"aggressive"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid tone", env.Message)
}

func TestSaveAndUnsaveScript(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "saver@example.com")

	// Nothing saved yet.
	w, env := doRequest(t, r, http.MethodGet, "/api/scripts/saved", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Count)

	w, env = doRequest(t, r, http.MethodPost, "/api/scripts/save/1", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Script saved successfully", env.Message)

	// Saving twice is rejected.
	w, env = doRequest(t, r, http.MethodPost, "/api/scripts/save/1", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Script already saved", env.Message)

	w, env = doRequest(t, r, http.MethodGet, "/api/scripts/saved", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Count)

	w, env = doRequest(t, r, http.MethodDelete, "/api/scripts/save/1", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Script removed from saved", env.Message)

	w, env = doRequest(t, r, http.MethodGet, "/api/scripts/saved", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Count)
}

func TestSaveScriptNotFound(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "saver2@example.com")

	w, env := doRequest(t, r, http.MethodPost, "/api/scripts/save/999", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Script not found", env.Message)
}

func TestSavedScriptsRequireAuth(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doRequest(t, r, http.MethodGet, "/api/scripts/saved", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
