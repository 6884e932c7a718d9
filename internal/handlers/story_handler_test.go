package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStories(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/stories", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, 3, env.Total)
}

func TestListStoriesFeelingFilter(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/stories?feeling=empowered", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Total)

	w, env = doRequest(t, r, http.MethodGet, "/api/stories?category=billing", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, env.Total)
}

func TestCreateStoryIsPublic(t *testing.T) {
	r := newTestRouter(t)

	// No token: story submission stays anonymous.
	w, env := doRequest(t, r, http.MethodPost, "/api/stories",
		`{"situation":"Spoke up at a meeting","whatISaid":"I had a different take","outcome":"We changed the plan"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Thank you for sharing your story! It will inspire others.", env.Message)

	var data struct {
		ID          string `json:"_id"`
		Feeling     string `json:"feeling"`
		Category    string `json:"category"`
		IsAnonymous bool   `json:"isAnonymous"`
		IsApproved  bool   `json:"isApproved"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.ID)
	assert.Equal(t, "proud", data.Feeling)
	assert.Equal(t, "general", data.Category)
	assert.True(t, data.IsAnonymous)
	assert.True(t, data.IsApproved)
}

func TestCreateStoryValidation(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/stories",
		`{"situation":"s","whatISaid":"w"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please provide situation, whatISaid and outcome", env.Message)

	w, env = doRequest(t, r, http.MethodPost, "/api/stories",
		`{"situation":"s","whatISaid":"w","outcome":"o","feeling":"smug"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid feeling", env.Message)

	long := strings.Repeat("a", 201)
	w, env = doRequest(t, r, http.MethodPost, "/api/stories",
		`{"situation":"`+long+`","whatISaid":"w","outcome":"o"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Situation cannot be more than 200 characters", env.Message)
}

func TestLikeStoryToggle(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "story-liker@example.com")

	w, env := doRequest(t, r, http.MethodPost, "/api/stories/1/like", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var res likeResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "liked", res.Action)
	assert.Equal(t, 1, res.Likes)

	w, env = doRequest(t, r, http.MethodPost, "/api/stories/1/like", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "unliked", res.Action)
	assert.Equal(t, 0, res.Likes)
}

func TestLikeStoryRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doRequest(t, r, http.MethodPost, "/api/stories/1/like", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLikeStoryNotFound(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "story-nf@example.com")

	w, env := doRequest(t, r, http.MethodPost, "/api/stories/999/like", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Story not found", env.Message)
}

func TestStoryFeelingsCatalog(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/stories/feelings", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var data []struct {
		ID    string `json:"id"`
		Emoji string `json:"emoji"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data, 5)
}
