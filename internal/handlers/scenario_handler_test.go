package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListScenariosServesFallbackData(t *testing.T) {
	r := newTestRouter(t)

	// With no database at all, listing still succeeds with seeded data.
	w, env := doRequest(t, r, http.MethodGet, "/api/scenarios", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, 6, env.Total)
	assert.Equal(t, 6, env.Count)
	assert.Equal(t, 1, env.Pages)

	var data []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data)
}

func TestListScenariosPagination(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/scenarios?limit=4&page=2", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 6, env.Total)
	assert.Equal(t, 2, env.Count)
	assert.Equal(t, 2, env.Pages)

	// Past the last page: empty result, same totals.
	w, env = doRequest(t, r, http.MethodGet, "/api/scenarios?limit=4&page=3", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 6, env.Total)
	assert.Equal(t, 0, env.Count)
}

func TestListScenariosFilter(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/scenarios?category=billing", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Total)

	var data []struct {
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	for _, s := range data {
		assert.Equal(t, "billing", s.Category)
	}
}

func TestGetScenarioByID(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/scenarios/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w, env = doRequest(t, r, http.MethodGet, "/api/scenarios/999", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Scenario not found", env.Message)
}

func TestSearchScenarios(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/scenarios/search?q=overcharged", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Count)
}

func TestSearchScenariosEmptyQuery(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/scenarios/search", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please provide a search query", env.Message)
}

func TestScenarioCategoriesCatalog(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/scenarios/categories", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var data []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data, 6)
	assert.Equal(t, "billing", data[0].ID)
}

func TestCreateScenario(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/scenarios",
		`{"title":"Test","description":"d","category":"general","emotionalContext":"e"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		ID         string `json:"_id"`
		Difficulty string `json:"difficulty"`
		Icon       string `json:"icon"`
		CreatedAt  string `json:"createdAt"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.ID)
	assert.NotEmpty(t, data.CreatedAt)
	assert.Equal(t, "medium", data.Difficulty)
	assert.Equal(t, "💬", data.Icon)
}

func TestCreateScenarioLengthLimits(t *testing.T) {
	r := newTestRouter(t)
	atLimit := strings.Repeat("a", 100)
	overLimit := strings.Repeat("a", 101)

	// Exactly at the limit is accepted.
	w, _ := doRequest(t, r, http.MethodPost, "/api/scenarios",
		`{"title":"`+atLimit+`","description":"d","category":"general","emotionalContext":"e"}`, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	// One character over is rejected, not truncated.
	w, env := doRequest(t, r, http.MethodPost, "/api/scenarios",
		`{"title":"`+overLimit+`","description":"d","category":"general","emotionalContext":"e"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title cannot be more than 100 characters", env.Message)
}

func TestCreateScenarioCountsCharactersNotBytes(t *testing.T) {
	r := newTestRouter(t)

	// 100 two-byte characters are still 100 characters.
	accented := strings.Repeat("é", 100)
	w, _ := doRequest(t, r, http.MethodPost, "/api/scenarios",
		`{"title":"`+accented+`","description":"d","category":"general","emotionalContext":"e"}`, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w, env := doRequest(t, r, http.MethodPost, "/api/scenarios",
		`{"title":"`+accented+`x","description":"d","category":"general","emotionalContext":"e"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title cannot be more than 100 characters", env.Message)
}

func TestCreateScenarioInvalidEnum(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/scenarios",
		`{"title":"T","description":"d","category":"nonsense","emotionalContext":"e"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid category", env.Message)

	w, env = doRequest(t, r, http.MethodPost, "/api/scenarios",
		`{"title":"T","description":"d","category":"general","difficulty":"impossible","emotionalContext":"e"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid difficulty", env.Message)
}
