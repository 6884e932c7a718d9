package handlers

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/speakup-app/speakup-api/internal/models"
	"github.com/speakup-app/speakup-api/internal/store"
)

const defaultScenarioLimit = 20

func (h *Handler) ListScenarios(c *gin.Context) {
	filter := store.ScenarioFilter{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	}
	page := pageFrom(c, defaultScenarioLimit)

	items, total, err := h.Store.Scenarios().List(c.Request.Context(), filter, page)
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondPage(c, items, len(items), total, page.Limit)
}

func (h *Handler) GetScenario(c *gin.Context) {
	scenario, err := h.Store.Scenarios().GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Scenario not found")
			return
		}
		h.internalError(c, err)
		return
	}
	respondOK(c, scenario)
}

func (h *Handler) ScenariosByCategory(c *gin.Context) {
	items, err := h.Store.Scenarios().ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondList(c, items, len(items))
}

func (h *Handler) SearchScenarios(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		respondError(c, http.StatusBadRequest, "Please provide a search query")
		return
	}
	items, err := h.Store.Scenarios().Search(c.Request.Context(), q)
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondList(c, items, len(items))
}

func (h *Handler) ScenarioCategories(c *gin.Context) {
	respondOK(c, models.ScenarioCategories())
}

func (h *Handler) CreateScenario(c *gin.Context) {
	var req struct {
		Title            string   `json:"title"`
		Description      string   `json:"description"`
		Category         string   `json:"category"`
		Difficulty       string   `json:"difficulty"`
		EmotionalContext string   `json:"emotionalContext"`
		Examples         []string `json:"examples"`
		Icon             string   `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" || req.Category == "" || req.EmotionalContext == "" {
		respondError(c, http.StatusBadRequest, "Please provide title, description, category and emotionalContext")
		return
	}
	// Oversized fields are rejected, never truncated. Limits count
	// characters, not bytes.
	if utf8.RuneCountInString(req.Title) > models.MaxScenarioTitle {
		respondError(c, http.StatusBadRequest, "Title cannot be more than 100 characters")
		return
	}
	if utf8.RuneCountInString(req.Description) > models.MaxScenarioDescription {
		respondError(c, http.StatusBadRequest, "Description cannot be more than 500 characters")
		return
	}
	if utf8.RuneCountInString(req.EmotionalContext) > models.MaxEmotionalContext {
		respondError(c, http.StatusBadRequest, "Emotional context cannot be more than 300 characters")
		return
	}
	if !models.ValidScenarioCategory(req.Category) {
		respondError(c, http.StatusBadRequest, "Invalid category")
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	} else if !models.ValidScenarioDifficulty(req.Difficulty) {
		respondError(c, http.StatusBadRequest, "Invalid difficulty")
		return
	}
	if req.Icon == "" {
		req.Icon = "💬"
	}
	if req.Examples == nil {
		req.Examples = []string{}
	}

	scenario := models.Scenario{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Difficulty:       req.Difficulty,
		EmotionalContext: req.EmotionalContext,
		Examples:         req.Examples,
		Icon:             req.Icon,
		SuggestedScripts: []string{},
	}
	if err := h.Store.Scenarios().Create(c.Request.Context(), &scenario); err != nil {
		h.internalError(c, err)
		return
	}
	respondCreated(c, "", scenario)
}
