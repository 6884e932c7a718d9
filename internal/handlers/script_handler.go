package handlers

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/speakup-app/speakup-api/internal/middleware"
	"github.com/speakup-app/speakup-api/internal/models"
	"github.com/speakup-app/speakup-api/internal/store"
)

const (
	defaultScriptLimit = 20
	maxSituationLength = 500
)

func (h *Handler) ListScripts(c *gin.Context) {
	filter := store.ScriptFilter{Tone: c.Query("tone")}
	page := pageFrom(c, defaultScriptLimit)

	items, total, err := h.Store.Scripts().List(c.Request.Context(), filter, page)
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondPage(c, items, len(items), total, page.Limit)
}

func (h *Handler) ScriptsForScenario(c *gin.Context) {
	items, err := h.Store.Scripts().ByScenario(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondList(c, items, len(items))
}

// GenerateScript composes a script from templates; nothing is stored.
func (h *Handler) GenerateScript(c *gin.Context) {
	var req struct {
		Situation string `json:"situation"`
		Tone      string `json:"tone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Situation == "" {
		respondError(c, http.StatusBadRequest, "Situation description is required")
		return
	}
	if utf8.RuneCountInString(req.Situation) > maxSituationLength {
		respondError(c, http.StatusBadRequest, "Situation cannot be more than 500 characters")
		return
	}
	if req.Tone == "" {
		req.Tone = "calm"
	} else if !models.ValidTone(req.Tone) {
		respondError(c, http.StatusBadRequest, "Invalid tone")
		return
	}

	respondOK(c, h.Generator.Generate(req.Situation, req.Tone))
}

func (h *Handler) SavedScripts(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	items, err := h.Store.Scripts().ByIDs(c.Request.Context(), user.SavedScripts)
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondList(c, items, len(items))
}

func (h *Handler) SaveScript(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	scriptID := c.Param("id")

	if _, err := h.Store.Scripts().GetByID(c.Request.Context(), scriptID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Script not found")
			return
		}
		h.internalError(c, err)
		return
	}

	if err := h.Store.Users().SaveScript(c.Request.Context(), user.ID, scriptID); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadySaved):
			respondError(c, http.StatusBadRequest, "Script already saved")
		case errors.Is(err, store.ErrNotFound):
			respondError(c, http.StatusNotFound, "User not found")
		default:
			h.internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Script saved successfully"})
}

func (h *Handler) UnsaveScript(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := h.Store.Users().UnsaveScript(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Script removed from saved"})
}
