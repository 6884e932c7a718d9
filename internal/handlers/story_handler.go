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

const defaultStoryLimit = 20

func (h *Handler) ListStories(c *gin.Context) {
	filter := store.StoryFilter{
		Category: c.Query("category"),
		Feeling:  c.Query("feeling"),
		Sort:     c.Query("sort"),
	}
	page := pageFrom(c, defaultStoryLimit)

	items, total, err := h.Store.Stories().List(c.Request.Context(), filter, page)
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondPage(c, items, len(items), total, page.Limit)
}

// CreateStory accepts anonymous submissions; stories are auto-approved.
func (h *Handler) CreateStory(c *gin.Context) {
	var req struct {
		Situation string `json:"situation"`
		WhatISaid string `json:"whatISaid"`
		Outcome   string `json:"outcome"`
		Feeling   string `json:"feeling"`
		Category  string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Situation == "" || req.WhatISaid == "" || req.Outcome == "" {
		respondError(c, http.StatusBadRequest, "Please provide situation, whatISaid and outcome")
		return
	}
	if utf8.RuneCountInString(req.Situation) > models.MaxStorySituation {
		respondError(c, http.StatusBadRequest, "Situation cannot be more than 200 characters")
		return
	}
	if utf8.RuneCountInString(req.WhatISaid) > models.MaxStoryWhatISaid {
		respondError(c, http.StatusBadRequest, "What you said cannot be more than 500 characters")
		return
	}
	if utf8.RuneCountInString(req.Outcome) > models.MaxStoryOutcome {
		respondError(c, http.StatusBadRequest, "Outcome cannot be more than 300 characters")
		return
	}
	if req.Feeling == "" {
		req.Feeling = "proud"
	} else if !models.ValidFeeling(req.Feeling) {
		respondError(c, http.StatusBadRequest, "Invalid feeling")
		return
	}
	if req.Category == "" {
		req.Category = "general"
	} else if !models.ValidScenarioCategory(req.Category) {
		respondError(c, http.StatusBadRequest, "Invalid category")
		return
	}

	story := models.SuccessStory{
		Situation:   req.Situation,
		WhatISaid:   req.WhatISaid,
		Outcome:     req.Outcome,
		Feeling:     req.Feeling,
		Category:    req.Category,
		LikedBy:     []string{},
		IsAnonymous: true,
		IsApproved:  true,
	}
	if err := h.Store.Stories().Create(c.Request.Context(), &story); err != nil {
		h.internalError(c, err)
		return
	}
	respondCreated(c, "Thank you for sharing your story! It will inspire others.", story)
}

func (h *Handler) LikeStory(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	result, err := h.Store.Stories().ToggleLike(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Story not found")
			return
		}
		h.internalError(c, err)
		return
	}
	respondOK(c, result)
}

func (h *Handler) StoryFeelings(c *gin.Context) {
	respondOK(c, models.StoryFeelings())
}
