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

const defaultTipLimit = 50

func (h *Handler) ListTips(c *gin.Context) {
	filter := store.TipFilter{
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}
	page := pageFrom(c, defaultTipLimit)

	items, total, err := h.Store.Tips().List(c.Request.Context(), filter, page)
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondPage(c, items, len(items), total, page.Limit)
}

func (h *Handler) TipsByCategory(c *gin.Context) {
	filter := store.TipFilter{Category: c.Param("category"), Sort: "likes"}
	items, _, err := h.Store.Tips().List(c.Request.Context(), filter, store.Page{Number: 1, Limit: defaultTipLimit})
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondList(c, items, len(items))
}

func (h *Handler) CreateTip(c *gin.Context) {
	var req struct {
		Category string `json:"category"`
		Content  string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Category == "" || req.Content == "" {
		respondError(c, http.StatusBadRequest, "Please provide category and content")
		return
	}
	if !models.ValidTipCategory(req.Category) {
		respondError(c, http.StatusBadRequest, "Invalid category")
		return
	}
	if utf8.RuneCountInString(req.Content) > models.MaxTipContent {
		respondError(c, http.StatusBadRequest, "Content cannot be more than 500 characters")
		return
	}

	tip := models.Tip{
		Category:    req.Category,
		Content:     req.Content,
		LikedBy:     []string{},
		IsAnonymous: true,
		IsApproved:  true,
	}
	if err := h.Store.Tips().Create(c.Request.Context(), &tip); err != nil {
		h.internalError(c, err)
		return
	}
	respondCreated(c, "Thank you for sharing your wisdom!", tip)
}

// LikeTip toggles the caller's like. Likes require login and are
// deduplicated per user.
func (h *Handler) LikeTip(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	result, err := h.Store.Tips().ToggleLike(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Tip not found")
			return
		}
		h.internalError(c, err)
		return
	}
	respondOK(c, result)
}

func (h *Handler) TipCategories(c *gin.Context) {
	respondOK(c, models.TipCategories())
}
