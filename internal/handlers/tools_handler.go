package handlers

import "github.com/gin-gonic/gin"

func (h *Handler) Phrases(c *gin.Context) {
	items, err := h.Store.Tools().Phrases(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondList(c, items, len(items))
}

func (h *Handler) Affirmations(c *gin.Context) {
	items, err := h.Store.Tools().Affirmations(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondList(c, items, len(items))
}

func (h *Handler) PracticeScripts(c *gin.Context) {
	items, err := h.Store.Tools().PracticeScripts(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondList(c, items, len(items))
}
