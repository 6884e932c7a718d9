package handlers

import "github.com/gin-gonic/gin"

// Stats serves platform counters; fallback mode reports zeros.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.Store.Stats(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	respondOK(c, stats)
}
