package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/speakup-app/speakup-api/internal/store"
)

// Uniform response envelope: {success, message?, data?, count?, total?, pages?}.

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

func respondPage(c *gin.Context, data any, count, total, limit int) {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
		"total":   total,
		"pages":   pages,
		"data":    data,
	})
}

func respondCreated(c *gin.Context, message string, data any) {
	body := gin.H{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	c.JSON(http.StatusCreated, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// internalError logs the cause and returns an opaque message.
func (h *Handler) internalError(c *gin.Context, err error) {
	h.Log.Error().Err(err).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString("requestID")).
		Msg("request failed")
	respondError(c, http.StatusInternalServerError, "Internal server error")
}

// pageFrom parses ?page and ?limit with a per-route default limit.
// Values below 1 fall back to the defaults.
func pageFrom(c *gin.Context, defaultLimit int) store.Page {
	page := store.Page{Number: 1, Limit: defaultLimit}
	if n, err := strconv.Atoi(c.Query("page")); err == nil && n >= 1 {
		page.Number = n
	}
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n >= 1 {
		page.Limit = n
	}
	return page
}
