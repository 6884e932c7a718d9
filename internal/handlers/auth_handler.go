package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/speakup-app/speakup-api/internal/middleware"
	"github.com/speakup-app/speakup-api/internal/models"
	"github.com/speakup-app/speakup-api/internal/store"
	"github.com/speakup-app/speakup-api/internal/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxNameLength = 50

type authResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// setTokenCookie installs the session cookie. SameSite=None so the
// browser sends it from a frontend on another origin.
func (h *Handler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("token", token, h.tokenMaxAge, "/", "", h.cookieSecure, true)
}

func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Please provide name, email and password")
		return
	}
	if utf8.RuneCountInString(req.Name) > maxNameLength {
		respondError(c, http.StatusBadRequest, "Name cannot be more than 50 characters")
		return
	}
	if utf8.RuneCountInString(req.Password) < 6 {
		respondError(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		respondError(c, http.StatusBadRequest, "Please provide a valid email")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		h.internalError(c, err)
		return
	}

	user := models.User{Name: req.Name, Email: req.Email, Password: hashed}
	if err := h.Store.Users().Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			respondError(c, http.StatusBadRequest, "User already exists with this email. Please login instead.")
			return
		}
		h.internalError(c, err)
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	h.setTokenCookie(c, token)

	respondCreated(c, "", authResponse{ID: user.ID, Name: user.Name, Email: user.Email, Token: token})
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	// The same response for unknown email and wrong password, so a
	// caller cannot probe which one failed.
	user, err := h.Store.Users().GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.internalError(c, err)
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	h.setTokenCookie(c, token)

	respondOK(c, authResponse{ID: user.ID, Name: user.Name, Email: user.Email, Token: token})
}

// Logout clears the client-held cookie. Tokens are stateless, so this
// is not a server-side revocation.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("token", "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

func (h *Handler) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	respondOK(c, user)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	if h.Store.FallbackActive() {
		// The synthesized fallback identity has no real record to write.
		respondError(c, http.StatusServiceUnavailable, "Profile updates require the database")
		return
	}

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		respondError(c, http.StatusBadRequest, "Please provide a valid email")
		return
	}
	var hashed string
	if req.Password != "" {
		if utf8.RuneCountInString(req.Password) < 6 {
			respondError(c, http.StatusBadRequest, "Password must be at least 6 characters")
			return
		}
		var err error
		hashed, err = utils.HashPassword(req.Password)
		if err != nil {
			h.internalError(c, err)
			return
		}
	}

	updated, err := h.Store.Users().UpdateProfile(c.Request.Context(), user.ID, req.Name, req.Email, hashed)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, store.ErrDuplicateEmail):
			respondError(c, http.StatusBadRequest, "User already exists with this email. Please login instead.")
		default:
			h.internalError(c, err)
		}
		return
	}

	respondOK(c, gin.H{"_id": updated.ID, "name": updated.Name, "email": updated.Email})
}
