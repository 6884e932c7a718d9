package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/speakup-app/speakup-api/internal/middleware"
)

// NewRouter wires middleware and all API routes.
func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(h.Log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	requireAuth := middleware.RequireAuth(h.Tokens, h.Store)
	optionalAuth := middleware.OptionalAuth(h.Tokens, h.Store)

	r.GET("/", h.Welcome)
	r.GET("/api/health", h.Health)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/profile", requireAuth, h.GetProfile)
		auth.PUT("/profile", requireAuth, h.UpdateProfile)
	}

	scenarios := r.Group("/api/scenarios")
	{
		scenarios.GET("", h.ListScenarios)
		scenarios.POST("", h.CreateScenario)
		scenarios.GET("/categories", h.ScenarioCategories)
		scenarios.GET("/search", h.SearchScenarios)
		scenarios.GET("/category/:category", h.ScenariosByCategory)
		scenarios.GET("/:id", h.GetScenario)
	}

	scripts := r.Group("/api/scripts")
	{
		scripts.GET("", h.ListScripts)
		scripts.GET("/scenario/:id", h.ScriptsForScenario)
		scripts.POST("/generate", h.GenerateScript)
		scripts.GET("/saved", requireAuth, h.SavedScripts)
		scripts.POST("/save/:id", requireAuth, h.SaveScript)
		scripts.DELETE("/save/:id", requireAuth, h.UnsaveScript)
	}

	tips := r.Group("/api/tips")
	{
		tips.GET("", optionalAuth, h.ListTips)
		tips.GET("/categories", h.TipCategories)
		tips.GET("/category/:category", optionalAuth, h.TipsByCategory)
		tips.POST("", requireAuth, h.CreateTip)
		tips.POST("/:id/like", requireAuth, h.LikeTip)
	}

	stories := r.Group("/api/stories")
	{
		stories.GET("", h.ListStories)
		stories.GET("/feelings", h.StoryFeelings)
		stories.POST("", h.CreateStory)
		stories.POST("/:id/like", requireAuth, h.LikeStory)
	}

	tools := r.Group("/api/tools")
	{
		tools.GET("/phrases", h.Phrases)
		tools.GET("/affirmations", h.Affirmations)
		tools.GET("/scripts", h.PracticeScripts)
	}

	r.GET("/api/stats", h.Stats)

	return r
}

func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Welcome to SpeakUp Confidence API",
		"description": "Helping people speak up without fear in public situations",
		"version":     "1.0.0",
		"endpoints": gin.H{
			"auth":      "/api/auth",
			"scenarios": "/api/scenarios",
			"scripts":   "/api/scripts",
			"tips":      "/api/tips",
			"stories":   "/api/stories",
		},
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
