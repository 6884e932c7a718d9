package handlers

import (
	"github.com/rs/zerolog"

	"github.com/speakup-app/speakup-api/internal/services"
	"github.com/speakup-app/speakup-api/internal/store"
	"github.com/speakup-app/speakup-api/internal/utils"
)

// Handler carries the dependencies shared by all route handlers.
type Handler struct {
	Store     *store.Store
	Tokens    *utils.TokenManager
	Generator *services.ScriptGenerator
	Log       zerolog.Logger

	cookieSecure bool
	tokenMaxAge  int
}

func New(st *store.Store, tokens *utils.TokenManager, gen *services.ScriptGenerator, log zerolog.Logger, cookieSecure bool, tokenMaxAge int) *Handler {
	return &Handler{
		Store:        st,
		Tokens:       tokens,
		Generator:    gen,
		Log:          log,
		cookieSecure: cookieSecure,
		tokenMaxAge:  tokenMaxAge,
	}
}
