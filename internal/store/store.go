// Package store is the dual-backend data-access layer. Every entity
// kind has one repository interface with two implementations: MongoDB
// when the database is reachable, an in-memory fallback otherwise.
// Backend selection happens in exactly one place (the Store accessors,
// consulting the connectivity Gate per call) so handlers never branch
// on connectivity themselves.
package store

import (
	"context"
	"errors"

	"github.com/speakup-app/speakup-api/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrAlreadySaved   = errors.New("script already saved")
)

// Page is 1-based pagination. Zero values are normalized by callers.
type Page struct {
	Number int
	Limit  int
}

func (p Page) Skip() int { return (p.Number - 1) * p.Limit }

type ScenarioFilter struct {
	Category   string
	Difficulty string
}

type ScriptFilter struct {
	Tone string
}

type TipFilter struct {
	Category string
	Sort     string // "newest" (default) or "likes"
}

type StoryFilter struct {
	Category string
	Feeling  string
	Sort     string
}

// LikeResult reports the outcome of a like toggle.
type LikeResult struct {
	Action string `json:"action"` // "liked" or "unliked"
	Likes  int    `json:"likes"`
}

type ScenarioStore interface {
	List(ctx context.Context, f ScenarioFilter, p Page) ([]models.Scenario, int, error)
	GetByID(ctx context.Context, id string) (*models.Scenario, error)
	ByCategory(ctx context.Context, category string) ([]models.Scenario, error)
	Search(ctx context.Context, q string) ([]models.Scenario, error)
	Create(ctx context.Context, s *models.Scenario) error
}

type ScriptStore interface {
	List(ctx context.Context, f ScriptFilter, p Page) ([]models.ConfidenceScript, int, error)
	GetByID(ctx context.Context, id string) (*models.ConfidenceScript, error)
	ByScenario(ctx context.Context, scenarioID string) ([]models.ConfidenceScript, error)
	ByIDs(ctx context.Context, ids []string) ([]models.ConfidenceScript, error)
}

type TipStore interface {
	List(ctx context.Context, f TipFilter, p Page) ([]models.Tip, int, error)
	Create(ctx context.Context, t *models.Tip) error
	ToggleLike(ctx context.Context, id, userID string) (*LikeResult, error)
}

type StoryStore interface {
	List(ctx context.Context, f StoryFilter, p Page) ([]models.SuccessStory, int, error)
	Create(ctx context.Context, s *models.SuccessStory) error
	ToggleLike(ctx context.Context, id, userID string) (*LikeResult, error)
}

type ToolsStore interface {
	Phrases(ctx context.Context) ([]models.Phrase, error)
	Affirmations(ctx context.Context) ([]models.Affirmation, error)
	PracticeScripts(ctx context.Context) ([]models.PracticeScript, error)
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, name, email, passwordHash string) (*models.User, error)
	SaveScript(ctx context.Context, userID, scriptID string) error
	UnsaveScript(ctx context.Context, userID, scriptID string) error
}

// Store routes every repository access to the active backend.
type Store struct {
	gate     *Gate
	mongo    *Mongo
	fallback *Fallback
}

func New(gate *Gate, mongo *Mongo, fallback *Fallback) *Store {
	return &Store{gate: gate, mongo: mongo, fallback: fallback}
}

// FallbackActive reports whether requests are currently served from
// the in-memory dataset.
func (s *Store) FallbackActive() bool {
	return s.mongo == nil || !s.gate.Available()
}

func (s *Store) Scenarios() ScenarioStore {
	if s.FallbackActive() {
		return s.fallback.Scenarios()
	}
	return s.mongo.Scenarios()
}

func (s *Store) Scripts() ScriptStore {
	if s.FallbackActive() {
		return s.fallback.Scripts()
	}
	return s.mongo.Scripts()
}

func (s *Store) Tips() TipStore {
	if s.FallbackActive() {
		return s.fallback.Tips()
	}
	return s.mongo.Tips()
}

func (s *Store) Stories() StoryStore {
	if s.FallbackActive() {
		return s.fallback.Stories()
	}
	return s.mongo.Stories()
}

func (s *Store) Tools() ToolsStore {
	if s.FallbackActive() {
		return s.fallback.Tools()
	}
	return s.mongo.Tools()
}

func (s *Store) Users() UserStore {
	if s.FallbackActive() {
		return s.fallback.Users()
	}
	return s.mongo.Users()
}

// Stats aggregates platform counters. The fallback dataset reports
// zeros, matching the degraded-mode contract.
func (s *Store) Stats(ctx context.Context) (*models.Stats, error) {
	if s.FallbackActive() {
		return &models.Stats{}, nil
	}
	return s.mongo.Stats(ctx)
}
