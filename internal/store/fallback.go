package store

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/speakup-app/speakup-api/internal/models"
)

// Fallback is the in-memory backend used while the database is
// unreachable. It is an explicitly constructed instance: seeding and
// counter zeroing happen once in NewFallback, never as an import side
// effect. Each table carries its own lock so unrelated entities are
// not serialized against each other. IDs are sequential decimal
// strings per table, continuing after the seeded rows.
type Fallback struct {
	scenarios *memScenarios
	scripts   *memScripts
	tips      *memTips
	stories   *memStories
	tools     *memTools
	users     *memUsers
}

func NewFallback() *Fallback {
	base := time.Now().UTC().Add(-24 * time.Hour)
	scenarios := seedScenarios(base)
	tips := seedTips(base)
	stories := seedStories(base)
	return &Fallback{
		scenarios: &memScenarios{items: scenarios, nextID: len(scenarios)},
		scripts:   &memScripts{items: seedScripts(base)},
		tips:      &memTips{items: tips, nextID: len(tips)},
		stories:   &memStories{items: stories, nextID: len(stories)},
		tools: &memTools{
			phrases:      seedPhrases(base),
			affirmations: seedAffirmations(base),
			practice:     seedPracticeScripts(base),
		},
		users: &memUsers{byEmail: map[string]*models.User{}, byID: map[string]*models.User{}},
	}
}

func (f *Fallback) Scenarios() ScenarioStore { return f.scenarios }
func (f *Fallback) Scripts() ScriptStore     { return f.scripts }
func (f *Fallback) Tips() TipStore           { return f.tips }
func (f *Fallback) Stories() StoryStore      { return f.stories }
func (f *Fallback) Tools() ToolsStore        { return f.tools }
func (f *Fallback) Users() UserStore         { return f.users }

// paginate applies the shared skip/take math to an already filtered,
// already sorted slice.
func paginate[T any](items []T, p Page) []T {
	skip := p.Skip()
	if skip >= len(items) {
		return []T{}
	}
	end := skip + p.Limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-skip)
	copy(out, items[skip:end])
	return out
}

// newestFirst returns a reversed copy: tables append in creation
// order, so reverse order is newest-first.
func newestFirst[T any](items []T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// --- Scenarios ---

type memScenarios struct {
	mu     sync.RWMutex
	items  []models.Scenario
	nextID int
}

func (s *memScenarios) List(_ context.Context, f ScenarioFilter, p Page) ([]models.Scenario, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]models.Scenario, 0, len(s.items))
	for _, sc := range s.items {
		if f.Category != "" && sc.Category != f.Category {
			continue
		}
		if f.Difficulty != "" && sc.Difficulty != f.Difficulty {
			continue
		}
		filtered = append(filtered, sc)
	}
	return paginate(newestFirst(filtered), p), len(filtered), nil
}

func (s *memScenarios) GetByID(_ context.Context, id string) (*models.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sc := range s.items {
		if sc.ID == id {
			out := sc
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memScenarios) ByCategory(_ context.Context, category string) ([]models.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Scenario, 0)
	for _, sc := range s.items {
		if sc.Category == category {
			out = append(out, sc)
		}
	}
	return newestFirst(out), nil
}

func (s *memScenarios) Search(_ context.Context, q string) ([]models.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Scenario, 0)
	for _, sc := range s.items {
		if containsFold(sc.Title, q) || containsFold(sc.Description, q) {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (s *memScenarios) Create(_ context.Context, sc *models.Scenario) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	sc.ID = strconv.Itoa(s.nextID)
	sc.CreatedAt = time.Now().UTC()
	s.items = append(s.items, *sc)
	return nil
}

// --- Confidence scripts ---

type memScripts struct {
	mu    sync.RWMutex
	items []models.ConfidenceScript
}

func (s *memScripts) List(_ context.Context, f ScriptFilter, p Page) ([]models.ConfidenceScript, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := make([]models.ConfidenceScript, 0, len(s.items))
	for _, cs := range s.items {
		if f.Tone != "" && cs.Tone != f.Tone {
			continue
		}
		filtered = append(filtered, cs)
	}
	return paginate(newestFirst(filtered), p), len(filtered), nil
}

func (s *memScripts) GetByID(_ context.Context, id string) (*models.ConfidenceScript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cs := range s.items {
		if cs.ID == id {
			out := cs
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memScripts) ByScenario(_ context.Context, scenarioID string) ([]models.ConfidenceScript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ConfidenceScript, 0)
	for _, cs := range s.items {
		if cs.Scenario == scenarioID {
			out = append(out, cs)
		}
	}
	return out, nil
}

func (s *memScripts) ByIDs(_ context.Context, ids []string) ([]models.ConfidenceScript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]models.ConfidenceScript, 0, len(ids))
	for _, cs := range s.items {
		if want[cs.ID] {
			out = append(out, cs)
		}
	}
	return out, nil
}

// --- Tips ---

type memTips struct {
	mu     sync.RWMutex
	items  []models.Tip
	nextID int
}

func (t *memTips) List(_ context.Context, f TipFilter, p Page) ([]models.Tip, int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	filtered := make([]models.Tip, 0, len(t.items))
	for _, tip := range t.items {
		if !tip.IsApproved {
			continue
		}
		if f.Category != "" && tip.Category != f.Category {
			continue
		}
		filtered = append(filtered, tip)
	}
	sorted := sortedTips(filtered, f.Sort)
	return paginate(sorted, p), len(filtered), nil
}

// sortedTips keeps creation order on like ties (stable sort over the
// creation-ordered slice).
func sortedTips(items []models.Tip, by string) []models.Tip {
	if by == "likes" {
		out := make([]models.Tip, len(items))
		copy(out, items)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
		return out
	}
	return newestFirst(items)
}

func (t *memTips) Create(_ context.Context, tip *models.Tip) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	tip.ID = strconv.Itoa(t.nextID)
	tip.CreatedAt = time.Now().UTC()
	if tip.LikedBy == nil {
		tip.LikedBy = []string{}
	}
	t.items = append(t.items, *tip)
	return nil
}

func (t *memTips) ToggleLike(_ context.Context, id, userID string) (*LikeResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.items {
		if t.items[i].ID != id {
			continue
		}
		action, likes, likedBy := toggleMembership(t.items[i].Likes, t.items[i].LikedBy, userID)
		t.items[i].Likes = likes
		t.items[i].LikedBy = likedBy
		return &LikeResult{Action: action, Likes: likes}, nil
	}
	return nil, ErrNotFound
}

// toggleMembership flips userID in the set and moves the counter by
// exactly one, clamped at zero. It always returns a fresh slice so
// readers holding an earlier copy are never mutated under them.
func toggleMembership(likes int, likedBy []string, userID string) (string, int, []string) {
	for i, id := range likedBy {
		if id == userID {
			out := make([]string, 0, len(likedBy)-1)
			out = append(out, likedBy[:i]...)
			out = append(out, likedBy[i+1:]...)
			likes--
			if likes < 0 {
				likes = 0
			}
			return "unliked", likes, out
		}
	}
	out := make([]string, 0, len(likedBy)+1)
	out = append(out, likedBy...)
	out = append(out, userID)
	return "liked", likes + 1, out
}

// --- Success stories ---

type memStories struct {
	mu     sync.RWMutex
	items  []models.SuccessStory
	nextID int
}

func (s *memStories) List(_ context.Context, f StoryFilter, p Page) ([]models.SuccessStory, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := make([]models.SuccessStory, 0, len(s.items))
	for _, st := range s.items {
		if !st.IsApproved {
			continue
		}
		if f.Category != "" && st.Category != f.Category {
			continue
		}
		if f.Feeling != "" && st.Feeling != f.Feeling {
			continue
		}
		filtered = append(filtered, st)
	}
	sorted := sortedStories(filtered, f.Sort)
	return paginate(sorted, p), len(filtered), nil
}

func sortedStories(items []models.SuccessStory, by string) []models.SuccessStory {
	if by == "likes" {
		out := make([]models.SuccessStory, len(items))
		copy(out, items)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
		return out
	}
	return newestFirst(items)
}

func (s *memStories) Create(_ context.Context, story *models.SuccessStory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	story.ID = strconv.Itoa(s.nextID)
	story.CreatedAt = time.Now().UTC()
	if story.LikedBy == nil {
		story.LikedBy = []string{}
	}
	s.items = append(s.items, *story)
	return nil
}

func (s *memStories) ToggleLike(_ context.Context, id, userID string) (*LikeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		action, likes, likedBy := toggleMembership(s.items[i].Likes, s.items[i].LikedBy, userID)
		s.items[i].Likes = likes
		s.items[i].LikedBy = likedBy
		return &LikeResult{Action: action, Likes: likes}, nil
	}
	return nil, ErrNotFound
}

// --- Tools ---

type memTools struct {
	phrases      []models.Phrase
	affirmations []models.Affirmation
	practice     []models.PracticeScript
}

func (t *memTools) Phrases(_ context.Context) ([]models.Phrase, error) {
	out := make([]models.Phrase, len(t.phrases))
	copy(out, t.phrases)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (t *memTools) Affirmations(_ context.Context) ([]models.Affirmation, error) {
	out := make([]models.Affirmation, len(t.affirmations))
	copy(out, t.affirmations)
	return out, nil
}

func (t *memTools) PracticeScripts(_ context.Context) ([]models.PracticeScript, error) {
	return newestFirst(t.practice), nil
}

// --- Users ---

type memUsers struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	byID    map[string]*models.User
	nextID  int
}

func (u *memUsers) Create(_ context.Context, user *models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.byEmail[user.Email]; ok {
		return ErrDuplicateEmail
	}
	u.nextID++
	user.ID = strconv.Itoa(u.nextID)
	user.CreatedAt = time.Now().UTC()
	if user.SavedScripts == nil {
		user.SavedScripts = []string{}
	}
	stored := *user
	u.byEmail[user.Email] = &stored
	u.byID[user.ID] = &stored
	return nil
}

func (u *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	user, ok := u.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	out := *user
	return &out, nil
}

func (u *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	user, ok := u.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *user
	return &out, nil
}

func (u *memUsers) UpdateProfile(_ context.Context, id string, name, email, passwordHash string) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if email != "" && email != user.Email {
		if _, taken := u.byEmail[email]; taken {
			return nil, ErrDuplicateEmail
		}
		delete(u.byEmail, user.Email)
		user.Email = email
		u.byEmail[email] = user
	}
	if name != "" {
		user.Name = name
	}
	if passwordHash != "" {
		user.Password = passwordHash
	}
	out := *user
	return &out, nil
}

func (u *memUsers) SaveScript(_ context.Context, userID, scriptID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.byID[userID]
	if !ok {
		return ErrNotFound
	}
	for _, id := range user.SavedScripts {
		if id == scriptID {
			return ErrAlreadySaved
		}
	}
	user.SavedScripts = append(append([]string{}, user.SavedScripts...), scriptID)
	return nil
}

func (u *memUsers) UnsaveScript(_ context.Context, userID, scriptID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.byID[userID]
	if !ok {
		return ErrNotFound
	}
	kept := make([]string, 0, len(user.SavedScripts))
	for _, id := range user.SavedScripts {
		if id != scriptID {
			kept = append(kept, id)
		}
	}
	user.SavedScripts = kept
	return nil
}
