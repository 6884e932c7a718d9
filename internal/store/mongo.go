package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/speakup-app/speakup-api/internal/models"
)

// Mongo is the persisted backend. IDs are ObjectID hex strings
// generated at insert time so both backends expose the same shape.
type Mongo struct {
	scenarios *mongoScenarios
	scripts   *mongoScripts
	tips      *mongoTips
	stories   *mongoStories
	tools     *mongoTools
	users     *mongoUsers
	db        *mongo.Database
}

func NewMongo(ctx context.Context, db *mongo.Database) (*Mongo, error) {
	m := &Mongo{
		scenarios: &mongoScenarios{c: db.Collection("scenarios")},
		scripts:   &mongoScripts{c: db.Collection("confidencescripts")},
		tips:      &mongoTips{c: db.Collection("tips")},
		stories:   &mongoStories{c: db.Collection("successstories")},
		tools: &mongoTools{
			phrases:      db.Collection("phrases"),
			affirmations: db.Collection("affirmations"),
			practice:     db.Collection("practicescripts"),
		},
		users: &mongoUsers{c: db.Collection("users")},
		db:    db,
	}
	_, err := m.users.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mongo) Scenarios() ScenarioStore { return m.scenarios }
func (m *Mongo) Scripts() ScriptStore    { return m.scripts }
func (m *Mongo) Tips() TipStore          { return m.tips }
func (m *Mongo) Stories() StoryStore     { return m.stories }
func (m *Mongo) Tools() ToolsStore       { return m.tools }
func (m *Mongo) Users() UserStore        { return m.users }

func newID() string { return primitive.NewObjectID().Hex() }

// sortFor maps the API sort option to a Mongo sort document. Like
// sorts break ties by creation order so ordering stays stable.
func sortFor(sort string) bson.D {
	if sort == "likes" {
		return bson.D{{Key: "likes", Value: -1}, {Key: "createdAt", Value: 1}}
	}
	return bson.D{{Key: "createdAt", Value: -1}}
}

// --- Scenarios ---

type mongoScenarios struct{ c *mongo.Collection }

func (s *mongoScenarios) List(ctx context.Context, f ScenarioFilter, p Page) ([]models.Scenario, int, error) {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Difficulty != "" {
		query["difficulty"] = f.Difficulty
	}

	total, err := s.c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(sortFor("")).
		SetSkip(int64(p.Skip())).
		SetLimit(int64(p.Limit))
	cursor, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Scenario, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

func (s *mongoScenarios) GetByID(ctx context.Context, id string) (*models.Scenario, error) {
	var sc models.Scenario
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *mongoScenarios) ByCategory(ctx context.Context, category string) ([]models.Scenario, error) {
	cursor, err := s.c.Find(ctx, bson.M{"category": category}, options.Find().SetSort(sortFor("")))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Scenario, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoScenarios) Search(ctx context.Context, q string) ([]models.Scenario, error) {
	pattern := primitive.Regex{Pattern: regexQuote(q), Options: "i"}
	query := bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"description": pattern},
	}}
	cursor, err := s.c.Find(ctx, query, options.Find().SetSort(sortFor("")))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Scenario, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoScenarios) Create(ctx context.Context, sc *models.Scenario) error {
	sc.ID = newID()
	sc.CreatedAt = time.Now().UTC()
	_, err := s.c.InsertOne(ctx, sc)
	return err
}

// --- Confidence scripts ---

type mongoScripts struct{ c *mongo.Collection }

func (s *mongoScripts) List(ctx context.Context, f ScriptFilter, p Page) ([]models.ConfidenceScript, int, error) {
	query := bson.M{}
	if f.Tone != "" {
		query["tone"] = f.Tone
	}

	total, err := s.c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(sortFor("")).
		SetSkip(int64(p.Skip())).
		SetLimit(int64(p.Limit))
	cursor, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]models.ConfidenceScript, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

func (s *mongoScripts) GetByID(ctx context.Context, id string) (*models.ConfidenceScript, error) {
	var cs models.ConfidenceScript
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cs)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

func (s *mongoScripts) ByScenario(ctx context.Context, scenarioID string) ([]models.ConfidenceScript, error) {
	cursor, err := s.c.Find(ctx, bson.M{"scenario": scenarioID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.ConfidenceScript, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoScripts) ByIDs(ctx context.Context, ids []string) ([]models.ConfidenceScript, error) {
	if len(ids) == 0 {
		return []models.ConfidenceScript{}, nil
	}
	cursor, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.ConfidenceScript, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// --- Tips ---

type mongoTips struct{ c *mongo.Collection }

func (t *mongoTips) List(ctx context.Context, f TipFilter, p Page) ([]models.Tip, int, error) {
	query := bson.M{"isApproved": true}
	if f.Category != "" {
		query["category"] = f.Category
	}

	total, err := t.c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(sortFor(f.Sort)).
		SetSkip(int64(p.Skip())).
		SetLimit(int64(p.Limit))
	cursor, err := t.c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Tip, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

func (t *mongoTips) Create(ctx context.Context, tip *models.Tip) error {
	tip.ID = newID()
	tip.CreatedAt = time.Now().UTC()
	if tip.LikedBy == nil {
		tip.LikedBy = []string{}
	}
	_, err := t.c.InsertOne(ctx, tip)
	return err
}

func (t *mongoTips) ToggleLike(ctx context.Context, id, userID string) (*LikeResult, error) {
	return toggleLike(ctx, t.c, id, userID)
}

// --- Success stories ---

type mongoStories struct{ c *mongo.Collection }

func (s *mongoStories) List(ctx context.Context, f StoryFilter, p Page) ([]models.SuccessStory, int, error) {
	query := bson.M{"isApproved": true}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Feeling != "" {
		query["feeling"] = f.Feeling
	}

	total, err := s.c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(sortFor(f.Sort)).
		SetSkip(int64(p.Skip())).
		SetLimit(int64(p.Limit))
	cursor, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]models.SuccessStory, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

func (s *mongoStories) Create(ctx context.Context, story *models.SuccessStory) error {
	story.ID = newID()
	story.CreatedAt = time.Now().UTC()
	if story.LikedBy == nil {
		story.LikedBy = []string{}
	}
	_, err := s.c.InsertOne(ctx, story)
	return err
}

func (s *mongoStories) ToggleLike(ctx context.Context, id, userID string) (*LikeResult, error) {
	return toggleLike(ctx, s.c, id, userID)
}

// toggleLike flips a user's like using guarded atomic updates so the
// counter and the likedBy set can never diverge under concurrent
// toggles: each branch filters on current membership and applies both
// mutations in a single document update.
func toggleLike(ctx context.Context, c *mongo.Collection, id, userID string) (*LikeResult, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc struct {
		Likes int `bson:"likes"`
	}
	err := c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "likedBy": bson.M{"$ne": userID}},
		bson.M{"$addToSet": bson.M{"likedBy": userID}, "$inc": bson.M{"likes": 1}},
		after,
	).Decode(&doc)
	if err == nil {
		return &LikeResult{Action: "liked", Likes: doc.Likes}, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// Already a member (or the id is unknown): try the unlike branch.
	err = c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "likedBy": userID},
		bson.M{"$pull": bson.M{"likedBy": userID}, "$inc": bson.M{"likes": -1}},
		after,
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if doc.Likes < 0 {
		// Counter drifted below the floor (bad seed data); repair it.
		_, _ = c.UpdateOne(ctx, bson.M{"_id": id, "likes": bson.M{"$lt": 0}},
			bson.M{"$set": bson.M{"likes": 0}})
		doc.Likes = 0
	}
	return &LikeResult{Action: "unliked", Likes: doc.Likes}, nil
}

// --- Tools ---

type mongoTools struct {
	phrases      *mongo.Collection
	affirmations *mongo.Collection
	practice     *mongo.Collection
}

func (t *mongoTools) Phrases(ctx context.Context) ([]models.Phrase, error) {
	cursor, err := t.phrases.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "category", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Phrase, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (t *mongoTools) Affirmations(ctx context.Context) ([]models.Affirmation, error) {
	cursor, err := t.affirmations.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Affirmation, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (t *mongoTools) PracticeScripts(ctx context.Context) ([]models.PracticeScript, error) {
	cursor, err := t.practice.Find(ctx, bson.M{}, options.Find().SetSort(sortFor("")))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.PracticeScript, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// --- Users ---

type mongoUsers struct{ c *mongo.Collection }

func (u *mongoUsers) Create(ctx context.Context, user *models.User) error {
	user.ID = newID()
	user.CreatedAt = time.Now().UTC()
	if user.SavedScripts == nil {
		user.SavedScripts = []string{}
	}
	_, err := u.c.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (u *mongoUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.c.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *mongoUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := u.c.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *mongoUsers) UpdateProfile(ctx context.Context, id string, name, email, passwordHash string) (*models.User, error) {
	set := bson.M{}
	if name != "" {
		set["name"] = name
	}
	if email != "" {
		set["email"] = email
	}
	if passwordHash != "" {
		set["password"] = passwordHash
	}
	// Nothing to change: MongoDB rejects an empty $set, and the
	// fallback backend treats this as a no-op. Match it.
	if len(set) == 0 {
		return u.GetByID(ctx, id)
	}

	var user models.User
	err := u.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *mongoUsers) SaveScript(ctx context.Context, userID, scriptID string) error {
	res, err := u.c.UpdateOne(ctx,
		bson.M{"_id": userID, "savedScripts": bson.M{"$ne": scriptID}},
		bson.M{"$addToSet": bson.M{"savedScripts": scriptID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the user is unknown or the script is already saved.
		if _, err := u.GetByID(ctx, userID); err != nil {
			return err
		}
		return ErrAlreadySaved
	}
	return nil
}

func (u *mongoUsers) UnsaveScript(ctx context.Context, userID, scriptID string) error {
	res, err := u.c.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"savedScripts": scriptID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Stats ---

func (m *Mongo) Stats(ctx context.Context) (*models.Stats, error) {
	stories, _, err := m.stories.List(ctx, StoryFilter{}, Page{Number: 1, Limit: 10000})
	if err != nil {
		return nil, err
	}
	tips, _, err := m.tips.List(ctx, TipFilter{}, Page{Number: 1, Limit: 10000})
	if err != nil {
		return nil, err
	}
	return computeStats(stories, tips), nil
}
