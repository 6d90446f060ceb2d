package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/innovest/platform/internal/core/domain"
)

const projectsCollection = "projects"

type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

type projectDoc struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty"`
	Title               string               `bson:"title"`
	Description         string               `bson:"description"`
	Industry            string               `bson:"industry"`
	ProjectStage        string               `bson:"project_stage"`
	FundingNeeded       float64              `bson:"funding_needed"`
	InnovatorID         primitive.ObjectID   `bson:"innovator_id"`
	Likes               []primitive.ObjectID `bson:"likes"`
	InterestedInvestors []primitive.ObjectID `bson:"interested_investors"`
	CreatedAt           time.Time            `bson:"created_at"`
	UpdatedAt           time.Time            `bson:"updated_at"`
}

func (d projectDoc) toDomain() *domain.Project {
	return &domain.Project{
		ID:                  d.ID.Hex(),
		Title:               d.Title,
		Description:         d.Description,
		Industry:            d.Industry,
		ProjectStage:        d.ProjectStage,
		FundingNeeded:       d.FundingNeeded,
		InnovatorID:         d.InnovatorID.Hex(),
		Likes:               hexIDs(d.Likes),
		InterestedInvestors: hexIDs(d.InterestedInvestors),
		CreatedAt:           d.CreatedAt.UTC(),
		UpdatedAt:           d.UpdatedAt.UTC(),
	}
}

func hexIDs(oids []primitive.ObjectID) []string {
	ids := make([]string, 0, len(oids))
	for _, oid := range oids {
		ids = append(ids, oid.Hex())
	}
	return ids
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	innovatorOID, err := primitive.ObjectIDFromHex(p.InnovatorID)
	if err != nil {
		return nil, fmt.Errorf("insert project: bad innovator id: %w", err)
	}

	doc := projectDoc{
		Title:               p.Title,
		Description:         p.Description,
		Industry:            p.Industry,
		ProjectStage:        p.ProjectStage,
		FundingNeeded:       p.FundingNeeded,
		InnovatorID:         innovatorOID,
		Likes:               []primitive.ObjectID{},
		InterestedInvestors: []primitive.ObjectID{},
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc projectDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]*domain.Project, error) {
	return r.find(ctx, bson.M{}, 0)
}

func (r *ProjectRepository) FindByInnovator(ctx context.Context, innovatorID string) ([]*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(innovatorID)
	if err != nil {
		return nil, nil
	}
	return r.find(ctx, bson.M{"innovator_id": oid}, 0)
}

func (r *ProjectRepository) FindLikedBy(ctx context.Context, investorID string) ([]*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(investorID)
	if err != nil {
		return nil, nil
	}
	return r.find(ctx, bson.M{"likes": oid}, 0)
}

func (r *ProjectRepository) FindInterestedIn(ctx context.Context, investorID string) ([]*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(investorID)
	if err != nil {
		return nil, nil
	}
	return r.find(ctx, bson.M{"interested_investors": oid}, 0)
}

func (r *ProjectRepository) FindRecent(ctx context.Context, limit int) ([]*domain.Project, error) {
	return r.find(ctx, bson.M{}, int64(limit))
}

// ToggleLike flips the investor's membership in the likes set as a single
// atomic update per direction. The set-membership filter makes concurrent
// toggles by the same investor converge without ever duplicating an id.
func (r *ProjectRepository) ToggleLike(ctx context.Context, projectID, investorID string) (*domain.Project, bool, error) {
	projectOID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, false, domain.ErrProjectNotFound
	}
	investorOID, err := primitive.ObjectIDFromHex(investorID)
	if err != nil {
		return nil, false, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	// Not yet liked → add.
	var doc projectDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": projectOID, "likes": bson.M{"$ne": investorOID}},
		bson.M{"$addToSet": bson.M{"likes": investorOID}, "$set": bson.M{"updated_at": now}},
		after,
	).Decode(&doc)
	if err == nil {
		return doc.toDomain(), true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, fmt.Errorf("toggle like: %w", err)
	}

	// Already liked → remove.
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": projectOID, "likes": investorOID},
		bson.M{"$pull": bson.M{"likes": investorOID}, "$set": bson.M{"updated_at": now}},
		after,
	).Decode(&doc)
	if err == nil {
		return doc.toDomain(), false, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, domain.ErrProjectNotFound
	}
	return nil, false, fmt.Errorf("toggle like: %w", err)
}

// AddInterest adds the investor to the interest set if absent. Membership is
// monotonic: there is no removal path.
func (r *ProjectRepository) AddInterest(ctx context.Context, projectID, investorID string) (*domain.Project, bool, error) {
	projectOID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, false, domain.ErrProjectNotFound
	}
	investorOID, err := primitive.ObjectIDFromHex(investorID)
	if err != nil {
		return nil, false, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc projectDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": projectOID, "interested_investors": bson.M{"$ne": investorOID}},
		bson.M{
			"$addToSet": bson.M{"interested_investors": investorOID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == nil {
		return doc.toDomain(), true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, fmt.Errorf("add interest: %w", err)
	}

	// Either already interested or the project does not exist.
	existing, err := r.FindByID(ctx, projectID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// EnsureIndexes creates the secondary indexes the list queries rely on.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "innovator_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ProjectRepository) find(ctx context.Context, filter bson.M, limit int64) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	defer cur.Close(ctx)

	var projects []*domain.Project
	for cur.Next(ctx) {
		var doc projectDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}
