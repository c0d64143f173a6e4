package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/contact"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/education"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/profile"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/project"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/skill"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/store"
)

// PortfolioRepository implements profile.Repository.
type PortfolioRepository struct {
	coll *mongo.Collection
}

func NewPortfolioRepository(db *mongo.Database) *PortfolioRepository {
	return &PortfolioRepository{coll: db.Collection(collPortfolio)}
}

func (r *PortfolioRepository) Get(ctx context.Context) (*profile.Portfolio, error) {
	var rec portfolioRecord
	err := r.coll.FindOne(ctx, bson.D{}, options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find portfolio: %w", err)
	}
	p := rec.toDomain()
	return &p, nil
}

func (r *PortfolioRepository) Create(ctx context.Context, p profile.Portfolio) (profile.Portfolio, error) {
	ts := now()
	rec := portfolioRecord{
		ID:           primitive.NewObjectID(),
		Singleton:    true,
		PersonalInfo: p.PersonalInfo,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return profile.Portfolio{}, store.ErrAlreadyExists
		}
		return profile.Portfolio{}, fmt.Errorf("insert portfolio: %w", err)
	}
	return rec.toDomain(), nil
}

// SkillRepository implements skill.Repository.
type SkillRepository struct {
	coll *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{coll: db.Collection(collSkills)}
}

func (r *SkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	rec := newSkillRecord(s, now())
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return skill.Skill{}, fmt.Errorf("insert skill: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *SkillRepository) CreateMany(ctx context.Context, skills []skill.Skill) ([]skill.Skill, error) {
	if len(skills) == 0 {
		return []skill.Skill{}, nil
	}
	ts := now()
	recs := make([]skillRecord, len(skills))
	out := make([]skill.Skill, len(skills))
	for i, s := range skills {
		recs[i] = newSkillRecord(s, ts)
		out[i] = recs[i].toDomain()
	}
	if _, err := r.coll.InsertMany(ctx, toAny(recs)); err != nil {
		return nil, fmt.Errorf("insert skills: %w", err)
	}
	return out, nil
}

func (r *SkillRepository) List(ctx context.Context) ([]skill.Skill, error) {
	recs, err := findAll[skillRecord](ctx, r.coll, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find skills: %w", err)
	}
	out := make([]skill.Skill, len(recs))
	for i, rec := range recs {
		out[i] = rec.toDomain()
	}
	return out, nil
}

// ProjectRepository implements project.Repository.
type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(collProjects)}
}

func (r *ProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	rec := newProjectRecord(p, now())
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return project.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *ProjectRepository) CreateMany(ctx context.Context, projects []project.Project) ([]project.Project, error) {
	if len(projects) == 0 {
		return []project.Project{}, nil
	}
	ts := now()
	recs := make([]projectRecord, len(projects))
	out := make([]project.Project, len(projects))
	for i, p := range projects {
		recs[i] = newProjectRecord(p, ts)
		out[i] = recs[i].toDomain()
	}
	if _, err := r.coll.InsertMany(ctx, toAny(recs)); err != nil {
		return nil, fmt.Errorf("insert projects: %w", err)
	}
	return out, nil
}

func (r *ProjectRepository) ListActive(ctx context.Context) ([]project.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	recs, err := findAll[projectRecord](ctx, r.coll, bson.D{{Key: "isActive", Value: true}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	out := make([]project.Project, len(recs))
	for i, rec := range recs {
		out[i] = rec.toDomain()
	}
	return out, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return project.Project{}, store.ErrInvalidID
	}
	var rec projectRecord
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return project.Project{}, store.ErrNotFound
		}
		return project.Project{}, fmt.Errorf("find project: %w", err)
	}
	return rec.toDomain(), nil
}

// EducationRepository implements education.Repository.
type EducationRepository struct {
	coll *mongo.Collection
}

func NewEducationRepository(db *mongo.Database) *EducationRepository {
	return &EducationRepository{coll: db.Collection(collEducation)}
}

func (r *EducationRepository) Create(ctx context.Context, e education.Education) (education.Education, error) {
	rec := newEducationRecord(e, now())
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return education.Education{}, fmt.Errorf("insert education: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *EducationRepository) CreateMany(ctx context.Context, items []education.Education) ([]education.Education, error) {
	if len(items) == 0 {
		return []education.Education{}, nil
	}
	ts := now()
	recs := make([]educationRecord, len(items))
	out := make([]education.Education, len(items))
	for i, e := range items {
		recs[i] = newEducationRecord(e, ts)
		out[i] = recs[i].toDomain()
	}
	if _, err := r.coll.InsertMany(ctx, toAny(recs)); err != nil {
		return nil, fmt.Errorf("insert education: %w", err)
	}
	return out, nil
}

func (r *EducationRepository) List(ctx context.Context) ([]education.Education, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: -1}, {Key: "_id", Value: 1}})
	recs, err := findAll[educationRecord](ctx, r.coll, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find education: %w", err)
	}
	out := make([]education.Education, len(recs))
	for i, rec := range recs {
		out[i] = rec.toDomain()
	}
	return out, nil
}

// ContactRepository implements contact.Repository.
type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(collContact)}
}

func (r *ContactRepository) Create(ctx context.Context, m contact.Message) (contact.Message, error) {
	rec := newContactRecord(m, now())
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return contact.Message{}, fmt.Errorf("insert contact: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *ContactRepository) List(ctx context.Context) ([]contact.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	recs, err := findAll[contactRecord](ctx, r.coll, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find contact: %w", err)
	}
	out := make([]contact.Message, len(recs))
	for i, rec := range recs {
		out[i] = rec.toDomain()
	}
	return out, nil
}
