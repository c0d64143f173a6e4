package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/contact"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/education"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/profile"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/project"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/skill"
)

type portfolioRecord struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Singleton    bool                 `bson:"singleton"`
	PersonalInfo profile.PersonalInfo `bson:"personalInfo"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

func (r portfolioRecord) toDomain() profile.Portfolio {
	return profile.Portfolio{
		ID:           r.ID.Hex(),
		PersonalInfo: r.PersonalInfo,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

type skillRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Category     string             `bson:"category"`
	Name         string             `bson:"name"`
	Level        int                `bson:"level"`
	CategoryType string             `bson:"categoryType"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func newSkillRecord(s skill.Skill, ts time.Time) skillRecord {
	return skillRecord{
		ID:           primitive.NewObjectID(),
		Category:     s.Category,
		Name:         s.Name,
		Level:        s.Level,
		CategoryType: s.CategoryType,
		CreatedAt:    ts,
	}
}

func (r skillRecord) toDomain() skill.Skill {
	return skill.Skill{
		ID:           r.ID.Hex(),
		Category:     r.Category,
		Name:         r.Name,
		Level:        r.Level,
		CategoryType: r.CategoryType,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

type projectRecord struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	Description      string             `bson:"description"`
	Duration         string             `bson:"duration"`
	Technologies     []string           `bson:"technologies"`
	Features         []string           `bson:"features"`
	Responsibilities []string           `bson:"responsibilities"`
	LiveDemo         string             `bson:"liveDemo"`
	GitHub           string             `bson:"github"`
	Image            string             `bson:"image"`
	IsActive         bool               `bson:"isActive"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

func newProjectRecord(p project.Project, ts time.Time) projectRecord {
	return projectRecord{
		ID:               primitive.NewObjectID(),
		Title:            p.Title,
		Description:      p.Description,
		Duration:         p.Duration,
		Technologies:     p.Technologies,
		Features:         p.Features,
		Responsibilities: p.Responsibilities,
		LiveDemo:         p.LiveDemo,
		GitHub:           p.GitHub,
		Image:            p.Image,
		IsActive:         p.IsActive,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}
}

func (r projectRecord) toDomain() project.Project {
	return project.Project{
		ID:               r.ID.Hex(),
		Title:            r.Title,
		Description:      r.Description,
		Duration:         r.Duration,
		Technologies:     r.Technologies,
		Features:         r.Features,
		Responsibilities: r.Responsibilities,
		LiveDemo:         r.LiveDemo,
		GitHub:           r.GitHub,
		Image:            r.Image,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt.UTC(),
		UpdatedAt:        r.UpdatedAt.UTC(),
	}
}

type educationRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Degree      string             `bson:"degree"`
	Institution string             `bson:"institution"`
	Board       string             `bson:"board"`
	Stream      string             `bson:"stream"`
	Performance string             `bson:"performance"`
	Year        string             `bson:"year"`
	Description string             `bson:"description"`
	Order       int                `bson:"order"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func newEducationRecord(e education.Education, ts time.Time) educationRecord {
	return educationRecord{
		ID:          primitive.NewObjectID(),
		Degree:      e.Degree,
		Institution: e.Institution,
		Board:       e.Board,
		Stream:      e.Stream,
		Performance: e.Performance,
		Year:        e.Year,
		Description: e.Description,
		Order:       e.Order,
		CreatedAt:   ts,
	}
}

func (r educationRecord) toDomain() education.Education {
	return education.Education{
		ID:          r.ID.Hex(),
		Degree:      r.Degree,
		Institution: r.Institution,
		Board:       r.Board,
		Stream:      r.Stream,
		Performance: r.Performance,
		Year:        r.Year,
		Description: r.Description,
		Order:       r.Order,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

type contactRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func newContactRecord(m contact.Message, ts time.Time) contactRecord {
	return contactRecord{
		ID:        primitive.NewObjectID(),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: ts,
	}
}

func (r contactRecord) toDomain() contact.Message {
	return contact.Message{
		ID:        r.ID.Hex(),
		Name:      r.Name,
		Email:     r.Email,
		Subject:   r.Subject,
		Message:   r.Message,
		Status:    contact.Status(r.Status),
		CreatedAt: r.CreatedAt.UTC(),
	}
}
