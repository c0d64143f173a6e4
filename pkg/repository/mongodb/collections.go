// Package mongodb stores the portfolio collections as native MongoDB documents.
// Records carry ObjectIDs and BSON dates; they are converted to string ids and
// UTC times before leaving the package.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collPortfolio = "portfolio"
	collSkills    = "skills"
	collProjects  = "projects"
	collEducation = "education"
	collContact   = "contact"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// index on portfolio.singleton keeps the collection to one document.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		collPortfolio: {{
			Keys:    bson.D{{Key: "singleton", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("portfolio_singleton"),
		}},
		collProjects: {{
			Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "createdAt", Value: -1}},
		}},
		collEducation: {{
			Keys: bson.D{{Key: "order", Value: -1}},
		}},
		collContact: {{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		}},
	}
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}

// now is truncated to the millisecond precision of BSON dates.
func now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

// findAll decodes every record matched by filter.
func findAll[R any](ctx context.Context, coll *mongo.Collection, filter any, opts *options.FindOptions) ([]R, error) {
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var recs []R
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func toAny[R any](recs []R) []any {
	out := make([]any, len(recs))
	for i, r := range recs {
		out[i] = r
	}
	return out
}
