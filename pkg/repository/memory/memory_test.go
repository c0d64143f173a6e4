package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/profile"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/project"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/skill"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/store"
)

func fixedClock(t *testing.T, ts time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = prev })
}

func TestPortfolioSingleton(t *testing.T) {
	ctx := context.Background()
	repo := NewPortfolioRepository()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	created, err := repo.Create(ctx, profile.Portfolio{PersonalInfo: profile.PersonalInfo{Name: "Ada"}})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, profile.Portfolio{})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
	assert.Equal(t, 1, repo.Len())

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
}

func TestPortfolioConcurrentCreate(t *testing.T) {
	repo := NewPortfolioRepository()
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Create(context.Background(), profile.Portfolio{}); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestSkillBatchSharesTimestamp(t *testing.T) {
	ts := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	fixedClock(t, ts)
	repo := NewSkillRepository()

	out, err := repo.CreateMany(context.Background(), []skill.Skill{{Name: "Go"}, {Name: "SQL"}})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.NotEqual(t, out[0].ID, out[1].ID)
	for _, s := range out {
		assert.Equal(t, ts, s.CreatedAt)
	}
	assert.Equal(t, 2, repo.Len())
}

func TestProjectLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()
	active, err := repo.Create(ctx, project.Project{Title: "Orbit", IsActive: true})
	require.NoError(t, err)
	_, err = repo.Create(ctx, project.Project{Title: "Hidden"})
	require.NoError(t, err)

	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)

	got, err := repo.GetByID(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, "Orbit", got.Title)

	_, err = repo.GetByID(ctx, "bogus")
	assert.ErrorIs(t, err, store.ErrInvalidID)

	_, err = repo.GetByID(ctx, "6f0d1a4e-95c1-4f4e-8d36-3c1f2f4b7a10")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewSkillRepository()
	_, err := repo.Create(ctx, skill.Skill{Name: "Go"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Name = "mutated"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Go", again[0].Name)
}
