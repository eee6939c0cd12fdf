package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tunitech/internal/repository"

	"github.com/google/uuid"
)

type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (m *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

type countingSkillRepo struct {
	skills []repository.Skill
	reads  int
}

func (c *countingSkillRepo) GetAllSkills(context.Context) ([]repository.Skill, error) {
	c.reads++
	return c.skills, nil
}

func (c *countingSkillRepo) CreateSkill(_ context.Context, name, category string) (repository.Skill, error) {
	s := repository.Skill{ID: uuid.New(), Name: name, Category: category}
	c.skills = append(c.skills, s)
	return s, nil
}

func (c *countingSkillRepo) SkillExistsByID(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}

type stubIndustryRepo struct{}

func (stubIndustryRepo) GetAllIndustries(context.Context) ([]repository.Industry, error) {
	return nil, nil
}

func (stubIndustryRepo) CreateIndustry(_ context.Context, name string) (repository.Industry, error) {
	return repository.Industry{ID: uuid.New(), Name: name}, nil
}

func (stubIndustryRepo) IndustryExistsByID(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}

func TestCatalog_ListSkillsCached(t *testing.T) {
	repo := &countingSkillRepo{skills: []repository.Skill{{ID: uuid.New(), Name: "Go"}}}
	uc := NewCatalogUsecase(repo, stubIndustryRepo{}, newMemCache())

	for i := 0; i < 3; i++ {
		out, err := uc.ListSkills(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(out) != 1 || out[0].Name != "Go" {
			t.Fatalf("unexpected skills: %v", out)
		}
	}

	if repo.reads != 1 {
		t.Fatalf("expected 1 store read, got %d", repo.reads)
	}
}

func TestCatalog_CreateSkillInvalidatesCache(t *testing.T) {
	repo := &countingSkillRepo{}
	uc := NewCatalogUsecase(repo, stubIndustryRepo{}, newMemCache())

	if _, err := uc.ListSkills(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.CreateSkill(context.Background(), "Rust", "Programming Language"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	out, err := uc.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Rust" {
		t.Fatalf("expected fresh list after invalidation, got %v", out)
	}
	if repo.reads != 2 {
		t.Fatalf("expected 2 store reads, got %d", repo.reads)
	}
}

func TestCatalog_CreateSkillRejectsEmptyName(t *testing.T) {
	uc := NewCatalogUsecase(&countingSkillRepo{}, stubIndustryRepo{}, nil)

	if _, err := uc.CreateSkill(context.Background(), "   ", ""); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCatalog_NilCache(t *testing.T) {
	repo := &countingSkillRepo{}
	uc := NewCatalogUsecase(repo, stubIndustryRepo{}, nil)

	for i := 0; i < 2; i++ {
		if _, err := uc.ListSkills(context.Background()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if repo.reads != 2 {
		t.Fatalf("expected every read to hit the store, got %d", repo.reads)
	}
}
