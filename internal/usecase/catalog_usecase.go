package usecase

import (
	"context"
	"fmt"
	"strings"

	"tunitech/internal/repository"
)

type CatalogUsecase interface {
	ListSkills(ctx context.Context) ([]repository.Skill, error)
	CreateSkill(ctx context.Context, name, category string) (repository.Skill, error)
	ListIndustries(ctx context.Context) ([]repository.Industry, error)
	CreateIndustry(ctx context.Context, name string) (repository.Industry, error)
}

// Catalog serves the skill and industry reference lists. The lists are small
// and read on every profile or requirement form, so they are cached; writes
// invalidate. The cache is optional, a nil cache means every read hits the
// store.
type Catalog struct {
	skills     repository.SkillRepository
	industries repository.IndustryRepository
	cache      CatalogCache
}

func NewCatalogUsecase(skills repository.SkillRepository, industries repository.IndustryRepository, cache CatalogCache) *Catalog {
	return &Catalog{skills: skills, industries: industries, cache: cache}
}

func (c *Catalog) ListSkills(ctx context.Context) ([]repository.Skill, error) {
	if c.cache != nil {
		var cached []repository.Skill
		if hit, err := c.cache.GetJSON(ctx, cacheKeySkills, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := c.skills.GetAllSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if c.cache != nil {
		_ = c.cache.SetJSON(ctx, cacheKeySkills, out, catalogCacheTTL)
	}
	return out, nil
}

func (c *Catalog) CreateSkill(ctx context.Context, name, category string) (repository.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return repository.Skill{}, ErrInvalidInput
	}

	s, err := c.skills.CreateSkill(ctx, name, strings.TrimSpace(category))
	if err != nil {
		return repository.Skill{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if c.cache != nil {
		_ = c.cache.Delete(ctx, cacheKeySkills)
	}
	return s, nil
}

func (c *Catalog) ListIndustries(ctx context.Context) ([]repository.Industry, error) {
	if c.cache != nil {
		var cached []repository.Industry
		if hit, err := c.cache.GetJSON(ctx, cacheKeyIndustries, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := c.industries.GetAllIndustries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if c.cache != nil {
		_ = c.cache.SetJSON(ctx, cacheKeyIndustries, out, catalogCacheTTL)
	}
	return out, nil
}

func (c *Catalog) CreateIndustry(ctx context.Context, name string) (repository.Industry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return repository.Industry{}, ErrInvalidInput
	}

	it, err := c.industries.CreateIndustry(ctx, name)
	if err != nil {
		return repository.Industry{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if c.cache != nil {
		_ = c.cache.Delete(ctx, cacheKeyIndustries)
	}
	return it, nil
}
