package site

import "context"

// Service defines site content business logic.
type Service interface {
	Hero(ctx context.Context) (HeroContent, error)
	UpdateHero(ctx context.Context, h HeroContent) (HeroContent, error)
}

type service struct{ repo Repository }

// NewService creates a new site content service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Hero(ctx context.Context) (HeroContent, error) {
	return s.repo.Hero(ctx)
}

func (s *service) UpdateHero(ctx context.Context, h HeroContent) (HeroContent, error) {
	if err := s.repo.UpdateHero(ctx, h); err != nil {
		return HeroContent{}, err
	}
	return h, nil
}
