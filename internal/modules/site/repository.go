package site

import "context"

// Repository defines storage for the site's editable content.
type Repository interface {
	Hero(ctx context.Context) (HeroContent, error)
	UpdateHero(ctx context.Context, h HeroContent) error
}
