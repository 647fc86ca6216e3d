package site

// HeroContent is the single banner record shown on the storefront home page.
// Updates overwrite it wholesale.
type HeroContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CTAText     string `json:"ctaText"`
	ImageURL    string `json:"imageUrl"`
}
