package store

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hbenomar/macstore-backend/internal/modules/catalog"
	"github.com/hbenomar/macstore-backend/internal/modules/site"
	"github.com/hbenomar/macstore-backend/internal/modules/user"
)

// Seed builds the bootstrap dataset: the hero banner, the launch catalog and
// the initial admin account. Used when the backing store holds no snapshot.
func Seed(adminEmail, adminPassword string) (*Snapshot, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	snap := Empty()
	snap.HeroContent = site.HeroContent{
		Title:       "iPhone 15 Pro",
		Description: "L'iPhone ultime. Forgé en titane. Doté de la puce A17 Pro.",
		CTAText:     "Acheter",
		ImageURL:    "https://images.unsplash.com/photo-1556656793-02715d8dd660?auto=format&fit=crop&q=80&w=2000",
	}
	snap.Users = []user.Account{{
		ID:           uuid.New().String(),
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
		IsActive:     true,
	}}
	snap.Products = []catalog.Product{
		{
			ID:            "p1",
			Name:          "iPhone 15 Pro Max",
			Category:      catalog.CategoryIPhone,
			Description:   "Le titane forge une nouvelle ère. Puce A17 Pro.",
			Specs:         []string{"Titane", "Puce A17 Pro", "Action Button", "USB-C"},
			Price:         15990,
			PurchasePrice: 13000,
			Stock:         45,
			Image:         "https://images.unsplash.com/photo-1695048133142-1a20484d2569?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:            "p2",
			Name:          "MacBook Air M2",
			Category:      catalog.CategoryMacBook,
			Description:   "Incroyablement fin. D'une rapidité décoiffante.",
			Specs:         []string{"Puce M2", "13.6\" Liquid Retina", "18h autonomie", "MagSafe"},
			Price:         13490,
			PurchasePrice: 11000,
			Stock:         8,
			Image:         "https://images.unsplash.com/photo-1611186871348-b1ce696e52c9?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:            "p3",
			Name:          "Apple Watch Ultra 2",
			Category:      catalog.CategoryWatch,
			Description:   "L'aventure vous appelle. L'écran le plus lumineux.",
			Specs:         []string{"Boîtier Titane 49mm", "100m étanche", "GPS + Cellular", "36h autonomie"},
			Price:         9990,
			PurchasePrice: 8000,
			Stock:         20,
			Image:         "https://images.unsplash.com/photo-1665885925337-8f58ae027515?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:            "p4",
			Name:          "iPad Pro 12.9\"",
			Category:      catalog.CategoryIPad,
			Description:   "La tablette ultime. Puce M2. Écran XDR.",
			Specs:         []string{"Puce M2", "Écran Mini-LED", "Face ID", "Compatible Pencil 2"},
			Price:         12500,
			PurchasePrice: 10000,
			Stock:         15,
			Image:         "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:            "p5",
			Name:          "AirPods Max",
			Category:      catalog.CategoryAirPods,
			Description:   "Un son haute-fidélité. Une isolation active du bruit.",
			Specs:         []string{"Audio Spatial", "Réduction de bruit", "20h écoute", "Digital Crown"},
			Price:         6500,
			PurchasePrice: 4500,
			Stock:         30,
			Image:         "https://images.unsplash.com/photo-1613040809024-b4ef7ba99bc3?auto=format&fit=crop&q=80&w=800",
		},
	}
	return snap, nil
}
