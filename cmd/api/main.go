package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/hbenomar/macstore-backend/internal/config"
	"github.com/hbenomar/macstore-backend/internal/modules/auth"
	"github.com/hbenomar/macstore-backend/internal/modules/catalog"
	"github.com/hbenomar/macstore-backend/internal/modules/order"
	"github.com/hbenomar/macstore-backend/internal/modules/pricing"
	"github.com/hbenomar/macstore-backend/internal/modules/site"
	syncmod "github.com/hbenomar/macstore-backend/internal/modules/sync"
	"github.com/hbenomar/macstore-backend/internal/modules/user"
	"github.com/hbenomar/macstore-backend/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Snapshot gateway ────────────────────────────────────
	pg := syncmod.NewPostgresGateway(db)
	if err := pg.EnsureSchema(ctx); err != nil {
		log.Fatal(err)
	}
	var gateway syncmod.Gateway = pg
	if cfg.RedisAddr != "" {
		gateway = syncmod.WithRedisCache(gateway, redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	snap, err := gateway.Fetch(ctx)
	switch {
	case errors.Is(err, syncmod.ErrNoSnapshot):
		if cfg.SeedOnEmpty {
			snap, err = store.Seed(cfg.AdminEmail, cfg.AdminPassword)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println("Seeded initial catalog and admin account")
		} else {
			snap = store.Empty()
		}
	case err != nil:
		log.Fatal(err)
	}

	st := store.New(snap)
	st.SetPublisher(gateway)

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(auth.Verify(cfg.JWTSecret))

	admin := auth.RequireRole(user.RoleAdmin)
	pricer := pricing.NewResolver(cfg.ResellerDiscount)

	catalogService := catalog.NewService(st)
	catalog.NewHandler(catalogService).RegisterRoutes(router, admin)

	userService := user.NewService(st, pricer.ResellerDiscount)
	user.NewHandler(userService).RegisterRoutes(router, admin)

	authService := auth.NewService(st, cfg.JWTSecret)
	auth.NewHandler(authService).RegisterRoutes(router)

	orderService := order.NewService(st, pricer)
	order.NewHandler(orderService).RegisterRoutes(router, admin)

	siteService := site.NewService(st)
	site.NewHandler(siteService).RegisterRoutes(router, admin)

	syncmod.NewHandler(st).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	fmt.Printf("MacStore API server starting on :%s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
