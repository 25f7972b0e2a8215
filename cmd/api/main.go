package main

import (
	"context"
	"os"

	"qrmenu/internal/ai"
	"qrmenu/internal/auth"
	"qrmenu/internal/db"
	"qrmenu/internal/importer"
	"qrmenu/internal/menu"
	"qrmenu/internal/offers"
	"qrmenu/internal/pricing"
	"qrmenu/internal/public"
	"qrmenu/internal/qrcode"
	"qrmenu/internal/restaurant"
	"qrmenu/internal/router"
	"qrmenu/internal/storage"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
		"PUBLIC_MENU_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres(log)
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed: ", err)
	}

	// ───────────────────────── REPOSITORIES ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	offerRepo := offers.NewRepository(pgDB)
	ruleRepo := pricing.NewRepository(pgDB)
	qrRepo := qrcode.NewRepository(pgDB)
	importStore := importer.NewPostgresStore(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	llmClient := ai.NewGeminiClient()

	authService := auth.NewService(userRepo)
	restaurantService := restaurant.NewService(restaurantRepo)
	menuService := menu.NewService(menuRepo, restaurantRepo)
	offerService := offers.NewService(offerRepo, restaurantRepo, llmClient)
	pricingService := pricing.NewService(ruleRepo, restaurantRepo)
	qrService := qrcode.NewService(
		qrRepo,
		restaurantRepo,
		r2Client,
		os.Getenv("PUBLIC_MENU_BASE_URL"),
	)
	importService := importer.NewService(importStore, log)
	publicService := public.NewService(restaurantRepo, menuRepo, offerRepo, ruleRepo)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Handlers{
		Auth:       auth.NewHandler(authService),
		Restaurant: restaurant.NewHandler(restaurantService, r2Client),
		Menu:       menu.NewHandler(menuService),
		Importer:   importer.NewHandler(importService, restaurantRepo),
		Offers:     offers.NewHandler(offerService),
		Pricing:    pricing.NewHandler(pricingService),
		QRCode:     qrcode.NewHandler(qrService),
		Public:     public.NewHandler(publicService),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Infof("API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
