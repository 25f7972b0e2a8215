package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func ConnectPostgres(log *logrus.Logger) *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed: ", err)
	}

	log.Info("connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema: ", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'OWNER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	restaurantsSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) UNIQUE NOT NULL,
			city VARCHAR(255) NOT NULL,
			address VARCHAR(500) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			currency VARCHAR(10) NOT NULL DEFAULT 'USD',
			logo_url VARCHAR(500) NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, restaurantsSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU HIERARCHY
	// -------------------------------
	categoriesSQL := `
		CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			icon VARCHAR(255) NULL,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	subCategoriesSQL := `
		CREATE TABLE IF NOT EXISTS sub_categories (
			id SERIAL PRIMARY KEY,
			category_id INT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			description TEXT NULL,
			sort_order INT NOT NULL DEFAULT 0
		)
	`
	if _, err := pool.Exec(ctx, subCategoriesSQL); err != nil {
		return err
	}

	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			sub_category_id INT NOT NULL REFERENCES sub_categories(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			currency VARCHAR(10) NOT NULL DEFAULT 'USD',
			image_url VARCHAR(500) NULL,
			tags TEXT[] NOT NULL DEFAULT '{}',
			allergens TEXT[] NOT NULL DEFAULT '{}',
			availability_status VARCHAR(50) NOT NULL DEFAULT 'AVAILABLE',
			preparation_time INT NULL,
			sort_order INT NOT NULL DEFAULT 0
		)
	`
	if _, err := pool.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// OFFERS
	// -------------------------------
	offersSQL := `
		CREATE TABLE IF NOT EXISTS offers (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			description TEXT NULL,
			type VARCHAR(50) NOT NULL,
			category VARCHAR(255) NULL,
			discount_value NUMERIC(10,2) NOT NULL DEFAULT 0,
			starts_at TIMESTAMP NULL,
			ends_at TIMESTAMP NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'DRAFT',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, offersSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRICING RULES
	// -------------------------------
	pricingRulesSQL := `
		CREATE TABLE IF NOT EXISTS pricing_rules (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			kind VARCHAR(50) NOT NULL,
			value NUMERIC(10,2) NOT NULL,
			category VARCHAR(255) NULL,
			days INT[] NOT NULL DEFAULT '{}',
			start_time VARCHAR(5) NOT NULL DEFAULT '',
			end_time VARCHAR(5) NOT NULL DEFAULT '',
			active BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, pricingRulesSQL); err != nil {
		return err
	}

	// -------------------------------
	// QR CODES
	// -------------------------------
	qrCodesSQL := `
		CREATE TABLE IF NOT EXISTS qr_codes (
			id SERIAL PRIMARY KEY,
			restaurant_id INT UNIQUE NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			menu_url VARCHAR(500) NOT NULL,
			image_url VARCHAR(500) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, qrCodesSQL); err != nil {
		return err
	}

	return nil
}
