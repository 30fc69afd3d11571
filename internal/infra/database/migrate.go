package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/rajudas/field-sales-api/internal/auth"
)

// Migrate creates the tables if they don't exist. Schema changes beyond that
// are applied out of band.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'REPRESENTATIVE',
			full_name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS store_visits (
			id SERIAL PRIMARY KEY,
			visit_date DATE NOT NULL,
			visit_time TIME NOT NULL,
			sr_name TEXT NOT NULL,
			username TEXT,
			store_name TEXT NOT NULL,
			visit_type TEXT NOT NULL,
			store_category TEXT NOT NULL,
			phone_number TEXT NOT NULL,
			lead_type TEXT NOT NULL,
			follow_up_date TEXT,
			products TEXT NOT NULL,
			order_details TEXT,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			maps_url TEXT,
			location_recorded_answer TEXT NOT NULL,
			image_data TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_store_visits_store_name ON store_visits (store_name)`,
		`CREATE INDEX IF NOT EXISTS idx_store_visits_username ON store_visits (username)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

type seedUser struct {
	username string
	password string
	role     string
	fullName string
}

// SeedUsers creates the default logins if absent. A real deployment replaces
// these with externally managed credentials.
func SeedUsers(ctx context.Context, db *sql.DB) error {
	seeds := []seedUser{
		{"admin", "admin123", "ADMIN", "Administrator"},
		{"sr_user", "sr123", "REPRESENTATIVE", "Sales Representative"},
		{"Raju123", "Raju123", "REPRESENTATIVE", "RAJU DAS"},
		{"Shubram123", "Shubram123", "REPRESENTATIVE", "SHUBRAM KAR"},
	}

	for _, s := range seeds {
		hash, err := auth.HashPassword(s.password)
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		res, err := db.ExecContext(ctx,
			`INSERT INTO users (username, password_hash, role, full_name)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (username) DO NOTHING`,
			s.username, hash, s.role, s.fullName,
		)
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			log.Printf("[Seed] created default user %s (%s)", s.username, s.role)
		}
	}
	return nil
}
