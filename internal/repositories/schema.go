package repositories

import (
	"context"
	"fmt"
)

var schemas = map[string][]string{
	"postgres": {
		`CREATE TABLE IF NOT EXISTS user_review (
			id SERIAL PRIMARY KEY,
			reviewer_id INTEGER NOT NULL,
			reviewee_id INTEGER NOT NULL,
			booking_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			comment VARCHAR,
			timestamp TIMESTAMP NOT NULL DEFAULT now(),
			CONSTRAINT unique_review_for_booking UNIQUE (booking_id)
		)`,
		`CREATE TABLE IF NOT EXISTS publication_review (
			id SERIAL PRIMARY KEY,
			reviewer_id INTEGER NOT NULL,
			publication_id INTEGER NOT NULL,
			booking_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			comment VARCHAR,
			timestamp TIMESTAMP NOT NULL DEFAULT now(),
			CONSTRAINT unique_publication_review_for_booking_id UNIQUE (booking_id)
		)`,
	},
	"mysql": {
		`CREATE TABLE IF NOT EXISTS user_review (
			id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			reviewer_id INT NOT NULL,
			reviewee_id INT NOT NULL,
			booking_id INT NOT NULL,
			score INT NOT NULL,
			comment TEXT NULL,
			timestamp DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			CONSTRAINT unique_review_for_booking UNIQUE (booking_id)
		)`,
		`CREATE TABLE IF NOT EXISTS publication_review (
			id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			reviewer_id INT NOT NULL,
			publication_id INT NOT NULL,
			booking_id INT NOT NULL,
			score INT NOT NULL,
			comment TEXT NULL,
			timestamp DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			CONSTRAINT unique_publication_review_for_booking_id UNIQUE (booking_id)
		)`,
	},
	"duckdb": {
		`CREATE SEQUENCE IF NOT EXISTS user_review_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS user_review (
			id INTEGER PRIMARY KEY DEFAULT nextval('user_review_id_seq'),
			reviewer_id INTEGER NOT NULL,
			reviewee_id INTEGER NOT NULL,
			booking_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			comment VARCHAR,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
			UNIQUE (booking_id)
		)`,
		`CREATE SEQUENCE IF NOT EXISTS publication_review_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS publication_review (
			id INTEGER PRIMARY KEY DEFAULT nextval('publication_review_id_seq'),
			reviewer_id INTEGER NOT NULL,
			publication_id INTEGER NOT NULL,
			booking_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			comment VARCHAR,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
			UNIQUE (booking_id)
		)`,
	},
}

// Migrate creates the review tables if they do not exist yet.
func Migrate(ctx context.Context, db *Database) error {
	stmts, ok := schemas[db.Dialect.Name]
	if !ok {
		return fmt.Errorf("migrate: no schema for dialect %q", db.Dialect.Name)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate %s: %w", db.Dialect.Name, err)
		}
	}
	return nil
}
