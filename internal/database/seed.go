package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development content so the
// public site renders something before an administrator has saved any
// section. It is a no-op when a hero section already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM hero_section").Scan(&count); err != nil {
		return fmt.Errorf("seed check hero: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO hero_section (tagline, beneficiaries, events, active_projects, published)
		VALUES ($1, $2, $3, $4, TRUE)
	`, "Transformando comunidades a través de la educación, investigación y promoción del buen vivir",
		1200, 85, 12)
	if err != nil {
		return fmt.Errorf("seed insert hero: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO about_section (title, intro_text, what_we_do_text, how_we_do_text, published)
		VALUES ($1, $2, $3, $4, TRUE)
	`, "Sobre la Casa",
		"Casa Pjoxante es un espacio de encuentro comunitario.",
		"Impulsamos proyectos de educación popular e investigación.",
		"Trabajamos junto a las comunidades, desde sus saberes.")
	if err != nil {
		return fmt.Errorf("seed insert about: %w", err)
	}

	slog.Info("database seeded with default sections")
	return nil
}
