package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"customsnap/internal/catalog"
)

// Seed populates the database with initial development data. It creates a
// default admin user if none exists and a starter catalog document if the
// catalog is empty. The admin will be prompted to set up 2FA on first
// login (totp_enabled = false).
func Seed(db *sql.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedCatalog(db)
}

func seedAdmin(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("users already seeded, skipping")
		return nil
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Insert default admin user. 2FA is not enabled — they must set it up
	// on first login.
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@customsnap.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@customsnap.local",
		"password", "admin",
	)

	return nil
}

func seedCatalog(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM catalog_data").Scan(&count); err != nil {
		return fmt.Errorf("seed check catalog: %w", err)
	}
	if count > 0 {
		slog.Info("catalog already seeded, skipping")
		return nil
	}

	cat := catalog.New()
	cat.Templates["service-business"] = catalog.Template{
		Name: "Service Business",
		File: "service-business.html",
		Characteristics: catalog.Characteristics{
			Layout:      catalog.LayoutSplitHero,
			ColorScheme: catalog.SchemeLightGradient,
			HeroStyle:   catalog.HeroTextLeftImageRight,
			Navigation:  catalog.NavStickyMinimal,
			PrimaryCTA:  catalog.CTASolidButton,
			Sections: []catalog.Section{
				catalog.SectionHero,
				catalog.SectionSocialProof,
				catalog.SectionServicesGrid,
				catalog.SectionAboutSplit,
				catalog.SectionTestimonials,
				catalog.SectionFAQ,
				catalog.SectionContactForm,
				catalog.SectionFooter,
			},
		},
	}

	doc, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("seed marshal catalog: %w", err)
	}
	if _, err := db.Exec(`
		INSERT INTO catalog_data (id, document) VALUES (1, $1)
	`, doc); err != nil {
		return fmt.Errorf("seed insert catalog: %w", err)
	}

	slog.Info("database seeded with starter catalog")
	return nil
}
