package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("community")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// Creates the production postgres schema. The embedded sqlite store
// migrates itself at open and does not need this command.
func main() {
	db, err := gorm.Open("postgres", viper.GetString("database.url"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS postgis`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			username             TEXT PRIMARY KEY,
			display_name         TEXT,
			role                 TEXT NOT NULL,
			bio                  TEXT,
			age                  INTEGER,
			gender               TEXT,
			has_pets             BOOLEAN NOT NULL DEFAULT FALSE,
			pet_types            TEXT[] NOT NULL DEFAULT '{}',
			sustainability_score INTEGER NOT NULL DEFAULT 0,
			green_title          TEXT NOT NULL DEFAULT 'BEGINNER',
			goodwill_points      INTEGER NOT NULL DEFAULT 0,
			created_at           TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at           TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS posts (
			id          UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			author_id   TEXT NOT NULL REFERENCES users (username),
			title       TEXT NOT NULL,
			description TEXT NOT NULL,
			tag         TEXT NOT NULL,
			location    GEOGRAPHY(POINT, 4326) NOT NULL,
			address     TEXT,
			due_date    TIMESTAMPTZ NOT NULL,
			female_only BOOLEAN NOT NULL DEFAULT FALSE,
			status      TEXT NOT NULL DEFAULT 'OPEN',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS post_images (
			post_id       UUID NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
			image_url     TEXT NOT NULL,
			display_order INTEGER NOT NULL,
			PRIMARY KEY (post_id, display_order)
		)`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS posts_created_at_idx ON posts (created_at DESC)`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS posts_location_idx ON posts USING GIST (location)`).Error; err != nil {
		panic(err)
	}
}
