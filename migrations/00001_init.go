package migrations

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(Up, Down)
}

func Up(tx *sql.Tx) error {
	statements := []string{
		`CREATE TABLE users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);`,

		`CREATE TABLE models (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			alias VARCHAR(255),
			avatar_url VARCHAR(500),
			bio TEXT,
			homepage_url VARCHAR(500),
			instagram_url VARCHAR(500),
			weibo_url VARCHAR(500),
			x_url VARCHAR(500),
			youtube_url VARCHAR(500),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);`,

		`CREATE TABLE tags (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);`,

		`CREATE TABLE albums (
			id UUID PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			cover_image_url VARCHAR(500),
			published_at TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);`,
		`CREATE INDEX idx_albums_created_at ON albums (created_at);`,

		`CREATE TABLE album_images (
			id UUID PRIMARY KEY,
			album_id UUID NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
			key VARCHAR(500) NOT NULL,
			url VARCHAR(500) NOT NULL,
			caption VARCHAR(500),
			width INTEGER,
			height INTEGER,
			file_size BIGINT,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);`,
		`CREATE INDEX idx_album_images_album_id ON album_images (album_id);`,

		`CREATE TABLE album_models (
			album_id UUID NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
			model_id UUID NOT NULL REFERENCES models(id) ON DELETE CASCADE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			PRIMARY KEY (album_id, model_id)
		);`,

		`CREATE TABLE album_tags (
			album_id UUID NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
			tag_id UUID NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			PRIMARY KEY (album_id, tag_id)
		);`,

		`CREATE TABLE short_video (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			original_url VARCHAR(500) NOT NULL UNIQUE,
			r2_key VARCHAR(500) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);`,
		`CREATE INDEX idx_short_video_created_at ON short_video (created_at);`,

		`CREATE TABLE short_video_topic (
			id UUID PRIMARY KEY,
			description VARCHAR(255) NOT NULL UNIQUE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);`,

		`CREATE TABLE short_video_to_topic (
			video_id UUID NOT NULL REFERENCES short_video(id) ON DELETE CASCADE,
			topic_id UUID NOT NULL REFERENCES short_video_topic(id) ON DELETE CASCADE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			PRIMARY KEY (video_id, topic_id)
		);`,

		`CREATE TABLE todos (
			id BIGSERIAL PRIMARY KEY,
			text VARCHAR(500) NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("migration statement failed: %w", err)
		}
	}
	return nil
}

func Down(tx *sql.Tx) error {
	tables := []string{
		"todos",
		"short_video_to_topic",
		"short_video_topic",
		"short_video",
		"album_tags",
		"album_models",
		"album_images",
		"albums",
		"tags",
		"models",
		"users",
	}
	for _, table := range tables {
		if _, err := tx.Exec("DROP TABLE IF EXISTS " + table + ";"); err != nil {
			return fmt.Errorf("could not drop %s: %w", table, err)
		}
	}
	return nil
}
