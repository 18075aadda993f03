package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_10_000001_create_core_tables",
			Up: func(db *gorm.DB) error {
				// Game user profiles
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS game_users (
						id BIGSERIAL PRIMARY KEY,
						gitadora_id VARCHAR(64) UNIQUE,
						name VARCHAR(255),
						title VARCHAR(255),
						social_user_id BIGINT UNIQUE,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (social_user_id) REFERENCES users(id) ON DELETE SET NULL
					);
					CREATE INDEX IF NOT EXISTS idx_game_users_deleted_at ON game_users(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Song catalog
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS songs (
						id BIGSERIAL PRIMARY KEY,
						title VARCHAR(255) NOT NULL UNIQUE,
						artist VARCHAR(255),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_songs_deleted_at ON songs(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Game versions
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS game_versions (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(64) NOT NULL UNIQUE,
						released_at TIMESTAMP NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
				`).Error; err != nil {
					return err
				}

				// Skill records, insert-only
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS skill_records (
						id BIGSERIAL PRIMARY KEY,
						game_user_id BIGINT NOT NULL,
						song_title VARCHAR(255) NOT NULL,
						instrument_type VARCHAR(16) NOT NULL,
						difficulty VARCHAR(16) NOT NULL,
						achievement FLOAT NOT NULL,
						skill_score FLOAT NOT NULL,
						level FLOAT DEFAULT 0,
						is_hot BOOLEAN NOT NULL DEFAULT FALSE,
						played_at TIMESTAMP NOT NULL,
						version_id BIGINT NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (game_user_id) REFERENCES game_users(id) ON DELETE CASCADE,
						FOREIGN KEY (version_id) REFERENCES game_versions(id)
					);
					CREATE INDEX IF NOT EXISTS idx_skill_records_user_instrument ON skill_records(game_user_id, instrument_type);
					CREATE INDEX IF NOT EXISTS idx_skill_records_played_at ON skill_records(played_at);
				`).Error; err != nil {
					return err
				}

				// Skill history snapshots, append-only
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS skill_histories (
						id BIGSERIAL PRIMARY KEY,
						game_user_id BIGINT NOT NULL,
						instrument_type VARCHAR(16) NOT NULL,
						hot_skill FLOAT NOT NULL,
						other_skill FLOAT NOT NULL,
						total_skill FLOAT NOT NULL,
						recorded_at TIMESTAMP NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (game_user_id) REFERENCES game_users(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_skill_histories_user_instrument ON skill_histories(game_user_id, instrument_type);
					CREATE INDEX IF NOT EXISTS idx_skill_histories_total_skill ON skill_histories(total_skill);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`
					DROP TABLE IF EXISTS skill_histories;
					DROP TABLE IF EXISTS skill_records;
					DROP TABLE IF EXISTS game_versions;
					DROP TABLE IF EXISTS songs;
					DROP TABLE IF EXISTS game_users;
				`).Error
			},
		},
	}
}
