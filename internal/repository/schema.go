package repository

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id       BIGINT AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		active_token  TEXT NULL,
		created_at    DATETIME(6) NOT NULL,
		updated_at    DATETIME(6) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		note_id    BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id    BIGINT NOT NULL,
		title      VARCHAR(255) NOT NULL,
		content    TEXT NOT NULL,
		tags       TEXT NOT NULL,
		folder     VARCHAR(255) NULL,
		is_pinned  BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME(6) NOT NULL,
		updated_at DATETIME(6) NOT NULL,
		INDEX idx_notes_user_created (user_id, created_at)
	)`,
	`CREATE TABLE IF NOT EXISTS shared_notes (
		share_id          BIGINT AUTO_INCREMENT PRIMARY KEY,
		note_id           BIGINT NOT NULL,
		shared_by_user_id BIGINT NOT NULL,
		shared_with_email VARCHAR(255) NOT NULL,
		permission_level  VARCHAR(50) NOT NULL DEFAULT 'view',
		shared_at         DATETIME(6) NOT NULL,
		INDEX idx_shared_notes_email (shared_with_email),
		INDEX idx_shared_notes_note (note_id)
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id       INTEGER PRIMARY KEY AUTOINCREMENT,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active_token  TEXT,
		created_at    DATETIME NOT NULL,
		updated_at    DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		note_id    INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id    INTEGER NOT NULL,
		title      TEXT NOT NULL,
		content    TEXT NOT NULL,
		tags       TEXT NOT NULL,
		folder     TEXT,
		is_pinned  BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_user_created ON notes (user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS shared_notes (
		share_id          INTEGER PRIMARY KEY AUTOINCREMENT,
		note_id           INTEGER NOT NULL,
		shared_by_user_id INTEGER NOT NULL,
		shared_with_email TEXT NOT NULL,
		permission_level  TEXT NOT NULL DEFAULT 'view',
		shared_at         DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shared_notes_email ON shared_notes (shared_with_email)`,
	`CREATE INDEX IF NOT EXISTS idx_shared_notes_note ON shared_notes (note_id)`,
}
