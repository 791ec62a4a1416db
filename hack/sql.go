package main

import (
	"database/sql"
	"log"

	_ "github.com/glebarez/go-sqlite"
)

func main() {
	db, err := sql.Open("sqlite", "./db.sqlite3")
	if err != nil {
		log.Fatal(err)
	}

	_, _ = db.Query(`
		CREATE TABLE IF NOT EXISTS transcript (
			id TEXT PRIMARY KEY,
			asset_id TEXT NOT NULL,
			title TEXT NOT NULL,
			status TEXT NOT NULL,
			response JSON,
			segments JSON,
			updated_at TEXT NOT NULL DEFAULT (datetime('now')),
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`)
	_, _ = db.Query(`
		CREATE TABLE IF NOT EXISTS asset (
			id TEXT PRIMARY KEY,
			bucket TEXT NOT NULL,
			key TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`)
	_, _ = db.Query(`
		CREATE TABLE IF NOT EXISTS clip (
			id TEXT PRIMARY KEY,
			transcript_id TEXT NOT NULL REFERENCES transcript(id),
			asset_id TEXT NOT NULL REFERENCES asset(id),
			start REAL NOT NULL,
			"end" REAL NOT NULL,
			metadata JSON,
			updated_at TEXT NOT NULL DEFAULT (datetime('now')),
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`)
}
