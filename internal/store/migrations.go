package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Settings table - active tuning values as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Profiles table - named tuning presets
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			pinch_threshold REAL NOT NULL DEFAULT 40,
			release_threshold REAL NOT NULL DEFAULT 0,
			click_hold_frames INTEGER NOT NULL DEFAULT 3,
			drag_hold_frames INTEGER NOT NULL DEFAULT 10,
			smoothing_factor REAL NOT NULL DEFAULT 5,
			enable_clicks INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
