package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Profile is a named tuning preset. Switching profiles lets different users
// (or lighting conditions) keep their own thresholds.
type Profile struct {
	ID        string
	Name      string
	Settings  Settings
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileRepository provides CRUD operations for profiles.
type ProfileRepository struct {
	db *sql.DB
}

// Profiles returns the profile repository for this store.
func (s *Store) Profiles() *ProfileRepository {
	return &ProfileRepository{db: s.db}
}

// Create inserts a new profile into the database.
func (r *ProfileRepository) Create(p *Profile) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO profiles (id, name, pinch_threshold, release_threshold,
			click_hold_frames, drag_hold_frames, smoothing_factor, enable_clicks,
			created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name,
		p.Settings.PinchThreshold, p.Settings.ReleaseThreshold,
		p.Settings.ClickHoldFrames, p.Settings.DragHoldFrames,
		p.Settings.SmoothingFactor, p.Settings.EnableClicks,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetByID retrieves a profile by its ID.
func (r *ProfileRepository) GetByID(id string) (*Profile, error) {
	return r.scanOne(r.db.QueryRow(
		`SELECT id, name, pinch_threshold, release_threshold, click_hold_frames,
			drag_hold_frames, smoothing_factor, enable_clicks, created_at, updated_at
		 FROM profiles WHERE id = ?`,
		id,
	))
}

// GetByName retrieves a profile by its name.
func (r *ProfileRepository) GetByName(name string) (*Profile, error) {
	return r.scanOne(r.db.QueryRow(
		`SELECT id, name, pinch_threshold, release_threshold, click_hold_frames,
			drag_hold_frames, smoothing_factor, enable_clicks, created_at, updated_at
		 FROM profiles WHERE name = ?`,
		name,
	))
}

func (r *ProfileRepository) scanOne(row *sql.Row) (*Profile, error) {
	p := &Profile{}
	var enableClicks int

	err := row.Scan(
		&p.ID, &p.Name,
		&p.Settings.PinchThreshold, &p.Settings.ReleaseThreshold,
		&p.Settings.ClickHoldFrames, &p.Settings.DragHoldFrames,
		&p.Settings.SmoothingFactor, &enableClicks,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.Settings.EnableClicks = enableClicks != 0
	return p, nil
}

// List retrieves all profiles from the database.
func (r *ProfileRepository) List() ([]*Profile, error) {
	rows, err := r.db.Query(
		`SELECT id, name, pinch_threshold, release_threshold, click_hold_frames,
			drag_hold_frames, smoothing_factor, enable_clicks, created_at, updated_at
		 FROM profiles ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p := &Profile{}
		var enableClicks int

		err := rows.Scan(
			&p.ID, &p.Name,
			&p.Settings.PinchThreshold, &p.Settings.ReleaseThreshold,
			&p.Settings.ClickHoldFrames, &p.Settings.DragHoldFrames,
			&p.Settings.SmoothingFactor, &enableClicks,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		p.Settings.EnableClicks = enableClicks != 0
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Update updates an existing profile in the database.
func (r *ProfileRepository) Update(p *Profile) error {
	p.UpdatedAt = time.Now()

	result, err := r.db.Exec(
		`UPDATE profiles SET name = ?, pinch_threshold = ?, release_threshold = ?,
			click_hold_frames = ?, drag_hold_frames = ?, smoothing_factor = ?,
			enable_clicks = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name,
		p.Settings.PinchThreshold, p.Settings.ReleaseThreshold,
		p.Settings.ClickHoldFrames, p.Settings.DragHoldFrames,
		p.Settings.SmoothingFactor, p.Settings.EnableClicks,
		p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a profile from the database by its ID.
func (r *ProfileRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
