package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// Settings holds the live tuning values for the pointer pipeline.
// SmoothingFactor is the reciprocal form of the smoothing alpha
// (alpha = 1/factor); a factor of 1 disables smoothing.
type Settings struct {
	PinchThreshold   float64 `json:"pinch_threshold"`
	ReleaseThreshold float64 `json:"release_threshold"`
	ClickHoldFrames  int     `json:"click_hold_frames"`
	DragHoldFrames   int     `json:"drag_hold_frames"`
	SmoothingFactor  float64 `json:"smoothing_factor"`
	EnableClicks     bool    `json:"enable_clicks"`
}

// DefaultSettings returns the stock tuning values.
func DefaultSettings() Settings {
	return Settings{
		PinchThreshold:   40,
		ReleaseThreshold: 0,
		ClickHoldFrames:  3,
		DragHoldFrames:   10,
		SmoothingFactor:  5,
		EnableClicks:     true,
	}
}

// Alpha converts the smoothing factor to the EMA alpha, clamped to (0, 1].
func (s Settings) Alpha() float64 {
	if s.SmoothingFactor <= 1 {
		return 1
	}
	return 1 / s.SmoothingFactor
}

// SettingsRepository reads and writes the settings key-value table.
type SettingsRepository struct {
	db *sql.DB
}

// Settings returns the settings repository for this store.
func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{db: s.db}
}

// Load reads the stored settings, filling any missing key from defaults so
// a fresh database yields DefaultSettings.
func (r *SettingsRepository) Load() (Settings, error) {
	settings := DefaultSettings()

	rows, err := r.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return settings, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, err
		}
		if err := applySetting(&settings, key, value); err != nil {
			return settings, fmt.Errorf("setting %q: %w", key, err)
		}
	}

	return settings, rows.Err()
}

// Save upserts every settings key.
func (r *SettingsRepository) Save(settings Settings) error {
	pairs := map[string]string{
		"pinch_threshold":   strconv.FormatFloat(settings.PinchThreshold, 'f', -1, 64),
		"release_threshold": strconv.FormatFloat(settings.ReleaseThreshold, 'f', -1, 64),
		"click_hold_frames": strconv.Itoa(settings.ClickHoldFrames),
		"drag_hold_frames":  strconv.Itoa(settings.DragHoldFrames),
		"smoothing_factor":  strconv.FormatFloat(settings.SmoothingFactor, 'f', -1, 64),
		"enable_clicks":     strconv.FormatBool(settings.EnableClicks),
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range pairs {
		if _, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func applySetting(s *Settings, key, value string) error {
	switch key {
	case "pinch_threshold":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		s.PinchThreshold = v
	case "release_threshold":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		s.ReleaseThreshold = v
	case "click_hold_frames":
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		s.ClickHoldFrames = v
	case "drag_hold_frames":
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		s.DragHoldFrames = v
	case "smoothing_factor":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		s.SmoothingFactor = v
	case "enable_clicks":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		s.EnableClicks = v
	default:
		// Unknown keys are ignored so older databases keep loading.
	}
	return nil
}

// Validate performs the same range checks the pipeline's constructors do,
// so bad values are rejected at the API boundary before they are persisted.
func (s Settings) Validate() error {
	if s.PinchThreshold <= 0 {
		return errors.New("pinch_threshold must be positive")
	}
	if s.ReleaseThreshold != 0 && s.ReleaseThreshold <= s.PinchThreshold {
		return errors.New("release_threshold must exceed pinch_threshold or be 0")
	}
	if s.ClickHoldFrames <= 0 {
		return errors.New("click_hold_frames must be positive")
	}
	if s.DragHoldFrames <= s.ClickHoldFrames {
		return errors.New("drag_hold_frames must exceed click_hold_frames")
	}
	if s.SmoothingFactor < 1 {
		return errors.New("smoothing_factor must be at least 1")
	}
	return nil
}
