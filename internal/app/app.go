// Package app wires the capture, detection, mapping, and gesture components
// into the airpoint pointer pipeline.
package app

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/renderix/airpoint/internal/actuator"
	"github.com/renderix/airpoint/internal/capture"
	"github.com/renderix/airpoint/internal/cursor"
	"github.com/renderix/airpoint/internal/detector"
	"github.com/renderix/airpoint/internal/gesture"
	"github.com/renderix/airpoint/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate while the pointer is being driven.
	ActiveFPS = 15
	// IdleTimeoutMs is how long without motion before dropping back to idle.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
	ScreenWidth  int
	ScreenHeight int
	Actuator     actuator.Actuator
}

// Status is a read-only snapshot of the pipeline for display surfaces.
// The pipeline goroutine is the single writer; server and tray read copies.
type Status struct {
	Cursor    cursor.Point `json:"cursor"`
	Dragging  bool         `json:"dragging"`
	LastEvent string       `json:"last_event"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// App is the main application that turns hand observations into pointer
// movement and button events.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionDetector
	detector detector.Detector
	actuator actuator.Actuator

	mu         sync.RWMutex
	mapper     *cursor.Mapper
	recognizer *gesture.Recognizer
	settings   store.Settings
	enabled    bool
	stopCh     chan struct{}
	status     Status
}

// New creates a new App instance with the given configuration. Tuning comes
// from the store when available, defaults otherwise.
func New(config Config) (*App, error) {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // 1% pixel change
	}

	settings := store.DefaultSettings()
	if config.Store != nil {
		loaded, err := config.Store.Settings().Load()
		if err != nil {
			log.Printf("Failed to load settings, using defaults: %v", err)
		} else {
			settings = loaded
		}
	}

	act := config.Actuator
	if act == nil {
		act = actuator.NewMock()
		log.Println("No actuator configured, pointer events will be discarded")
	}

	a := &App{
		config:   config,
		camera:   capture.NewCamera(config.CameraID),
		motion:   capture.NewMotionDetector(motionThreshold),
		actuator: act,
	}

	if err := a.apply(settings); err != nil {
		return nil, fmt.Errorf("apply settings: %w", err)
	}

	// Try MediaPipe first, fall back to the mock detector so the rest of
	// the system stays usable without the Python service.
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a, nil
}

// apply rebuilds the mapper and recognizer from settings. Caller must not
// hold the lock.
func (a *App) apply(settings store.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	var smoother *cursor.Smoother
	if alpha := settings.Alpha(); alpha < 1 {
		s, err := cursor.NewSmoother(alpha)
		if err != nil {
			return err
		}
		smoother = s
	}

	recognizer, err := gesture.NewRecognizer(gesture.Config{
		PinchThreshold:   settings.PinchThreshold,
		ReleaseThreshold: settings.ReleaseThreshold,
		ClickHoldFrames:  settings.ClickHoldFrames,
		DragHoldFrames:   settings.DragHoldFrames,
	})
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Swapping the recognizer mid-drag would strand the held button.
	if a.recognizer != nil && a.recognizer.IsDragging() {
		if err := a.actuator.Release(); err != nil {
			log.Printf("Error releasing button on retune: %v", err)
		}
	}

	a.mapper = cursor.NewMapper(a.config.ScreenWidth, a.config.ScreenHeight, smoother)
	a.recognizer = recognizer
	a.settings = settings
	return nil
}

// ApplySettings validates, applies, and (when a store is configured)
// persists new tuning values while the pipeline runs.
func (a *App) ApplySettings(settings store.Settings) error {
	if err := a.apply(settings); err != nil {
		return err
	}
	if a.config.Store != nil {
		if err := a.config.Store.Settings().Save(settings); err != nil {
			return fmt.Errorf("persist settings: %w", err)
		}
	}
	return nil
}

// Settings returns the active tuning values.
func (a *App) Settings() store.Settings {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.settings
}

// SetEnabled enables or disables pointer control. Disabling mid-drag
// releases the held button so the desktop is never left stuck.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !enabled && a.recognizer.IsDragging() {
		if err := a.actuator.Release(); err != nil {
			log.Printf("Error releasing button on disable: %v", err)
		}
		a.recognizer.ResetState()
		a.status.Dragging = false
	}
	a.enabled = enabled
}

// IsEnabled returns whether pointer control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// Status returns a snapshot of the pipeline state.
func (a *App) Status() Status {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}

// Start begins the pointer pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Pointer pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources. A drag in progress is
// closed out with a button-up first.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if a.recognizer.IsDragging() {
		if err := a.actuator.Release(); err != nil {
			log.Printf("Error releasing button on stop: %v", err)
		}
		a.recognizer.ResetState()
		a.status.Dragging = false
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Pointer pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}
