package app

import (
	"log"
	"time"

	"github.com/renderix/airpoint/internal/detector"
)

// runPipeline is the main frame loop. It reads camera frames at a motion-gated
// rate, detects the hand, and feeds landmarks through the cursor and gesture
// stages.
func (a *App) runPipeline(stopCh chan struct{}) {
	idleInterval := time.Second / IdleFPS
	activeInterval := time.Second / ActiveFPS
	idleTimeout := time.Duration(IdleTimeoutMs) * time.Millisecond

	ticker := time.NewTicker(idleInterval)
	defer ticker.Stop()

	lastMotion := time.Now()
	active := false

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			frame, err := a.camera.ReadFrame()
			if err != nil {
				continue
			}

			hasMotion, _ := a.motion.Detect(frame)

			if hasMotion {
				lastMotion = time.Now()
				if !active {
					active = true
					ticker.Reset(activeInterval)
					a.camera.SetFPS(ActiveFPS)
				}
			} else if active && time.Since(lastMotion) > idleTimeout {
				active = false
				ticker.Reset(idleInterval)
				a.camera.SetFPS(IdleFPS)
			}

			if !active {
				frame.Close()
				continue
			}

			det := a.Detector()
			landmarks, err := det.Detect(frame)
			cols, rows := frame.Cols(), frame.Rows()
			frame.Close()
			if err != nil {
				log.Printf("Detection error: %v", err)
				continue
			}

			a.Observe(landmarks, cols, rows)
		}
	}
}

// Observe runs one hand observation through the mapping and gesture stages
// and drives the actuator. The pipeline calls it once per frame; it can also
// be driven directly with landmarks from another source.
func (a *App) Observe(landmarks []detector.Landmark, frameWidth, frameHeight int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.enabled {
		return
	}

	wasDragging := a.recognizer.IsDragging()

	if x, y, ok := detector.PointOf(landmarks, detector.IndexTip); ok {
		point, err := a.mapper.MapAndMove(x, y, frameWidth, frameHeight)
		if err != nil {
			log.Printf("Mapping error: %v", err)
			return
		}
		if err := a.actuator.MoveTo(point.X, point.Y); err != nil {
			log.Printf("Pointer move error: %v", err)
		}
		a.status.Cursor = point
	} else {
		// Hand lost: clear filter history so reacquisition doesn't sweep
		// the cursor across the screen.
		a.mapper.Reset()
	}

	clicked := a.recognizer.Step(landmarks)
	dragging := a.recognizer.IsDragging()

	if a.settings.EnableClicks {
		if !wasDragging && dragging {
			if err := a.actuator.Press(); err != nil {
				log.Printf("Button press error: %v", err)
			}
			a.status.LastEvent = "drag_start"
		} else if wasDragging && !dragging {
			if err := a.actuator.Release(); err != nil {
				log.Printf("Button release error: %v", err)
			}
			a.status.LastEvent = "drag_end"
		} else if clicked && !dragging {
			if err := a.actuator.Click(); err != nil {
				log.Printf("Click error: %v", err)
			}
			a.status.LastEvent = "click"
		}
	}

	a.status.Dragging = dragging
	a.status.UpdatedAt = time.Now()
}
