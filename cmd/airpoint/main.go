package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/renderix/airpoint/internal/actuator"
	"github.com/renderix/airpoint/internal/app"
	"github.com/renderix/airpoint/internal/server"
	"github.com/renderix/airpoint/internal/store"
	"github.com/renderix/airpoint/internal/tray"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	cameraID := flag.Int("camera", 0, "camera device ID")
	screenW := flag.Int("screen-width", 0, "screen width in pixels (0 = autodetect)")
	screenH := flag.Int("screen-height", 0, "screen height in pixels (0 = autodetect)")
	noTray := flag.Bool("no-tray", false, "run without the system tray")
	flag.Parse()

	fmt.Println("airpoint - Touchless Pointer Control")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".airpoint")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dbDir, "airpoint.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	width, height := *screenW, *screenH
	if width <= 0 || height <= 0 {
		width, height = detectScreen()
	}
	log.Printf("Mapping to %dx%d screen", width, height)

	act := pickActuator(width, height)
	defer act.Close()

	a, err := app.New(app.Config{
		Store:        st,
		CameraID:     *cameraID,
		ScreenWidth:  width,
		ScreenHeight: height,
		Actuator:     act,
	})
	if err != nil {
		log.Fatalf("Failed to initialize pipeline: %v", err)
	}

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	a.SetEnabled(true)
	defer a.Stop()

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir:  webDir,
		Store:      st,
		Controller: a,
		Camera:     a.Camera(),
		Detector:   a.Detector(),
	})

	fmt.Printf("Starting server on %s\n", *addr)
	go func() {
		if err := srv.ListenAndServe(*addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if *noTray {
		select {}
	}

	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	t.OnQuit(func() {
		a.Stop()
	})

	// Mirror the pipeline's last event into the tray menu.
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for range ticker.C {
			t.SetLastEvent(a.Status().LastEvent)
		}
	}()

	t.Run()
}

// pickActuator prefers the uinput virtual device and falls back to xdotool.
func pickActuator(width, height int) actuator.Actuator {
	ui, err := actuator.NewUinput(width, height)
	if err == nil {
		log.Println("Using uinput virtual pointer")
		return ui
	}
	log.Printf("uinput unavailable (%v)", err)

	xdo, err := actuator.NewXdotool()
	if err != nil {
		log.Printf("xdotool unavailable (%v), pointer events will be discarded", err)
		return actuator.NewMock()
	}

	log.Println("Using xdotool pointer")
	return xdo
}

// detectScreen queries the display size via xdotool, defaulting to 1920x1080.
func detectScreen() (int, int) {
	if w, h, err := actuator.DisplaySize(); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return 1920, 1080
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.airpoint/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".airpoint", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
