package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/runway/assets"
	"github.com/younwookim/runway/internal/application/session"
	"github.com/younwookim/runway/internal/infrastructure/audio"
	"github.com/younwookim/runway/internal/infrastructure/config"
)

func main() {
	settingsFlag := flag.String("settings", config.DefaultSettingsPath(), "User settings file (TOML)")
	saveFlag := flag.String("save", "", "Save file; overrides the settings value")
	nodeFlag := flag.String("story-node", "", "Start at this story node instead of the save or the story start")
	logFlag := flag.String("log", "runway-term.log", "Log file; the terminal is owned by the game")
	flag.Parse()

	// tcell owns stdout, so logs go to a file
	logFile, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logFile.Close() }()
	log.SetOutput(logFile)

	settings, err := config.LoadSettings(*settingsFlag)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}
	savePath := settings.SaveFile
	if *saveFlag != "" {
		savePath = *saveFlag
	}

	fsys, err := assets.Configs()
	if err != nil {
		log.Fatalf("Failed to open assets: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sound := audio.NewSoundManager(settings.Volume, settings.Muted)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	toggleMute := func() {
		err := settings.ToggleMute(*settingsFlag)
		sound.SetMuted(settings.Muted)
		if err != nil {
			log.Printf("Failed to save settings: %v", err)
		}
	}

	s := session.New(cfg, sound, time.Now().UnixNano())
	if err := s.Resume(*nodeFlag, savePath); err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	h := newHost(s, savePath)
	h.onMute = toggleMute
	if err := run(h, settings.TerminalFPS); err != nil {
		log.Printf("Terminal error: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(h *host, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	frame := 0
	for !h.quit {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if err := h.handleKey(ev.Key(), ev.Rune(), time.Now()); err != nil {
					log.Printf("Input error: %v", err)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			h.tick(now, dt)
			render(screen, h.session, frame)
			screen.Show()
			frame++
		}
	}

	h.save()
	return nil
}
