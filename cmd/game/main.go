package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/runway/assets"
	"github.com/younwookim/runway/internal/application/game"
	"github.com/younwookim/runway/internal/application/scene/playing"
	"github.com/younwookim/runway/internal/application/session"
	"github.com/younwookim/runway/internal/infrastructure/audio"
	"github.com/younwookim/runway/internal/infrastructure/config"
)

func main() {
	settingsFlag := flag.String("settings", config.DefaultSettingsPath(), "User settings file (TOML)")
	saveFlag := flag.String("save", "", "Save file; overrides the settings value")
	nodeFlag := flag.String("story-node", "", "Start at this story node instead of the save or the story start")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsFlag)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}
	savePath := settings.SaveFile
	if *saveFlag != "" {
		savePath = *saveFlag
	}

	// Load configurations using embedded filesystem
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

	display := cfg.Physics.Display
	play := playing.New(s, display.ScreenWidth, display.ScreenHeight, savePath)
	play.OnToggleMute = toggleMute
	g := game.New(play, display.ScreenWidth, display.ScreenHeight, cfg.Physics.Physics.MaxFrameDelta)

	ebiten.SetWindowSize(display.ScreenWidth*settings.Scale, display.ScreenHeight*settings.Scale)
	ebiten.SetWindowTitle("Runway")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	g.Current().OnExit()
}
