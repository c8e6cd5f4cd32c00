package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/younwookim/runway/internal/application/state"
	"github.com/younwookim/runway/internal/domain/story"
)

// SaveVersion is written into every save file
const SaveVersion = "1.0"

// ErrNoSave is returned by Load when the save file does not exist
var ErrNoSave = errors.New("no save file")

// SaveData is the persisted progress of a run
type SaveData struct {
	Version   string          `json:"version"`
	NodeID    string          `json:"nodeId"`
	Resources story.Resources `json:"resources"`
	HighScore int             `json:"highScore"`
	SavedAt   time.Time       `json:"savedAt"`
}

// Snapshot returns the current progress as save data
func (s *Session) Snapshot() SaveData {
	d := SaveData{
		Version:   SaveVersion,
		Resources: s.resources,
		HighScore: s.highScore,
		SavedAt:   time.Now(),
	}
	if s.node != nil {
		d.NodeID = s.node.ID
	}
	return d
}

// Save writes the current progress to path
func (s *Session) Save(path string) error {
	if s.node == nil {
		return fmt.Errorf("nothing to save")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create save file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.Snapshot()); err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}

	return nil
}

// ReadSave decodes a save file
func ReadSave(path string) (SaveData, error) {
	var d SaveData
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return d, ErrNoSave
	}
	if err != nil {
		return d, fmt.Errorf("failed to read save file: %w", err)
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("failed to parse save file: %w", err)
	}
	return d, nil
}

// Load restores progress from path and re-enters the saved node. Movement
// state always starts fresh at the scene start.
func (s *Session) Load(path string) error {
	d, err := ReadSave(path)
	if err != nil {
		return err
	}
	if d.NodeID == "" {
		d.NodeID = s.cfg.Story.Start
	}
	if err := s.Restore(d); err != nil {
		return fmt.Errorf("failed to restore save: %w", err)
	}
	return nil
}

// Restore applies save data to the session
func (s *Session) Restore(d SaveData) error {
	if _, err := s.cfg.Story.NodeByID(d.NodeID); err != nil {
		return err
	}
	s.ending = story.EndingNone
	s.state = state.StatePlaying
	s.resources = story.ApplyResourceChanges(d.Resources, story.Changes{})
	if d.HighScore > s.highScore {
		s.highScore = d.HighScore
	}
	return s.enterNode(d.NodeID)
}

// Resume starts at node when one is given, otherwise continues from the save
// at savePath. A missing or unreadable save starts a new run.
func (s *Session) Resume(node, savePath string) error {
	if node != "" || savePath == "" {
		return s.Start(node)
	}
	err := s.Load(savePath)
	if errors.Is(err, ErrNoSave) {
		return s.Start("")
	}
	if err != nil {
		log.Printf("session: ignoring save %s: %v", savePath, err)
		return s.Start("")
	}
	log.Printf("session: resumed from %s at node %s", savePath, s.node.ID)
	return nil
}
