// Package story holds the narrative tree and the resource economy the
// movement core reports into. Both are static data plus pure functions.
package story

import (
	"errors"
	"fmt"
)

// ErrNodeNotFound is returned when a node ID does not exist in the story.
var ErrNodeNotFound = errors.New("story node not found")

// Story is the whole branching narrative loaded from story.yaml.
type Story struct {
	Start string  `yaml:"start"`
	Nodes []*Node `yaml:"nodes"`

	index map[string]*Node
}

// Node is one decision point, bound to the scene the player walks through
// before the decision panel opens.
type Node struct {
	ID      string   `yaml:"id"`
	Phase   string   `yaml:"phase"`
	Scene   string   `yaml:"scene"`
	Title   string   `yaml:"title"`
	Text    string   `yaml:"text"`
	Ending  string   `yaml:"ending,omitempty"` // terminal node when set
	Choices []Choice `yaml:"choices"`
}

// Choice links a node to the next one.
type Choice struct {
	Text    string  `yaml:"text"`
	Next    string  `yaml:"next"`
	Effects Changes `yaml:"effects"`
	Outcome string  `yaml:"outcome"`
}

// IsTerminal reports whether the node ends the story.
func (n *Node) IsTerminal() bool {
	return n.Ending != "" || len(n.Choices) == 0
}

// NodeByID returns the node with the given ID.
func (s *Story) NodeByID(id string) (*Node, error) {
	if s.index == nil {
		s.buildIndex()
	}
	n, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return n, nil
}

// StartNode returns the first node of the story.
func (s *Story) StartNode() (*Node, error) {
	return s.NodeByID(s.Start)
}

// Validate checks that IDs are unique and every choice resolves.
func (s *Story) Validate() error {
	if len(s.Nodes) == 0 {
		return errors.New("story has no nodes")
	}
	seen := make(map[string]bool, len(s.Nodes))
	for _, n := range s.Nodes {
		if n.ID == "" {
			return errors.New("story node without id")
		}
		if seen[n.ID] {
			return fmt.Errorf("duplicate story node %q", n.ID)
		}
		seen[n.ID] = true
	}
	s.buildIndex()

	if _, err := s.StartNode(); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	for _, n := range s.Nodes {
		for i, c := range n.Choices {
			if _, err := s.NodeByID(c.Next); err != nil {
				return fmt.Errorf("node %s choice %d: %w", n.ID, i, err)
			}
		}
	}
	return nil
}

func (s *Story) buildIndex() {
	s.index = make(map[string]*Node, len(s.Nodes))
	for _, n := range s.Nodes {
		s.index[n.ID] = n
	}
}
