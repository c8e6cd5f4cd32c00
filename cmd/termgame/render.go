package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/runway/internal/application/session"
	"github.com/younwookim/runway/internal/application/state"
	"github.com/younwookim/runway/internal/domain/challenge"
	"github.com/younwookim/runway/internal/domain/entity"
)

// canvas is the part of tcell.Screen the renderer draws on
type canvas interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	styleDefault     = tcell.StyleDefault
	styleGround      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleObstacle    = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	stylePlatform    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	stylePlayer      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	stylePlayerHurt  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleEnemy       = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCollectible = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHUD         = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	stylePanel       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// grid converts level percent units into terminal cells. The bottom row is
// reserved for the HUD.
type grid struct {
	c      canvas
	w, h   int
	camX   float64
	offset int
}

func (g grid) col(x float64) int { return int((x-g.camX)/100*float64(g.w)) + g.offset }
func (g grid) row(y float64) int { return int(y / 100 * float64(g.h-1)) }

func (g grid) set(x, y int, r rune, st tcell.Style) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h-1 {
		return
	}
	g.c.SetContent(x, y, r, nil, st)
}

// box fills the cells covered by a level rectangle whose bottom edge is at y
func (g grid) box(cx, bottom, w, h float64, r rune, st tcell.Style) {
	x0, x1 := g.col(cx-w/2), g.col(cx+w/2)
	y0, y1 := g.row(bottom-h), g.row(bottom)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y0 = y1 - 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.set(x, y, r, st)
		}
	}
}

func (g grid) text(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		if x+i >= 0 && x+i < g.w && y >= 0 && y < g.h {
			g.c.SetContent(x+i, y, r, nil, st)
		}
	}
}

// render draws one frame of the session onto c
func render(c canvas, s *session.Session, shakeFrame int) {
	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetContent(x, y, ' ', nil, styleDefault)
		}
	}
	if w == 0 || h < 2 {
		return
	}

	g := grid{c: c, w: w, h: h}
	world := s.World()
	if sc := world.Scene(); sc != nil {
		v := world.View()
		g.camX = v.CameraX
		if v.Shaking && shakeFrame%2 == 1 {
			g.offset = 1
		}

		for x := 0; x < w; x++ {
			lx := g.camX + (float64(x-g.offset)+0.5)*100/float64(w)
			if sc.InHole(lx) {
				continue
			}
			for y := g.row(sc.GroundAt(lx)); y < h-1; y++ {
				g.set(x, y, '█', styleGround)
			}
		}
		for _, o := range sc.Obstacles {
			g.box(o.X, sc.GroundAt(o.X), o.Width, o.Height, '#', styleObstacle)
		}
		for _, p := range v.Platforms {
			g.box(p.X, p.Y+p.Height, p.Width, p.Height, '=', stylePlatform)
		}
		for _, it := range v.Collectibles {
			g.box(it.X, it.Y, it.Width, it.Height, '*', styleCollectible)
		}
		for _, e := range v.Enemies {
			g.box(e.X, e.Y, e.Width, e.Height, 'X', styleEnemy)
		}
		if f, ok := s.ActiveChallenge().(*challenge.FallingCatch); ok {
			for _, it := range f.Items() {
				if !it.Caught && !it.Missed {
					g.box(it.X, it.Y, it.Size, it.Size, 'o', styleCollectible)
				}
			}
		}

		st := stylePlayer
		if v.Player.Animation == entity.AnimHurt {
			st = stylePlayerHurt
		}
		g.box(v.Player.X, v.Player.Y, 2*entity.PlayerHalfWidth, entity.PlayerHeight, '@', st)
	}

	res := s.Resources()
	hud := fmt.Sprintf(" M%3d  $%3d  E%3d  R%3d  best %3d | a/d move  w jump  esc pause  F5 save  m mute  q quit",
		res.Momentum, res.Money, res.Energy, res.Reputation, s.HighScore())
	g.text(0, h-1, padRight(hud, w), styleHUD)

	if lines := panelLines(s); len(lines) > 0 {
		drawPanel(g, lines)
	}
}

// panelLines returns the text of the overlay for the session state
func panelLines(s *session.Session) []string {
	switch s.State() {
	case state.StatePaused:
		return []string{"PAUSED", "", "esc to resume"}
	case state.StateDecision:
		n := s.Node()
		lines := []string{n.Title, ""}
		lines = append(lines, strings.Split(strings.TrimSpace(n.Text), "\n")...)
		lines = append(lines, "")
		for i, c := range n.Choices {
			lines = append(lines, fmt.Sprintf("%d) %s", i+1, c.Text))
		}
		return lines
	case state.StateOutcome:
		return []string{s.Outcome(), "", "enter to continue"}
	case state.StateChallengeIntro:
		return []string{"CHALLENGE: " + s.ChallengeKind().String(), "", "enter to start"}
	case state.StateChallenge:
		q, ok := s.ActiveChallenge().(*challenge.QuickTime)
		if !ok {
			return nil
		}
		p, left, ok := q.Current()
		if !ok {
			return nil
		}
		return []string{fmt.Sprintf("PRESS [%s]  %.1fs", strings.ToUpper(p.Key), left)}
	case state.StateChallengeResult:
		return []string{fmt.Sprintf("Challenge score: %d", s.LastScore()), "", "enter to continue"}
	case state.StateGameOver:
		return []string{fmt.Sprintf("GAME OVER (%s)", s.Ending()), "", fmt.Sprintf("best momentum %d", s.HighScore()), "enter to restart"}
	case state.StateVictory:
		return []string{"YOU MADE IT", "", fmt.Sprintf("best momentum %d", s.HighScore()), "enter to play again"}
	}
	return nil
}

func drawPanel(g grid, lines []string) {
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	width += 4
	x0 := (g.w - width) / 2
	y0 := (g.h - 1 - len(lines) - 2) / 2
	for i := -1; i <= len(lines); i++ {
		line := ""
		if i >= 0 && i < len(lines) {
			line = lines[i]
		}
		g.text(x0, y0+1+i, padRight("  "+line, width), stylePanel)
	}
}

func padRight(s string, w int) string {
	n := len([]rune(s))
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}
