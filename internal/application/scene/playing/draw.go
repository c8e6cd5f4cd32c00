package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/runway/internal/application/state"
	"github.com/younwookim/runway/internal/application/system"
	"github.com/younwookim/runway/internal/domain/challenge"
	"github.com/younwookim/runway/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorGround      = color.RGBA{70, 70, 90, 255}
	colorObstacle    = color.RGBA{120, 90, 60, 255}
	colorPlatform    = color.RGBA{90, 140, 180, 255}
	colorPlayer      = color.RGBA{100, 200, 100, 255}
	colorPlayerHurt  = color.RGBA{240, 120, 120, 255}
	colorEnemy       = color.RGBA{200, 100, 100, 255}
	colorCollectible = color.RGBA{255, 215, 0, 255}
	colorFalling     = color.RGBA{230, 230, 120, 255}
	colorTrigger     = color.RGBA{255, 255, 255, 60}
	colorPanel       = color.RGBA{0, 0, 0, 170}
	colorGameOver    = color.RGBA{100, 0, 0, 180}
	colorVictory     = color.RGBA{0, 80, 40, 180}
)

const (
	shakeAmplitude = 3.0 // pixels
	groundColumn   = 0.5 // level units per ground column
)

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	w := p.session.World()
	sc := w.Scene()
	if sc == nil {
		p.drawOverlay(screen)
		return
	}
	v := w.View()

	camX := v.CameraX
	offset := 0.0
	if v.Shaking {
		offset = shakeAmplitude * (2*p.randFloat() - 1)
	}
	r := renderer{screen: screen, camX: camX, sx: float64(p.screenW) / 100, sy: float64(p.screenH) / 100, offset: offset}

	p.drawGround(r, sc)
	p.drawTriggers(r, sc)
	for _, o := range sc.Obstacles {
		r.rect(o.X-o.Width/2, sc.GroundAt(o.X)-o.Height, o.Width, o.Height, colorObstacle)
	}
	for _, pl := range v.Platforms {
		r.rect(pl.X-pl.Width/2, pl.Y, pl.Width, pl.Height, colorPlatform)
	}
	for _, c := range v.Collectibles {
		r.rect(c.X-c.Width/2, c.Y-c.Height, c.Width, c.Height, colorCollectible)
	}
	for _, e := range v.Enemies {
		r.rect(e.X-e.Width/2, e.Y-e.Height, e.Width, e.Height, colorEnemy)
	}
	p.drawFallingItems(r)
	p.drawPlayer(r, v)

	p.drawUI(screen, v)
	p.drawOverlay(screen)
}

// renderer converts level percent units to screen pixels
type renderer struct {
	screen *ebiten.Image
	camX   float64
	sx, sy float64
	offset float64
}

func (r renderer) rect(x, y, w, h float64, c color.Color) {
	ebitenutil.DrawRect(r.screen, (x-r.camX)*r.sx+r.offset, y*r.sy, w*r.sx, h*r.sy, c)
}

func (p *Playing) drawGround(r renderer, sc *entity.Scene) {
	for x := r.camX; x < r.camX+100; x += groundColumn {
		if sc.InHole(x + groundColumn/2) {
			continue
		}
		y := sc.GroundAt(x + groundColumn/2)
		r.rect(x, y, groundColumn, 100-y, colorGround)
	}
}

func (p *Playing) drawTriggers(r renderer, sc *entity.Scene) {
	if sc.ChallengeGateX > 0 {
		r.rect(sc.ChallengeGateX-0.25, 0, 0.5, sc.GroundAt(sc.ChallengeGateX), colorTrigger)
	}
	if sc.DecisionX > 0 {
		r.rect(sc.DecisionX-0.25, 0, 0.5, sc.GroundAt(sc.DecisionX), colorTrigger)
	}
}

func (p *Playing) drawFallingItems(r renderer) {
	f, ok := p.session.ActiveChallenge().(*challenge.FallingCatch)
	if !ok {
		return
	}
	for _, it := range f.Items() {
		if it.Caught || it.Missed {
			continue
		}
		r.rect(it.X-it.Size/2, it.Y-it.Size, it.Size, it.Size, colorFalling)
	}
}

func (p *Playing) drawPlayer(r renderer, v system.View) {
	pl := v.Player
	c := colorPlayer
	if pl.Animation == entity.AnimHurt {
		c = colorPlayerHurt
	}
	r.rect(pl.X-entity.PlayerHalfWidth, pl.Y-entity.PlayerHeight, 2*entity.PlayerHalfWidth, entity.PlayerHeight, c)
}

func (p *Playing) drawUI(screen *ebiten.Image, v system.View) {
	s := p.session
	res := s.Resources()
	hud := fmt.Sprintf("Momentum %3d  Money %3d  Energy %3d  Reputation %3d  Best %3d",
		res.Momentum, res.Money, res.Energy, res.Reputation, s.HighScore())
	ebitenutil.DebugPrintAt(screen, hud, 10, p.screenH-20)

	if n := s.Node(); n != nil {
		ebitenutil.DebugPrintAt(screen, n.Title, 10, 20)
	}

	// Controls
	ebitenutil.DebugPrint(screen, "A/D: Move | W/Space: Jump | ESC: Pause | F5: Save | M: Mute")
}

func (p *Playing) drawOverlay(screen *ebiten.Image) {
	s := p.session
	var text string
	bg := colorPanel

	switch s.State() {
	case state.StatePaused:
		text = "PAUSED\n\nPress ESC to resume"
	case state.StateDecision:
		text = decisionText(s.Node().Title, s.Node().Text, p.choiceTexts())
	case state.StateOutcome:
		text = s.Outcome() + "\n\nPress Enter to continue"
	case state.StateChallengeIntro:
		text = fmt.Sprintf("CHALLENGE: %s\n\nPress Enter to start", s.ChallengeKind())
	case state.StateChallenge:
		q, ok := s.ActiveChallenge().(*challenge.QuickTime)
		if !ok {
			return
		}
		prompt, left, ok := q.Current()
		if !ok {
			return
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PRESS [%s]  %.1fs", strings.ToUpper(prompt.Key), left), p.screenW/2-50, p.screenH/3)
		return
	case state.StateChallengeResult:
		text = fmt.Sprintf("Challenge score: %d\n\nPress Enter to continue", s.LastScore())
	case state.StateGameOver:
		bg = colorGameOver
		text = fmt.Sprintf("GAME OVER (%s)\n\nBest momentum: %d\n\nPress Enter to restart", s.Ending(), s.HighScore())
	case state.StateVictory:
		bg = colorVictory
		text = fmt.Sprintf("YOU MADE IT\n\nBest momentum: %d\n\nPress Enter to play again", s.HighScore())
	default:
		return
	}

	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), bg)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/8, p.screenH/4)
}

func (p *Playing) choiceTexts() []string {
	choices := p.session.Node().Choices
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Text
	}
	return out
}

func decisionText(title, body string, choices []string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	for i, c := range choices {
		fmt.Fprintf(&b, "\n%d) %s", i+1, c)
	}
	return b.String()
}

// randFloat is a tiny LCG so the shake does not touch the session rng
func (p *Playing) randFloat() float64 {
	p.shakeSeed = p.shakeSeed*1103515245 + 12345
	return float64(p.shakeSeed&0x7fffffff) / float64(0x7fffffff)
}
