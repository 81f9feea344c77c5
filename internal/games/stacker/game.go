package stacker

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-stacker/internal/config"
	"github.com/vovakirdan/tui-stacker/internal/core"
	"github.com/vovakirdan/tui-stacker/internal/physics"
	"github.com/vovakirdan/tui-stacker/internal/registry"
)

// Fixed physics step, independent of the display tick rate.
const physicsDT = 1.0 / 60.0

// A settled block leaning past this angle has toppled and counts as falling.
const maxSettledTilt = 0.6

// Visual characters for rendering
const (
	BlockChar  = '█'
	BaseChar   = '▓'
	GroundChar = '═'
	PlumbChar  = '┊'
)

// palette holds the block colors the working color rotates through.
var palette = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
}

// GameState constants
const (
	StatePlaying = "playing"
	StatePaused  = "paused"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeClassic GameMode = iota // Fall penalties, difficulty progression
	ModeZen                     // No penalties, fixed pendulum speed
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the tower-stacking game logic.
type Game struct {
	mode GameMode

	// Simulation
	world    physics.World
	tower    *Tower
	swinging *Block // The block-in-play; nil only before the first spawn
	pendulum Pendulum

	// Session state
	score        int
	spawnCount   int
	rotations    int // Color re-picks so far
	currentColor core.Color
	rng          *rng

	state     string
	tickCount int

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.StackerConfig
	difficulty *config.DifficultyManager

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game instance in classic mode.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a new game instance in zen mode.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "stacker_zen"
	}
	return "stacker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Tower Stacker (Zen)"
	}
	return "Tower Stacker"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadStacker(configPath)
	if err != nil {
		cfg = config.DefaultStackerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyStackerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 48
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.score = 0
	g.spawnCount = 0
	g.rotations = 0
	g.tickCount = 0
	g.state = StatePlaying
	g.rng = newRNG(runtime.Seed)
	g.currentColor = palette[g.rng.Intn(len(palette))]

	g.world = physics.NewSpace(cfg.World.Gravity)

	// The base slab: static, infinite mass, part of the tower from the start.
	size := g.blockSize()
	basePos := core.Vec3{}
	baseBody := g.world.AddBox(basePos, size, 0, physics.KindStatic, physics.GroupTower)
	base := &Block{
		Size:  size,
		Pos:   basePos,
		Color: core.ColorGray,
		Body:  baseBody,
		Group: physics.GroupTower,
		State: StateSettled,
	}
	g.tower = NewTower(base, cfg.Block.Height)

	g.pendulum = Pendulum{
		Speed:     cfg.Pendulum.Speed,
		Amplitude: cfg.Pendulum.Amplitude,
	}
	g.swinging = g.spawnSwinging()
}

// blockSize returns the session-wide block extents.
func (g *Game) blockSize() core.Vec3 {
	return core.Vec3{X: g.cfg.Block.Width, Y: g.cfg.Block.Height, Z: g.cfg.Block.Depth}
}

// swingLevel returns the vertical level the pendulum swings at: a fixed
// number of block heights above the current tower top.
func (g *Game) swingLevel() float64 {
	return g.tower.Height() + g.cfg.Block.Height*g.cfg.Pendulum.HeightOffset
}

// spawnSwinging creates the next block-in-play above the tower. The body
// is kinematic with zero mass: gravity ignores it and the Pendulum
// collision group keeps it from touching the stack until it is dropped.
func (g *Game) spawnSwinging() *Block {
	size := g.blockSize()
	pos := core.Vec3{X: 0, Y: g.swingLevel(), Z: 0}
	body := g.world.AddBox(pos, size, 0, physics.KindKinematic, physics.GroupPendulum)
	return &Block{
		Size:  size,
		Pos:   pos,
		Color: g.currentColor,
		Body:  body,
		Group: physics.GroupPendulum,
		State: StateSwinging,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// The drop trigger is an external event whose handler runs to
	// completion before the tick body resumes.
	if in.Has(core.ActionDrop) {
		g.dropBlock()
	}

	g.world.Step(physicsDT)

	if g.swinging != nil {
		g.updatePendulum()
	}

	g.cleanup()

	return core.StepResult{State: g.State()}
}

// updatePendulum advances the oscillator and mirrors the swing position
// onto the block-in-play and its kinematic body.
func (g *Game) updatePendulum() {
	speed := g.cfg.Pendulum.Speed
	if g.mode == ModeClassic {
		speed = g.difficulty.Speed(speed, g.score, g.tickCount)
	}
	g.pendulum.Speed = speed
	g.pendulum.Advance()

	pos := core.Vec3{X: g.pendulum.SwayX(), Y: g.swingLevel(), Z: 0}
	g.swinging.Pos = pos
	g.swinging.Body.SetPosition(pos)
}

// dropBlock is the drop evaluator. Safe to call at any time: it only
// performs work when a swinging block exists.
func (g *Game) dropBlock() {
	if g.swinging == nil {
		return
	}

	b := g.swinging
	top := g.tower.Top()
	alignment := core.AbsF(b.Pos.X - top.Pos.X)

	// Hand the block to the simulator: from here on gravity and tower
	// collisions act on it. Mass must be recomputed after it changes.
	b.Body.SetKind(physics.KindDynamic)
	b.Body.SetMass(g.cfg.Block.Mass)
	b.Body.RecomputeMass()
	b.Body.SetGroup(physics.GroupTower)
	b.Group = physics.GroupTower

	sc := g.cfg.Scoring
	switch {
	case alignment < sc.PerfectRadius:
		g.score += sc.PerfectPoints
		// Forgive the near miss: snap onto the top block, keeping the
		// drop height, so the stack stays perfectly aligned.
		snapped := core.Vec3{X: top.Pos.X, Y: b.Pos.Y, Z: top.Pos.Z}
		b.Pos = snapped
		b.Body.SetPosition(snapped)
	case alignment < sc.PartialRadius:
		g.score += sc.PartialPoints
	default:
		// Likely overhang; the simulation decides whether it stays up.
		g.score += sc.PoorPoints
	}

	g.spawnCount++
	if g.cfg.Colors.RotateEvery > 0 && g.spawnCount%g.cfg.Colors.RotateEvery == 0 {
		g.currentColor = palette[g.rng.Intn(len(palette))]
		g.rotations++
	}

	b.State = StateSettled
	g.tower.Append(b)

	g.swinging = g.spawnSwinging()
}

// cleanup runs after the physics step: it syncs every tracked block from
// its body, marks dislodged blocks as falling, and destroys blocks that
// left the playable volume.
func (g *Game) cleanup() {
	base := g.tower.Base()

	// Iterate over a copy since destruction mutates the stack.
	tracked := append([]*Block(nil), g.tower.Blocks()...)
	for _, b := range tracked {
		b.syncFromBody()

		if b.State == StateSettled && b != base {
			sunk := b.Pos.Y < b.settleY-g.cfg.Block.Height
			tilted := core.AbsF(b.Body.Angle()) > maxSettledTilt
			if sunk || tilted {
				b.State = StateFalling
			}
		}

		if b.Pos.Y <= g.cfg.World.OutOfBoundsY {
			if b == base {
				// Non-removable by invariant: losing the base would
				// desynchronize the height bookkeeping.
				continue
			}
			g.destroyBlock(b)
		}
	}
}

// destroyBlock releases the physics body, then removes the block from
// the stack and applies the fall penalty. The body must be released
// before tracking is dropped or the world leaks bodies.
func (g *Game) destroyBlock(b *Block) {
	g.world.Remove(b.Body)
	b.Body = nil

	if g.tower.Remove(b) && g.mode == ModeClassic {
		g.score -= g.cfg.Scoring.FallPenalty
	}
}

// RunDetails reports extra run statistics for persistence: the current
// tower height and the number of placed blocks, base excluded.
func (g *Game) RunDetails() (float64, int) {
	return g.tower.Height(), g.tower.Len() - 1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Paused: g.state == StatePaused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	g.renderHUD(dst)

	groundRow := dst.Height() - 2
	// Camera slides up with the tower so the top stays in view.
	cameraY := g.tower.Height() - float64(dst.Height()-10)
	if cameraY < 0 {
		cameraY = 0
	}

	// Ground line, only while the base is on screen
	if cameraY == 0 {
		dst.DrawHLine(0, groundRow+1, dst.Width(), GroundChar)
	}

	// Plumb line under the swinging block helps the player aim
	if g.swinging != nil {
		col := g.worldToCol(dst, g.swinging.Pos.X)
		topRow := g.worldToRow(dst, cameraY, g.swinging.Pos.Y)
		for row := topRow + 1; row <= groundRow; row++ {
			dst.SetCell(col, row, PlumbChar, core.ColorGray)
		}
	}

	for _, b := range g.tower.Blocks() {
		g.renderBlock(dst, cameraY, b)
	}
	if g.swinging != nil {
		g.renderBlock(dst, cameraY, g.swinging)
	}

	if g.state == StatePaused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	} else if g.spawnCount == 0 {
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE or click to drop")
	}
}

// worldToCol maps a world x-coordinate to a screen column.
func (g *Game) worldToCol(dst *core.Screen, x float64) int {
	const scaleX = 2.0 // Cells are taller than wide; stretch x to compensate
	return dst.Width()/2 + int(math.Round(x*scaleX))
}

// worldToRow maps a world y-coordinate to a screen row.
func (g *Game) worldToRow(dst *core.Screen, cameraY, y float64) int {
	groundRow := dst.Height() - 2
	return groundRow - int(math.Round(y-cameraY))
}

// renderBlock draws one block as a single colored row of cells.
func (g *Game) renderBlock(dst *core.Screen, cameraY float64, b *Block) {
	const scaleX = 2.0
	row := g.worldToRow(dst, cameraY, b.Pos.Y)
	if row < 2 || row >= dst.Height()-1 {
		return
	}

	half := b.Size.X / 2
	left := g.worldToCol(dst, b.Pos.X-half)
	width := int(math.Round(b.Size.X * scaleX))

	char := BlockChar
	if b == g.tower.Base() {
		char = BaseChar
	}
	for i := 0; i < width; i++ {
		dst.SetCell(left+i, row, char, b.Color)
	}
}

// renderHUD draws the score, tower height and mode indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	height := fmt.Sprintf("Height: %.0f", g.tower.Height())
	dst.DrawTextCentered(0, height)

	label := "Classic"
	if g.mode == ModeZen {
		label = "Zen"
	}
	dst.DrawText(dst.Width()-len(label)-1, 0, label)

	dst.DrawTextColor(1, 1, fmt.Sprintf("Blocks: %d", g.tower.Len()), core.ColorGray)
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the games with the registry
func init() {
	registry.Register("stacker", func() registry.Game {
		return New()
	})
	registry.Register("stacker_zen", func() registry.Game {
		return NewZen()
	})
}
