// internal/state/game_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	game "go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/ui"
	"go-wave-defense/pkg/render"
	"go-wave-defense/pkg/tilemap"
)

// GameState — основное игровое состояние: волны, башни, враги.
type GameState struct {
	sm            *StateMachine
	game          *game.Game
	renderer      *render.Renderer
	waveIndicator *ui.WaveIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	lastClickTime time.Time
	showRanges    bool
}

func NewGameState(sm *StateMachine, tileMap *tilemap.TileMap, seed int64, face font.Face) *GameState {
	gameLogic := game.NewGame(tileMap, seed)

	renderer := render.NewRenderer(tileMap, face)
	renderer.RenderMapImage([]int{0})

	gs := &GameState{
		sm:       sm,
		game:     gameLogic,
		renderer: renderer,
		waveIndicator: ui.NewWaveIndicator(
			config.ScreenWidth-config.IndicatorOffsetX*4,
			config.SpeedButtonY,
			face,
		),
		speedButton: ui.NewSpeedButton(
			float32(config.ScreenWidth-config.SpeedButtonOffsetX),
			float32(config.SpeedButtonY),
			config.SpeedButtonSize,
			face,
		),
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-config.SpeedButtonOffsetX*2),
			float32(config.SpeedButtonY),
			config.SpeedButtonSize,
		),
		lastClickTime: time.Now(),
	}
	return gs
}

// Game открывает игровую логику состоянию паузы.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.pauseButton.IsPaused = false
	g.game.WaveManager.Resume()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.enterPause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.StartWaves()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.game.WaveManager.SetEndless(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.showRanges = !g.showRanges
	}

	g.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y, ebiten.MouseButtonLeft)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y, ebiten.MouseButtonRight)
	}
}

func (g *GameState) handleClick(x, y int, button ebiten.MouseButton) {
	if time.Since(g.lastClickTime) < config.ClickDebounceTime*time.Millisecond {
		return
	}
	g.lastClickTime = time.Now()

	if button == ebiten.MouseButtonLeft {
		if g.speedButton.IsClicked(x, y) {
			g.speedButton.ToggleState()
			g.game.CycleSpeed()
			return
		}
		if g.pauseButton.IsClicked(x, y) {
			g.enterPause()
			return
		}
		g.game.PlaceTower(float64(x), float64(y))
		return
	}
	// Правый клик ставит сплеш-башню.
	g.game.PlaceSplashTower(float64(x), float64(y))
}

func (g *GameState) enterPause() {
	g.pauseButton.IsPaused = true
	g.game.WaveManager.Pause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.DrawMap(screen)
	g.renderer.DrawTowers(screen, g.game.Towers(), g.showRanges)
	g.renderer.DrawEnemies(screen, g.game.EnemyManager.Enemies())
	g.renderer.DrawProjectiles(screen, g.game.ProjectileManager.Projectiles())
	g.renderer.DrawHUD(screen, g.game.BaseHealth, g.game.Gold)

	g.waveIndicator.Draw(screen, g.game.WaveManager.State())
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	if g.game.IsGameOver() {
		g.renderer.DrawGameOver(screen)
	}
}

func (g *GameState) Exit() {}
