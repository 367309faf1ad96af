// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/state"
	"go-wave-defense/pkg/tilemap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func loadDefinitions() []defs.WaveDefinition {
	if err := defs.LoadEnemyDefinitions("assets/enemies.json"); err != nil {
		log.Printf("Используем встроенные определения врагов: %v", err)
	}
	waves, err := defs.LoadWaveDefinitions("assets/waves.yaml")
	if err != nil {
		log.Printf("Используем встроенные определения волн: %v", err)
		return nil
	}
	return waves
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	waves := loadDefinitions()

	tileMap := tilemap.New(config.WorldWidth, config.WorldHeight, config.TileSize)

	var face font.Face = basicfont.Face7x13

	sm := state.NewStateMachine()
	gs := state.NewGameState(sm, tileMap, time.Now().UnixNano(), face)
	if len(waves) > 0 {
		gs.Game().WaveManager.SetWaves(waves)
	}
	sm.SetState(gs)

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
