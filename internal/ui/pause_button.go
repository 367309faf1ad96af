// internal/ui/pause_button.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-defense/internal/config"
)

// PauseButton — кнопка паузы: две вертикальные полосы либо треугольник (play).
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play) — рисуем тремя сужающимися полосами,
		// этого достаточно для пиктограммы такого размера.
		vector.DrawFilledRect(screen, b.X-size*0.6, b.Y-size, size*0.5, size*2, config.PausedColor, true)
		vector.DrawFilledRect(screen, b.X-size*0.1, b.Y-size*0.6, size*0.5, size*1.2, config.PausedColor, true)
		vector.DrawFilledRect(screen, b.X+size*0.4, b.Y-size*0.25, size*0.4, size*0.5, config.PausedColor, true)
	} else {
		vector.DrawFilledRect(screen, b.X-size*0.7, b.Y-size, size*0.45, size*2, config.TextLightColor, true)
		vector.DrawFilledRect(screen, b.X+size*0.25, b.Y-size, size*0.45, size*2, config.TextLightColor, true)
	}
}

// IsClicked проверяет попадание клика в кнопку.
func (b *PauseButton) IsClicked(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X-b.Size*1.5 && fx <= b.X+b.Size*1.5 && fy >= b.Y-b.Size*1.5 && fy <= b.Y+b.Size*1.5
}

// Toggle переключает состояние паузы.
func (b *PauseButton) Toggle() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}
