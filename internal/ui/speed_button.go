// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-defense/internal/config"
)

// SpeedButton — кнопка переключения скорости игры (x1/x2/x4).
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	CurrentState  int
	fontFace      font.Face
}

func NewSpeedButton(x, y, size float32, face font.Face) *SpeedButton {
	return &SpeedButton{
		X:        x,
		Y:        y,
		Size:     size,
		fontFace: face,
	}
}

// Draw отрисовывает кнопку; после клика она коротко "пружинит".
func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	clr := config.SpeedButtonColors[b.CurrentState]
	vector.DrawFilledRect(screen, b.X-size, b.Y-size, size*2, size*2, clr, true)
	vector.StrokeRect(screen, b.X-size, b.Y-size, size*2, size*2, 2, config.TowerStroke, true)

	label := fmt.Sprintf("x%d", 1<<b.CurrentState)
	text.Draw(screen, label, b.fontFace, int(b.X)-7, int(b.Y)+4, config.TextLightColor)
}

// IsClicked проверяет попадание клика в кнопку.
func (b *SpeedButton) IsClicked(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X-b.Size && fx <= b.X+b.Size && fy >= b.Y-b.Size && fy <= b.Y+b.Size
}

// ToggleState переключает состояние кнопки по кругу.
func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(config.SpeedButtonColors)
	b.LastClickTime = time.Now()
}
