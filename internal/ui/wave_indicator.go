// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/system"
)

// WaveIndicator отображает номер текущей волны римскими цифрами,
// остаток отсчёта и счётчики волны.
type WaveIndicator struct {
	X, Y     int
	fontFace font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, fontFace: face}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, status system.WaveStatus) {
	if status.CurrentWave <= 0 {
		text.Draw(screen, "PRESS SPACE", i.fontFace, i.X, i.Y, config.TextLightColor)
		return
	}

	textColor := config.TextLightColor
	line := toRoman(status.CurrentWave)

	switch status.State {
	case system.StateCountdown:
		line = fmt.Sprintf("%s  %.0fs", line, status.CountdownRemainingMs/1000)
		textColor = config.CountdownColor
	case system.StateSpawning, system.StateWaitingForClear:
		line = fmt.Sprintf("%s  %d/%d", line, status.Killed+status.Leaked, status.Spawned)
	case system.StateComplete:
		line = line + "  CLEAR"
	}

	text.Draw(screen, line, i.fontFace, i.X, i.Y, textColor)
}
