// pkg/render/renderer.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/tilemap"
)

// Renderer отрисовывает мир: маршруты, башни, врагов, снаряды и HUD.
// Статичная геометрия маршрутов один раз предрендеривается в картинку.
type Renderer struct {
	tileMap  *tilemap.TileMap
	fontFace font.Face
	mapImage *ebiten.Image
}

func NewRenderer(tileMap *tilemap.TileMap, face font.Face) *Renderer {
	return &Renderer{
		tileMap:  tileMap,
		fontFace: face,
	}
}

// RenderMapImage предрендеривает фон с маршрутами. Вызывается один раз
// и после каждого изменения карты.
func (r *Renderer) RenderMapImage(pathIDs []int) {
	img := ebiten.NewImage(int(r.tileMap.Width), int(r.tileMap.Height))
	img.Fill(config.BackgroundColor)

	for _, id := range pathIDs {
		pts, ok := r.tileMap.Path(id)
		if !ok {
			continue
		}
		for i := 1; i < len(pts); i++ {
			vector.StrokeLine(img,
				float32(pts[i-1].X), float32(pts[i-1].Y),
				float32(pts[i].X), float32(pts[i].Y),
				float32(r.tileMap.TileSize*0.8), config.PathColor, true)
		}
		if len(pts) > 0 {
			last := pts[len(pts)-1]
			vector.DrawFilledCircle(img, float32(last.X), float32(last.Y),
				float32(r.tileMap.TileSize*0.7), config.BaseColor, true)
		}
	}
	r.mapImage = img
}

// DrawMap кладёт предрендеренный фон на экран.
func (r *Renderer) DrawMap(screen *ebiten.Image) {
	if r.mapImage == nil {
		screen.Fill(config.BackgroundColor)
		return
	}
	screen.DrawImage(r.mapImage, nil)
}

// DrawEnemies рисует врагов; радиус кружка сжимается с потерей здоровья.
func (r *Renderer) DrawEnemies(screen *ebiten.Image, enemies map[types.EntityID]*component.Enemy) {
	for _, e := range enemies {
		if !e.IsAlive() {
			continue
		}
		healthFrac := float64(e.Health()) / float64(e.MaxHealth())
		radius := float32((0.6 + 0.4*healthFrac) * e.Radius)
		clr := LerpColor(DarkenColor(e.Color), e.Color, healthFrac)
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), radius, clr, true)
	}
}

// DrawTowers рисует башни квадратами с окружностью радиуса у выбранной.
func (r *Renderer) DrawTowers(screen *ebiten.Image, towers []*component.Tower, showRange bool) {
	half := float32(config.TowerSize / 2)
	for _, t := range towers {
		clr := config.TowerColor
		if t.SplashRadius > 0 {
			clr = config.SplashColor
		}
		vector.DrawFilledRect(screen, float32(t.X)-half, float32(t.Y)-half, half*2, half*2, clr, true)
		vector.StrokeRect(screen, float32(t.X)-half, float32(t.Y)-half, half*2, half*2, 2, config.TowerStroke, true)
		if showRange {
			vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(t.Range), 1, config.TowerStroke, true)
		}
	}
}

// DrawProjectiles рисует активные снаряды.
func (r *Renderer) DrawProjectiles(screen *ebiten.Image, projectiles []*component.Projectile) {
	for _, p := range projectiles {
		if !p.Active {
			continue
		}
		clr := config.ProjectileColor
		if p.HasAreaDamage() {
			clr = config.SplashColor
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(config.ProjectileRadius), clr, true)
	}
}

// DrawHUD рисует полосу здоровья базы и счётчик золота.
func (r *Renderer) DrawHUD(screen *ebiten.Image, baseHealth, gold int) {
	const barWidth, barHeight = 200.0, 14.0
	x := float32(20)
	y := float32(16)

	frac := float32(baseHealth) / float32(config.BaseHealth)
	if frac < 0 {
		frac = 0
	}
	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, x, y, barWidth*frac, barHeight, config.HealthBarFront, false)
	vector.StrokeRect(screen, x, y, barWidth, barHeight, 1, config.TowerStroke, false)

	text.Draw(screen, fmt.Sprintf("%d", baseHealth), r.fontFace, int(x)+int(barWidth)+10, int(y)+12, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("gold: %d", gold), r.fontFace, int(x), int(y)+34, config.CountdownColor)
}

// DrawGameOver затемняет экран и выводит итоговую надпись.
func (r *Renderer) DrawGameOver(screen *ebiten.Image) {
	overlay := ebiten.NewImage(screen.Bounds().Dx(), screen.Bounds().Dy())
	overlay.Fill(color.RGBA{0, 0, 0, 160})
	screen.DrawImage(overlay, nil)
	text.Draw(screen, "GAME OVER", r.fontFace,
		screen.Bounds().Dx()/2-35, screen.Bounds().Dy()/2, config.PausedColor)
}
