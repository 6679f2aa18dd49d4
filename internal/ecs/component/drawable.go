package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/matjam/sword/internal/ecs"
)

// Drawable is the render-phase payload for an entity: either a glyph
// drawn as debug text, or a sprite blitted at its Transform's position.
// Grounded on the teacher's internal/ecs/component/drawable.go.
type Drawable struct {
	Glyph  rune
	Sprite *ebiten.Image
}

// ComponentName satisfies ecs.Component.
func (*Drawable) ComponentName() string { return "Drawable" }

// Draw renders d at pixel coordinates (x, y) onto screen.
func (d *Drawable) Draw(screen *ebiten.Image, x, y int) {
	if d.Sprite != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(d.Sprite, op)
		return
	}
	ebitenutil.DebugPrintAt(screen, string(d.Glyph), x, y)
}

var _ ecs.Component = (*Drawable)(nil)
