package system

import (
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/matjam/sword/internal/ecs"
	"github.com/matjam/sword/internal/ecs/component"
)

var drawableType = reflect.TypeOf((*component.Drawable)(nil))

// Renderer is the render-phase system: it draws every entity carrying a
// Drawable at its Transform's position. Render systems are never paused
// and run independently of Tick — the host calls World.Render
// once per display frame, separately from World.Tick. Grounded on the
// teacher's internal/ecs/system/renderer.go.
type Renderer struct {
	world *ecs.World
	ctx   *ecs.Context

	transformID ecs.ComponentID
	drawableID  ecs.ComponentID

	// Target is the screen the next Render call draws onto; the host
	// sets it each frame from its ebiten.Game.Draw callback before
	// invoking World.Render.
	Target *ebiten.Image
}

// NewRenderer builds the Context matching any entity with both a
// Transform and a Drawable component.
func NewRenderer(w *ecs.World) *Renderer {
	ctx := w.Context([]ecs.FilterClauseDecl{
		{Kind: ecs.ClauseKindAllOf, Access: ecs.AccessModeRead, Types: []reflect.Type{transformType, drawableType}},
	})
	return &Renderer{
		world:       w,
		ctx:         ctx,
		transformID: w.Registry().IDOfType(transformType),
		drawableID:  w.Registry().IDOfType(drawableType),
	}
}

// SystemName satisfies ecs.System.
func (*Renderer) SystemName() string { return "renderer" }

// ContextEntityCount satisfies ecs.ContextSized, so the World's timing
// sink reports how many entities Renderer drew this frame.
func (sys *Renderer) ContextEntityCount() int { return sys.ctx.Len() }

// Render draws every matching entity onto Target, skipping the frame
// entirely if Target has not been set.
func (sys *Renderer) Render(w *ecs.World) {
	if sys.Target == nil {
		return
	}
	for _, id := range sys.ctx.Snapshot() {
		e, ok := w.Entity(id)
		if !ok {
			continue
		}
		transformC, ok := e.Get(sys.transformID)
		if !ok {
			continue
		}
		drawableC, ok := e.Get(sys.drawableID)
		if !ok {
			continue
		}

		transform := transformC.(*component.Transform)
		drawable := drawableC.(*component.Drawable)
		drawable.Draw(sys.Target, transform.X, transform.Y)
	}
}

var (
	_ ecs.Renderer     = (*Renderer)(nil)
	_ ecs.ContextSized = (*Renderer)(nil)
)
