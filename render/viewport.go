package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/echo-sandbox/component"
	"github.com/lixenwraith/echo-sandbox/core"
	"github.com/lixenwraith/echo-sandbox/engine"
	"go.uber.org/zap"
)

// Overlay is the per-frame HUD content
type Overlay struct {
	Lines  []string
	Paused bool
	Muted  bool
}

// Viewport draws the scene to a terminal screen through a fixed camera
type Viewport struct {
	mu     sync.Mutex
	screen tcell.Screen
	camera *Camera
	buf    *RenderBuffer
	logger *zap.Logger

	showHUD bool
}

// NewViewport creates a viewport sized to the screen
func NewViewport(screen tcell.Screen, camera *Camera, showHUD bool, logger *zap.Logger) *Viewport {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, h := screen.Size()
	v := &Viewport{
		screen:  screen,
		camera:  camera,
		buf:     NewRenderBuffer(w, h),
		logger:  logger,
		showHUD: showHUD,
	}
	camera.SetViewport(w, h)
	return v
}

// Resize adapts the buffer and projection to a new terminal size
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.buf.Resize(width, height)
	v.camera.SetViewport(width, height)
	v.screen.Sync()
	v.logger.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// Size returns the current cell dimensions
func (v *Viewport) Size() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.buf.Size()
}

// Buffer exposes the last composed frame
func (v *Viewport) Buffer() *RenderBuffer {
	return v.buf
}

// Draw composes the scene and overlay then flushes to the screen
// Opaque boxes go first so translucent echoes blend over their final depth
func (v *Viewport) Draw(world *engine.World, overlay Overlay) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Clear()

	var translucent []core.Entity
	for _, e := range world.Entities() {
		mat, ok := v.material(world, e)
		if !ok {
			continue
		}
		if !mat.Opaque() {
			translucent = append(translucent, e)
			continue
		}
		v.drawEntity(world, e, mat)
	}
	for _, e := range translucent {
		mat, _ := v.material(world, e)
		v.drawEntity(world, e, mat)
	}

	if v.showHUD {
		drawHUD(v.buf, overlay)
	}
	v.buf.Flush(v.screen)
}

func (v *Viewport) material(world *engine.World, e core.Entity) (Material, bool) {
	kind, ok := world.Kinds.Get(e)
	if !ok {
		return Material{}, false
	}
	return MaterialFor(kind)
}

func (v *Viewport) drawEntity(world *engine.World, e core.Entity, mat Material) {
	pose, ok := world.Transforms.Get(e)
	if !ok {
		return
	}
	shape, ok := world.Shapes.Get(e)
	if !ok {
		shape = component.Cube(1)
	}
	DrawBox(v.buf, v.camera, pose, shape, mat)
}
