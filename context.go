package gal

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/gputypes"
)

// Context is a device-independent drawing context. Primitives are issued in
// user coordinates, mapped to world coordinates by the user transform and to
// screen pixels by the world to screen transform.
//
// Between BeginDrawing and EndDrawing primitives are rendered into the
// current compositor buffer. Between BeginGroup and EndGroup they are
// recorded into a group instead and can be replayed with DrawGroup.
//
// A Context is not safe for concurrent use.
type Context struct {
	width, height int

	// View.
	worldUnitLength float64
	screenDPI       float64
	zoomFactor      float64
	lookAt          gg.Point
	flipX, flipY    bool
	worldScale      float64
	worldScreen     gg.Matrix
	screenWorld     gg.Matrix

	// Drawing state.
	isFill      bool
	isStroke    bool
	fillColor   Color
	strokeColor Color
	lineWidth   float64
	layerDepth  float64
	user        gg.Matrix
	stack       []gg.Matrix

	pending *pathBuilder
	dirty   bool

	// Groups.
	groups       map[int]*Group
	groupCounter int
	current      *Group
	grouping     bool
	groupInit    bool

	// Surfaces.
	initialized bool
	background  Color
	surface     *surfacePair
	comp        *Compositor
	compValid   bool
	mainBuffer  int
	overlay     int
	target      RenderTarget

	// Cursor.
	cursorEnabled    bool
	fullscreenCursor bool
	cursorColor      Color
	cursorPos        gg.Point

	fontSource *text.FontSource
	faces      map[int]text.Face
}

// New creates a context drawing onto a width x height surface.
func New(width, height int, opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		width:           width,
		height:          height,
		worldUnitLength: o.worldUnitLength,
		screenDPI:       o.screenDPI,
		zoomFactor:      o.zoomFactor,
		lookAt:          o.lookAt,
		flipX:           o.flipX,
		flipY:           o.flipY,
		isFill:          false,
		isStroke:        true,
		fillColor:       Black,
		strokeColor:     White,
		user:            gg.Identity(),
		pending:         newPathBuilder(),
		groups:          make(map[int]*Group),
		background:      o.background,
		surface:         newSurfacePair(width, height),
		cursorColor:     o.cursorColor,
		fontSource:      o.fontSource,
		faces:           make(map[int]text.Face),
	}
	c.ComputeWorldScreenMatrix()
	return c
}

// Size returns the screen size in pixels.
func (c *Context) Size() (width, height int) {
	return c.width, c.height
}

// Image returns the visible surface. It holds the composed frame after
// EndDrawing.
func (c *Context) Image() *image.RGBA {
	return c.surface.screen
}

// ReadPixels returns the visible surface laid out as format.
func (c *Context) ReadPixels(format gputypes.TextureFormat) ([]byte, error) {
	return CopyPixels(c.surface.screen, format)
}

// BeginDrawing starts a frame. The visible surface is cleared to the
// background color and the main buffer becomes the current target.
func (c *Context) BeginDrawing() {
	c.initSurface()
	c.clearScreenImage(c.background)

	if !c.compValid {
		c.setCompositor()
	}
	c.comp.SetBuffer(c.mainBuffer)
	c.target = TargetCached
}

// EndDrawing flushes pending geometry and composes the main buffer, then
// the overlay buffer, then the cursor onto the visible surface.
func (c *Context) EndDrawing() {
	c.flush()

	if c.compValid {
		c.comp.SetMainSurface(c.surface.screen)
		c.comp.DrawBuffer(c.mainBuffer)
		c.comp.DrawBuffer(c.overlay)
	}
	c.blitCursor()
	c.deinitSurface()
}

// Flush commits the pending path.
func (c *Context) Flush() {
	c.flush()
}

// ClearScreen remembers col as the background color and clears the current
// buffer with it.
func (c *Context) ClearScreen(col Color) {
	c.flush()
	c.background = col
	if c.compValid {
		c.comp.Context().ClearWithColor(col.ToRGBA())
		return
	}
	c.clearScreenImage(col)
}

// ResizeScreen changes the surface size. Buffer contents are lost and the
// compositor is rebuilt by the next BeginDrawing.
func (c *Context) ResizeScreen(width, height int) {
	c.flush()
	c.width, c.height = width, height
	c.surface.resize(width, height)
	if c.comp != nil {
		c.comp.Resize(width, height)
	}
	c.compValid = false
	c.ComputeWorldScreenMatrix()
	Logger().Info("gal: resize surface", "width", width, "height", height)
}

func (c *Context) initSurface() {
	if c.initialized {
		return
	}
	c.ComputeWorldScreenMatrix()
	c.user = gg.Identity()
	c.stack = c.stack[:0]
	c.pending.take()
	c.dirty = false
	c.lineWidth = 0
	c.initialized = true
}

func (c *Context) deinitSurface() {
	if !c.initialized {
		return
	}
	c.flush()
	c.initialized = false
}

func (c *Context) setCompositor() {
	c.comp = NewCompositor(c.width, c.height)
	c.mainBuffer = c.comp.CreateBuffer()
	c.overlay = c.comp.CreateBuffer()
	c.compValid = true
	Logger().Info("gal: create compositor", "width", c.width, "height", c.height)
}

func (c *Context) clearScreenImage(col Color) {
	img := c.surface.screen
	draw.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// View transform.

// SetLookAtPoint sets the world point shown at the screen centre.
func (c *Context) SetLookAtPoint(p gg.Point) {
	c.lookAt = p
	c.viewChanged()
}

// LookAtPoint returns the world point shown at the screen centre.
func (c *Context) LookAtPoint() gg.Point {
	return c.lookAt
}

// SetZoomFactor sets the zoom.
func (c *Context) SetZoomFactor(z float64) {
	c.zoomFactor = z
	c.viewChanged()
}

// ZoomFactor returns the zoom.
func (c *Context) ZoomFactor() float64 {
	return c.zoomFactor
}

// SetWorldUnitLength sets the length of one world unit in inches.
func (c *Context) SetWorldUnitLength(l float64) {
	c.worldUnitLength = l
	c.viewChanged()
}

// SetScreenDPI sets the screen resolution.
func (c *Context) SetScreenDPI(dpi float64) {
	c.screenDPI = dpi
	c.viewChanged()
}

// SetFlip mirrors the view.
func (c *Context) SetFlip(x, y bool) {
	c.flipX, c.flipY = x, y
	c.viewChanged()
}

func (c *Context) viewChanged() {
	c.flush()
	c.ComputeWorldScreenMatrix()
}

// ComputeWorldScreenMatrix rebuilds the world to screen transform from the
// view parameters.
func (c *Context) ComputeWorldScreenMatrix() {
	c.worldScale = c.screenDPI * c.worldUnitLength * c.zoomFactor

	fx, fy := 1.0, 1.0
	if c.flipX {
		fx = -1
	}
	if c.flipY {
		fy = -1
	}

	c.worldScreen = gg.Translate(float64(c.width)/2, float64(c.height)/2).
		Multiply(gg.Scale(fx, fy)).
		Multiply(gg.Scale(c.worldScale, c.worldScale)).
		Multiply(gg.Translate(-c.lookAt.X, -c.lookAt.Y))
	c.screenWorld = c.worldScreen.Invert()
}

// WorldScreenMatrix returns the world to screen transform.
func (c *Context) WorldScreenMatrix() gg.Matrix {
	return c.worldScreen
}

// WorldScale returns screen pixels per world unit.
func (c *Context) WorldScale() float64 {
	return c.worldScale
}

// ToScreen maps a world point to screen pixels.
func (c *Context) ToScreen(p gg.Point) gg.Point {
	return c.worldScreen.TransformPoint(p)
}

// ToWorld maps a screen point to world coordinates.
func (c *Context) ToWorld(p gg.Point) gg.Point {
	return c.screenWorld.TransformPoint(p)
}

// fullMatrix maps user coordinates to screen pixels.
func (c *Context) fullMatrix() gg.Matrix {
	return c.worldScreen.Multiply(c.user)
}

// State.

// SetIsFill enables or disables filling of closed shapes.
func (c *Context) SetIsFill(enabled bool) {
	c.flush()
	c.isFill = enabled
	c.record(SetFillCommand{Enabled: enabled})
}

// IsFill reports whether filling is enabled.
func (c *Context) IsFill() bool {
	return c.isFill
}

// SetIsStroke enables or disables stroking of outlines.
func (c *Context) SetIsStroke(enabled bool) {
	c.flush()
	c.isStroke = enabled
	c.record(SetStrokeCommand{Enabled: enabled})
}

// IsStroke reports whether stroking is enabled.
func (c *Context) IsStroke() bool {
	return c.isStroke
}

// SetFillColor sets the fill color.
func (c *Context) SetFillColor(col Color) {
	c.flush()
	c.fillColor = col
	c.record(SetFillColorCommand{Color: col})
}

// FillColor returns the fill color.
func (c *Context) FillColor() Color {
	return c.fillColor
}

// SetStrokeColor sets the stroke color.
func (c *Context) SetStrokeColor(col Color) {
	c.flush()
	c.strokeColor = col
	c.record(SetStrokeColorCommand{Color: col})
}

// StrokeColor returns the stroke color.
func (c *Context) StrokeColor() Color {
	return c.strokeColor
}

// SetLineWidth sets the stroke width in user units. While grouping the
// width is recorded and takes effect on replay.
func (c *Context) SetLineWidth(width float64) {
	c.flush()
	if c.grouping {
		c.record(SetLineWidthCommand{Width: width})
		return
	}
	c.lineWidth = width
}

// LineWidth returns the requested stroke width in user units.
func (c *Context) LineWidth() float64 {
	return c.lineWidth
}

// EffectiveLineWidth returns the stroke width actually used: the requested
// width, but never less than one screen pixel.
func (c *Context) EffectiveLineWidth() float64 {
	v := c.fullMatrix().Invert().TransformVector(gg.Pt(1, 0))
	return math.Max(c.lineWidth, math.Hypot(v.X, v.Y))
}

// SetLayerDepth sets the depth of subsequent drawing. Raster output paints
// in call order, so the depth only delimits the pending path.
func (c *Context) SetLayerDepth(depth float64) {
	c.flush()
	c.layerDepth = depth
}

// LayerDepth returns the current layer depth.
func (c *Context) LayerDepth() float64 {
	return c.layerDepth
}

// Transforms. While grouping they are recorded only and applied on replay.

// Transform multiplies the user transform by m.
func (c *Context) Transform(m gg.Matrix) {
	c.flush()
	if c.grouping {
		c.record(TransformCommand{Matrix: m})
		return
	}
	c.user = c.user.Multiply(m)
}

// Rotate rotates the user transform by angle radians.
func (c *Context) Rotate(angle float64) {
	c.flush()
	if c.grouping {
		c.record(RotateCommand{Angle: angle})
		return
	}
	c.user = c.user.Multiply(gg.Rotate(angle))
}

// Translate translates the user transform.
func (c *Context) Translate(offset gg.Point) {
	c.flush()
	if c.grouping {
		c.record(TranslateCommand{Offset: offset})
		return
	}
	c.user = c.user.Multiply(gg.Translate(offset.X, offset.Y))
}

// Scale scales the user transform.
func (c *Context) Scale(factor gg.Point) {
	c.flush()
	if c.grouping {
		c.record(ScaleCommand{Factor: factor})
		return
	}
	c.user = c.user.Multiply(gg.Scale(factor.X, factor.Y))
}

// Save pushes the user transform.
func (c *Context) Save() {
	c.flush()
	if c.grouping {
		c.record(SaveCommand{})
		return
	}
	c.stack = append(c.stack, c.user)
}

// Restore pops the user transform pushed by the matching Save.
func (c *Context) Restore() {
	c.flush()
	if c.grouping {
		c.record(RestoreCommand{})
		return
	}
	c.popUser()
}

func (c *Context) popUser() {
	if len(c.stack) == 0 {
		Logger().Warn("gal: restore without save")
		return
	}
	c.user = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// UserMatrix returns the user transform.
func (c *Context) UserMatrix() gg.Matrix {
	return c.user
}

// Pending path.

// path returns the pending path for a primitive to append to.
func (c *Context) path() *pathBuilder {
	if !c.grouping && !c.initialized {
		precondition(ErrNotInitialized, "draw outside BeginDrawing")
	}
	c.dirty = true
	return c.pending
}

// flush fills then strokes the pending path, or records both when grouping.
func (c *Context) flush() {
	if !c.dirty {
		return
	}
	c.dirty = false
	p := c.pending.take()

	if c.grouping {
		if c.isFill {
			c.record(FillPathCommand{Path: p})
		}
		if c.isStroke {
			c.record(StrokePathCommand{Path: p, Paint: PaintStroke})
		}
		return
	}
	if c.isFill {
		c.fillPath(p, c.fillColor)
	}
	if c.isStroke {
		c.strokePath(p, c.strokeColor)
	}
}

// commitStroke strokes p with the fill color right away, bypassing the
// pending path. Used by the solid thick-line primitives.
func (c *Context) commitStroke(p *gg.Path) {
	if c.grouping {
		c.record(StrokePathCommand{Path: p, Paint: PaintFill})
		return
	}
	if !c.initialized {
		precondition(ErrNotInitialized, "draw outside BeginDrawing")
	}
	c.strokePath(p, c.fillColor)
}

func (c *Context) record(cmd Command) {
	if c.grouping && c.current != nil {
		c.current.commands = append(c.current.commands, cmd)
	}
}

// Painting into the current buffer.

func (c *Context) drawTarget() *gg.Context {
	if !c.compValid {
		precondition(ErrNotInitialized, "no render buffer")
	}
	return c.comp.Context()
}

func (c *Context) fillPath(p *gg.Path, col Color) {
	dc := c.drawTarget()
	appendPath(dc, p, c.fullMatrix())
	dc.SetFillRule(gg.FillRuleNonZero)
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	if err := dc.Fill(); err != nil {
		Logger().Warn("gal: fill failed", "err", err)
	}
}

func (c *Context) strokePath(p *gg.Path, col Color) {
	dc := c.drawTarget()
	full := c.fullMatrix()
	appendPath(dc, p, full)
	dc.SetLineWidth(c.EffectiveLineWidth() * deviceScale(full))
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	if err := dc.Stroke(); err != nil {
		Logger().Warn("gal: stroke failed", "err", err)
	}
}

// appendPath replaces the path of dc with p mapped through m. The buffer
// contexts keep an identity transform, so geometry arrives in pixels.
func appendPath(dc *gg.Context, p *gg.Path, m gg.Matrix) {
	dc.ClearPath()
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case gg.MoveTo:
			q := m.TransformPoint(e.Point)
			dc.MoveTo(q.X, q.Y)
		case gg.LineTo:
			q := m.TransformPoint(e.Point)
			dc.LineTo(q.X, q.Y)
		case gg.QuadTo:
			q1 := m.TransformPoint(e.Control)
			q := m.TransformPoint(e.Point)
			dc.QuadraticTo(q1.X, q1.Y, q.X, q.Y)
		case gg.CubicTo:
			q1 := m.TransformPoint(e.Control1)
			q2 := m.TransformPoint(e.Control2)
			q := m.TransformPoint(e.Point)
			dc.CubicTo(q1.X, q1.Y, q2.X, q2.Y, q.X, q.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}

// deviceScale is the length scale factor of m.
func deviceScale(m gg.Matrix) float64 {
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

// surfacePair owns the visible surface and its backup copy. Both are
// reallocated together.
type surfacePair struct {
	screen *image.RGBA
	backup *image.RGBA
}

func newSurfacePair(width, height int) *surfacePair {
	s := &surfacePair{}
	s.resize(width, height)
	return s
}

func (s *surfacePair) resize(width, height int) {
	r := image.Rect(0, 0, width, height)
	s.screen = image.NewRGBA(r)
	s.backup = image.NewRGBA(r)
}

func (s *surfacePair) save() {
	copy(s.backup.Pix, s.screen.Pix)
}

func (s *surfacePair) restore() {
	copy(s.screen.Pix, s.backup.Pix)
}

// opaque premultiplies col onto black, the way the cursor is drawn.
func opaque(col Color) color.RGBA {
	return color.RGBA{
		R: uint8(clampUnit(col.R*col.A)*255 + 0.5),
		G: uint8(clampUnit(col.G*col.A)*255 + 0.5),
		B: uint8(clampUnit(col.B*col.A)*255 + 0.5),
		A: 255,
	}
}
