package gal

import (
	"bytes"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// drawScene issues a fixed mix of state changes, transforms and primitives.
func drawScene(c *Context) {
	c.SetIsFill(true)
	c.SetIsStroke(true)
	c.SetFillColor(PureRed)
	c.SetStrokeColor(PureGreen)
	c.SetLineWidth(2)
	c.DrawRectangle(gg.Pt(4, 4), gg.Pt(30, 24))
	c.DrawCircle(gg.Pt(48, 16), 10)

	c.Save()
	c.Translate(gg.Pt(8, 40))
	c.Rotate(0.3)
	c.DrawSegment(gg.Pt(0, 0), gg.Pt(30, 0), 6)
	c.Restore()

	c.SetIsFill(false)
	c.SetLineWidth(1)
	c.DrawArcSegment(gg.Pt(40, 48), 10, 0, math.Pi, 4)
	c.DrawPolygon([]gg.Point{{X: 2, Y: 60}, {X: 20, Y: 50}, {X: 30, Y: 62}})
	c.DrawCurve(gg.Pt(34, 60), gg.Pt(40, 40), gg.Pt(50, 70), gg.Pt(62, 56))
}

func TestGroupReplayFidelity(t *testing.T) {
	direct := newScreenContext(64, 64)
	direct.BeginDrawing()
	drawScene(direct)
	direct.EndDrawing()

	cached := newScreenContext(64, 64)
	h := cached.BeginGroup()
	drawScene(cached)
	cached.EndGroup()

	cached.BeginDrawing()
	cached.DrawGroup(h)
	cached.EndDrawing()

	if !bytes.Equal(direct.Image().Pix, cached.Image().Pix) {
		t.Error("replayed group differs from direct drawing")
	}
}

func TestGroupSurvivesZoom(t *testing.T) {
	direct := New(64, 64, WithZoomFactor(2), WithLookAt(gg.Pt(16, 16)))
	direct.BeginDrawing()
	drawScene(direct)
	direct.EndDrawing()

	cached := New(64, 64, WithLookAt(gg.Pt(32, 32)))
	h := cached.BeginGroup()
	drawScene(cached)
	cached.EndGroup()

	cached.SetZoomFactor(2)
	cached.SetLookAtPoint(gg.Pt(16, 16))
	cached.BeginDrawing()
	cached.DrawGroup(h)
	cached.EndDrawing()

	if !bytes.Equal(direct.Image().Pix, cached.Image().Pix) {
		t.Error("group replayed after zoom differs from direct drawing")
	}
}

func TestGroupRecordsCommands(t *testing.T) {
	ctx := newScreenContext(32, 32)
	h := ctx.BeginGroup()
	ctx.SetIsFill(true)
	ctx.SetIsStroke(false)
	ctx.DrawRectangle(gg.Pt(1, 1), gg.Pt(5, 5))
	ctx.SetFillColor(PureBlue)
	ctx.SetIsStroke(true)
	ctx.DrawLine(gg.Pt(0, 0), gg.Pt(5, 5))
	ctx.Translate(gg.Pt(1, 2))
	ctx.EndGroup()

	want := []CommandType{
		CmdSetFill, CmdSetStroke, CmdFillPath,
		CmdSetFillColor, CmdSetStroke,
		CmdFillPath, CmdStrokePath, CmdTranslate,
	}
	got := ctx.GroupCommands(h)
	if len(got) != len(want) {
		t.Fatalf("len(GroupCommands) = %d, want %d: %v", len(got), len(want), got)
	}
	for i, cmd := range got {
		if cmd.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmd.Type(), want[i])
		}
	}

	// The user transform is only recorded while grouping.
	if !ctx.UserMatrix().IsIdentity() {
		t.Errorf("UserMatrix() = %v, want identity", ctx.UserMatrix())
	}
}

func TestGroupSolidSegmentPaintsWithFillColor(t *testing.T) {
	ctx := newScreenContext(32, 32)
	h := ctx.BeginGroup()
	ctx.SetIsFill(true)
	ctx.DrawSegment(gg.Pt(0, 0), gg.Pt(10, 0), 3)
	ctx.EndGroup()

	cmds := ctx.GroupCommands(h)
	last, ok := cmds[len(cmds)-1].(StrokePathCommand)
	if !ok || last.Paint != PaintFill {
		t.Errorf("last command = %#v, want fill-painted StrokePath", cmds[len(cmds)-1])
	}
	if w, ok := cmds[len(cmds)-2].(SetLineWidthCommand); !ok || w.Width != 3 {
		t.Errorf("width command = %#v, want SetLineWidth(3)", cmds[len(cmds)-2])
	}
}

func TestChangeGroupColor(t *testing.T) {
	ctx := newScreenContext(64, 64)
	h := ctx.BeginGroup()
	ctx.SetIsFill(true)
	ctx.SetIsStroke(false)
	ctx.SetFillColor(PureRed)
	ctx.DrawRectangle(gg.Pt(10, 10), gg.Pt(30, 30))
	ctx.EndGroup()

	before := ctx.GroupCommands(h)
	ctx.ChangeGroupColor(h, PureBlue)
	after := ctx.GroupCommands(h)

	if len(before) != len(after) {
		t.Fatalf("command count changed: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if fp, ok := after[i].(FillPathCommand); ok && fp.Path != before[i].(FillPathCommand).Path {
			t.Errorf("command %d geometry replaced", i)
		}
	}

	ctx.BeginDrawing()
	ctx.DrawGroup(h)
	ctx.EndDrawing()

	assertPixel(t, ctx, 20, 20, rgbaBlue)
	assertPixel(t, ctx, 40, 40, rgbaBlack)
}

func TestDeleteGroup(t *testing.T) {
	ctx := newScreenContext(32, 32)
	h := ctx.BeginGroup()
	ctx.DrawCircle(gg.Pt(5, 5), 3)
	ctx.EndGroup()

	ctx.DeleteGroup(h)
	if ctx.GroupCount() != 0 {
		t.Errorf("GroupCount() = %d, want 0", ctx.GroupCount())
	}

	ctx.BeginDrawing()
	expectPanic(t, ErrUnknownGroup, func() { ctx.DrawGroup(h) })
	ctx.EndDrawing()

	expectPanic(t, ErrUnknownGroup, func() { ctx.ChangeGroupColor(h, Red) })
	expectPanic(t, ErrUnknownGroup, func() { ctx.DeleteGroup(h) })
}

func TestGroupHandles(t *testing.T) {
	ctx := newScreenContext(16, 16)

	newGroup := func() int {
		h := ctx.BeginGroup()
		ctx.EndGroup()
		return h
	}

	a, b := newGroup(), newGroup()
	if a != 0 || b != 1 {
		t.Fatalf("handles = %d, %d, want 0, 1", a, b)
	}

	ctx.DeleteGroup(a)
	if c := newGroup(); c == b {
		t.Errorf("handle %d reused while live", c)
	}

	ctx.ClearCache()
	if ctx.GroupCount() != 0 {
		t.Errorf("GroupCount() after ClearCache = %d, want 0", ctx.GroupCount())
	}
	if h := newGroup(); h != 0 {
		t.Errorf("first handle after ClearCache = %d, want 0", h)
	}
}

func TestGroupSkipsLiveHandles(t *testing.T) {
	ctx := newScreenContext(16, 16)
	for range 3 {
		ctx.BeginGroup()
		ctx.EndGroup()
	}
	ctx.groupCounter = 1
	if h := ctx.BeginGroup(); h != 3 {
		t.Errorf("BeginGroup() = %d, want 3", h)
	}
	ctx.EndGroup()
}

func TestEndGroupWithoutBegin(t *testing.T) {
	ctx := newScreenContext(16, 16)
	expectPanic(t, ErrNotGrouping, ctx.EndGroup)
}

func TestDeleteGroupWhileRecording(t *testing.T) {
	ctx := newScreenContext(16, 16)
	h := ctx.BeginGroup()
	ctx.DrawCircle(gg.Pt(5, 5), 3)
	expectPanic(t, ErrGroupInUse, func() { ctx.DeleteGroup(h) })
	expectPanic(t, ErrGroupInUse, ctx.ClearCache)

	// Recording carries on into the same group.
	ctx.DrawCircle(gg.Pt(9, 9), 2)
	ctx.EndGroup()
	if n := len(ctx.GroupCommands(h)); n == 0 {
		t.Error("GroupCommands() is empty after a rejected delete")
	}
	ctx.DeleteGroup(h)
}

func TestGroupSelfCall(t *testing.T) {
	ctx := newScreenContext(16, 16)
	h := ctx.BeginGroup()
	expectPanic(t, ErrGroupRecursion, func() { ctx.DrawGroup(h) })
	ctx.EndGroup()
}

func TestGroupNestingDepth(t *testing.T) {
	ctx := newScreenContext(16, 16)

	prev := ctx.BeginGroup()
	ctx.EndGroup()
	for range MaxGroupDepth + 5 {
		h := ctx.BeginGroup()
		ctx.DrawGroup(prev)
		ctx.EndGroup()
		prev = h
	}

	ctx.BeginDrawing()
	expectPanic(t, ErrGroupRecursion, func() { ctx.DrawGroup(prev) })
	ctx.EndDrawing()
}

func TestNestedGroupReplay(t *testing.T) {
	ctx := newScreenContext(64, 64)
	inner := ctx.BeginGroup()
	ctx.SetIsFill(true)
	ctx.SetIsStroke(false)
	ctx.SetFillColor(PureGreen)
	ctx.DrawRectangle(gg.Pt(0, 0), gg.Pt(10, 10))
	ctx.EndGroup()

	outer := ctx.BeginGroup()
	ctx.Translate(gg.Pt(20, 20))
	ctx.DrawGroup(inner)
	ctx.EndGroup()

	ctx.BeginDrawing()
	ctx.DrawGroup(outer)
	ctx.EndDrawing()

	assertPixel(t, ctx, 25, 25, rgbaGreen)
	assertPixel(t, ctx, 5, 5, rgbaBlack)
}

func TestGroupText(t *testing.T) {
	ctx := newScreenContext(32, 32)
	h := ctx.BeginGroup()
	ctx.BitmapText("R1", gg.Pt(10, 10), 8)
	ctx.EndGroup()

	cmds := ctx.GroupCommands(h)
	if len(cmds) != 1 {
		t.Fatalf("len(GroupCommands) = %d, want 1", len(cmds))
	}
	if tc, ok := cmds[0].(TextCommand); !ok || tc.Text != "R1" || tc.Height != 8 {
		t.Errorf("command = %#v, want TextCommand R1", cmds[0])
	}
}

func TestChangeGroupDepthIsNoop(t *testing.T) {
	ctx := newScreenContext(16, 16)
	h := ctx.BeginGroup()
	ctx.SetFillColor(Red)
	ctx.EndGroup()

	before := ctx.GroupCommands(h)
	ctx.ChangeGroupDepth(h, 42)
	after := ctx.GroupCommands(h)
	if len(before) != len(after) || after[0] != before[0] {
		t.Errorf("ChangeGroupDepth modified the group: %v -> %v", before, after)
	}
}
