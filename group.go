package gal

import (
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// MaxGroupDepth bounds nested CallGroup replay.
const MaxGroupDepth = 64

const maxGroups = math.MaxInt32

// Group is a recorded display list. Its paths are kept in user coordinates
// and mapped through the live transform on every replay, so a group stays
// valid across zoom and pan.
type Group struct {
	commands []Command
}

// Commands returns the recorded commands.
func (g *Group) Commands() []Command {
	return g.commands
}

// BeginGroup starts recording a new group and returns its handle. Until
// EndGroup, primitives and state changes are recorded instead of drawn.
func (c *Context) BeginGroup() int {
	c.flush()
	if !c.initialized {
		c.initSurface()
		c.groupInit = true
	}

	h := c.newGroupHandle()
	g := &Group{}
	c.groups[h] = g
	c.current = g
	c.grouping = true

	Logger().Debug("gal: begin group", "group", h)
	return h
}

// EndGroup finishes the group being recorded.
func (c *Context) EndGroup() {
	if !c.grouping {
		precondition(ErrNotGrouping, "EndGroup without BeginGroup")
	}
	c.flush()
	c.grouping = false
	c.current = nil

	if c.groupInit {
		c.groupInit = false
		c.deinitSurface()
	}
	Logger().Debug("gal: end group")
}

// IsGrouping reports whether a group is being recorded.
func (c *Context) IsGrouping() bool {
	return c.grouping
}

// DrawGroup replays a group against the live state. While another group is
// being recorded, a call to the group is recorded instead.
func (c *Context) DrawGroup(handle int) {
	g := c.group(handle)
	c.flush()

	if c.grouping {
		if g == c.current {
			precondition(ErrGroupRecursion, "group %d calls itself", handle)
		}
		c.record(CallGroupCommand{Group: handle})
		return
	}
	if !c.initialized {
		precondition(ErrNotInitialized, "DrawGroup outside BeginDrawing")
	}
	c.replay(g, 0)
}

func (c *Context) replay(g *Group, depth int) {
	if depth >= MaxGroupDepth {
		precondition(ErrGroupRecursion, "depth %d", depth)
	}

	for _, cmd := range g.commands {
		switch cmd := cmd.(type) {
		case SetFillCommand:
			c.isFill = cmd.Enabled
		case SetStrokeCommand:
			c.isStroke = cmd.Enabled
		case SetFillColorCommand:
			c.fillColor = cmd.Color
		case SetStrokeColorCommand:
			c.strokeColor = cmd.Color
		case SetLineWidthCommand:
			c.lineWidth = cmd.Width
		case FillPathCommand:
			c.fillPath(cmd.Path, c.fillColor)
		case StrokePathCommand:
			col := c.strokeColor
			if cmd.Paint == PaintFill {
				col = c.fillColor
			}
			c.strokePath(cmd.Path, col)
		case TextCommand:
			c.drawText(cmd.Text, cmd.Position, cmd.Height)
		case RotateCommand:
			c.user = c.user.Multiply(gg.Rotate(cmd.Angle))
		case TranslateCommand:
			c.user = c.user.Multiply(gg.Translate(cmd.Offset.X, cmd.Offset.Y))
		case ScaleCommand:
			c.user = c.user.Multiply(gg.Scale(cmd.Factor.X, cmd.Factor.Y))
		case TransformCommand:
			c.user = c.user.Multiply(cmd.Matrix)
		case SaveCommand:
			c.stack = append(c.stack, c.user)
		case RestoreCommand:
			c.popUser()
		case CallGroupCommand:
			c.replay(c.group(cmd.Group), depth+1)
		}
	}
}

// ChangeGroupColor replaces the operand of every fill and stroke color
// command of the group. Geometry is untouched.
func (c *Context) ChangeGroupColor(handle int, col Color) {
	g := c.group(handle)
	for i, cmd := range g.commands {
		switch cmd.(type) {
		case SetFillColorCommand:
			g.commands[i] = SetFillColorCommand{Color: col}
		case SetStrokeColorCommand:
			g.commands[i] = SetStrokeColorCommand{Color: col}
		}
	}
}

// ChangeGroupDepth does nothing: replay paints in call order and a display
// list has no depth of its own.
func (c *Context) ChangeGroupDepth(handle int, depth float64) {}

// DeleteGroup releases a group. Its handle may be returned again by a later
// BeginGroup. The group being recorded cannot be deleted.
func (c *Context) DeleteGroup(handle int) {
	g := c.group(handle)
	if c.current == g {
		precondition(ErrGroupInUse, "delete group %d while recording it", handle)
	}
	for _, cmd := range g.commands {
		switch cmd := cmd.(type) {
		case FillPathCommand:
			cmd.Path.Clear()
		case StrokePathCommand:
			cmd.Path.Clear()
		}
	}
	g.commands = nil
	delete(c.groups, handle)
	Logger().Debug("gal: delete group", "group", handle)
}

// ClearCache deletes every group and restarts handle allocation.
func (c *Context) ClearCache() {
	if c.grouping {
		precondition(ErrGroupInUse, "ClearCache while recording a group")
	}
	for _, h := range c.GroupHandles() {
		c.DeleteGroup(h)
	}
	c.groupCounter = 0
}

// GroupCount returns the number of live groups.
func (c *Context) GroupCount() int {
	return len(c.groups)
}

// GroupHandles returns the live handles in increasing order.
func (c *Context) GroupHandles() []int {
	hs := make([]int, 0, len(c.groups))
	for h := range c.groups {
		hs = append(hs, h)
	}
	slices.Sort(hs)
	return hs
}

// GroupCommands returns a copy of a group's command list.
func (c *Context) GroupCommands(handle int) []Command {
	return slices.Clone(c.group(handle).commands)
}

func (c *Context) group(handle int) *Group {
	g, ok := c.groups[handle]
	if !ok {
		precondition(ErrUnknownGroup, "handle %d", handle)
	}
	return g
}

// newGroupHandle returns the first free handle at or after the counter.
func (c *Context) newGroupHandle() int {
	if len(c.groups) >= maxGroups {
		precondition(ErrNoFreeGroup, "%d groups", len(c.groups))
	}
	for {
		if _, used := c.groups[c.groupCounter]; !used {
			break
		}
		c.groupCounter++
		if c.groupCounter >= maxGroups {
			c.groupCounter = 0
		}
	}
	h := c.groupCounter
	c.groupCounter++
	return h
}
