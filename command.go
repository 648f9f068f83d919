package gal

import "github.com/gogpu/gg"

// CommandType identifies a recorded group command.
type CommandType uint8

const (
	// State commands
	CmdSetFill        CommandType = iota // Enable or disable filling
	CmdSetStroke                         // Enable or disable stroking
	CmdSetFillColor                      // Set fill color
	CmdSetStrokeColor                    // Set stroke color
	CmdSetLineWidth                      // Set line width in user units

	// Geometry commands
	CmdStrokePath // Stroke a recorded path
	CmdFillPath   // Fill a recorded path
	CmdText       // Draw a bitmap text label

	// Transform commands
	CmdRotate    // Rotate the user transform
	CmdTranslate // Translate the user transform
	CmdScale     // Scale the user transform
	CmdTransform // Multiply the user transform
	CmdSave      // Push the user transform
	CmdRestore   // Pop the user transform

	// Nesting
	CmdCallGroup // Replay another group
)

var commandTypeNames = [...]string{
	CmdSetFill:        "SetFill",
	CmdSetStroke:      "SetStroke",
	CmdSetFillColor:   "SetFillColor",
	CmdSetStrokeColor: "SetStrokeColor",
	CmdSetLineWidth:   "SetLineWidth",
	CmdStrokePath:     "StrokePath",
	CmdFillPath:       "FillPath",
	CmdText:           "Text",
	CmdRotate:         "Rotate",
	CmdTranslate:      "Translate",
	CmdScale:          "Scale",
	CmdTransform:      "Transform",
	CmdSave:           "Save",
	CmdRestore:        "Restore",
	CmdCallGroup:      "CallGroup",
}

// String returns the name of the command type.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one entry of a group's display list. The set of commands is
// closed; each carries only the operands needed to replay it.
type Command interface {
	Type() CommandType
}

// PaintSource selects which current color paints a stroked path.
type PaintSource uint8

const (
	// PaintStroke paints with the stroke color.
	PaintStroke PaintSource = iota
	// PaintFill paints with the fill color. Thick segments and arcs in
	// filled mode are strokes painted this way.
	PaintFill
)

// SetFillCommand toggles filling.
type SetFillCommand struct {
	Enabled bool
}

// Type implements Command.
func (SetFillCommand) Type() CommandType { return CmdSetFill }

// SetStrokeCommand toggles stroking.
type SetStrokeCommand struct {
	Enabled bool
}

// Type implements Command.
func (SetStrokeCommand) Type() CommandType { return CmdSetStroke }

// SetFillColorCommand sets the fill color. Its operand is rewritten by
// ChangeGroupColor.
type SetFillColorCommand struct {
	Color Color
}

// Type implements Command.
func (SetFillColorCommand) Type() CommandType { return CmdSetFillColor }

// SetStrokeColorCommand sets the stroke color. Its operand is rewritten by
// ChangeGroupColor.
type SetStrokeColorCommand struct {
	Color Color
}

// Type implements Command.
func (SetStrokeColorCommand) Type() CommandType { return CmdSetStrokeColor }

// SetLineWidthCommand sets the line width. The one pixel floor is applied
// when the width is used, under the transform live at that moment.
type SetLineWidthCommand struct {
	Width float64
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// StrokePathCommand strokes a path captured in user space.
type StrokePathCommand struct {
	Path  *gg.Path
	Paint PaintSource
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// FillPathCommand fills a path captured in user space with the fill color.
type FillPathCommand struct {
	Path *gg.Path
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// TextCommand draws a centred label in the stroke color.
type TextCommand struct {
	Text     string
	Position gg.Point
	Height   float64
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

// RotateCommand rotates the user transform by Angle radians.
type RotateCommand struct {
	Angle float64
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// TranslateCommand translates the user transform.
type TranslateCommand struct {
	Offset gg.Point
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// ScaleCommand scales the user transform.
type ScaleCommand struct {
	Factor gg.Point
}

// Type implements Command.
func (ScaleCommand) Type() CommandType { return CmdScale }

// TransformCommand multiplies the user transform by Matrix.
type TransformCommand struct {
	Matrix gg.Matrix
}

// Type implements Command.
func (TransformCommand) Type() CommandType { return CmdTransform }

// SaveCommand pushes the user transform.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand pops the user transform.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// CallGroupCommand replays another group in place.
type CallGroupCommand struct {
	Group int
}

// Type implements Command.
func (CallGroupCommand) Type() CommandType { return CmdCallGroup }
