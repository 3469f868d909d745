package recording

import (
	"fmt"
	"image"

	"github.com/gogpu/gg-shape/surface"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one surface call.
type CommandType uint8

const (
	// Path commands
	CmdBeginPath        CommandType = iota // Discard the current path
	CmdClosePath                           // Close the current subpath
	CmdMoveTo                              // Start a subpath
	CmdLineTo                              // Straight segment
	CmdArc                                 // Center-radius arc
	CmdArcTo                               // Tangent arc
	CmdQuadraticCurveTo                    // Quadratic Bézier
	CmdBezierCurveTo                       // Cubic Bézier
	CmdRect                                // Rectangle subpath

	// Painting commands
	CmdSetStyle // Replace the paint state
	CmdFill     // Fill the current path
	CmdStroke   // Stroke the current path
	CmdClip     // Intersect the clip with the current path

	// Transform commands
	CmdTranslate
	CmdRotate
	CmdScale

	// Pixel and content commands
	CmdPutImageData
	CmdReset
	CmdFillText
	CmdStrokeText
	CmdDrawImage
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginPath:        "BeginPath",
	CmdClosePath:        "ClosePath",
	CmdMoveTo:           "MoveTo",
	CmdLineTo:           "LineTo",
	CmdArc:              "Arc",
	CmdArcTo:            "ArcTo",
	CmdQuadraticCurveTo: "QuadraticCurveTo",
	CmdBezierCurveTo:    "BezierCurveTo",
	CmdRect:             "Rect",
	CmdSetStyle:         "SetStyle",
	CmdFill:             "Fill",
	CmdStroke:           "Stroke",
	CmdClip:             "Clip",
	CmdTranslate:        "Translate",
	CmdRotate:           "Rotate",
	CmdScale:            "Scale",
	CmdPutImageData:     "PutImageData",
	CmdReset:            "Reset",
	CmdFillText:         "FillText",
	CmdStrokeText:       "StrokeText",
	CmdDrawImage:        "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Format renders a command as its type followed by its fields, e.g.
// "MoveTo {X:10 Y:20}".
func Format(c Command) string {
	return fmt.Sprintf("%s %+v", c.Type(), c)
}

// Filter returns the commands of concrete type T in recording order.
func Filter[T Command](cmds []Command) []T {
	var out []T
	for _, c := range cmds {
		if t, ok := c.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// StyleRef is a reference to a style in the resource pool.
type StyleRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// PixelsRef is a reference to a pixel block in the resource pool.
type PixelsRef uint32

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPathCommand discards the current path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// MoveToCommand starts a new subpath.
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a straight segment.
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// ArcCommand adds a center-radius arc.
type ArcCommand struct {
	CX, CY, R     float64
	Start, End    float64
	Anticlockwise bool
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// ArcToCommand adds a tangent arc.
type ArcToCommand struct {
	X1, Y1, X2, Y2 float64
	R              float64
}

// Type implements Command.
func (ArcToCommand) Type() CommandType { return CmdArcTo }

// QuadraticCurveToCommand adds a quadratic Bézier.
type QuadraticCurveToCommand struct {
	CX, CY, X, Y float64
}

// Type implements Command.
func (QuadraticCurveToCommand) Type() CommandType { return CmdQuadraticCurveTo }

// BezierCurveToCommand adds a cubic Bézier.
type BezierCurveToCommand struct {
	C1X, C1Y, C2X, C2Y, X, Y float64
}

// Type implements Command.
func (BezierCurveToCommand) Type() CommandType { return CmdBezierCurveTo }

// RectCommand adds a closed rectangle subpath.
type RectCommand struct {
	X, Y, W, H float64
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// --------------------------------------------------------------------------
// Painting Commands
// --------------------------------------------------------------------------

// SetStyleCommand replaces the paint state.
type SetStyleCommand struct {
	// Style references the style in the resource pool.
	Style StyleRef
}

// Type implements Command.
func (SetStyleCommand) Type() CommandType { return CmdSetStyle }

// FillCommand fills the current path.
type FillCommand struct{}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// ClipCommand intersects the clip region with the current path.
type ClipCommand struct{}

// Type implements Command.
func (ClipCommand) Type() CommandType { return CmdClip }

// --------------------------------------------------------------------------
// Transform Commands
// --------------------------------------------------------------------------

// TranslateCommand moves the coordinate origin.
type TranslateCommand struct {
	X, Y float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// RotateCommand rotates the coordinate frame.
type RotateCommand struct {
	// Angle is in radians.
	Angle float64
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// ScaleCommand scales the coordinate frame.
type ScaleCommand struct {
	X, Y float64
}

// Type implements Command.
func (ScaleCommand) Type() CommandType { return CmdScale }

// --------------------------------------------------------------------------
// Pixel and Content Commands
// --------------------------------------------------------------------------

// PutImageDataCommand writes a block of pixels.
type PutImageDataCommand struct {
	Pixels        PixelsRef
	Width, Height int
	DX, DY        int
}

// Type implements Command.
func (PutImageDataCommand) Type() CommandType { return CmdPutImageData }

// ResetCommand clears the surface.
type ResetCommand struct{}

// Type implements Command.
func (ResetCommand) Type() CommandType { return CmdReset }

// FillTextCommand paints text with the fill paint.
type FillTextCommand struct {
	Text  string
	X, Y  float64
	Attrs surface.TextAttrs
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }

// StrokeTextCommand outlines text with the stroke paint.
type StrokeTextCommand struct {
	Text  string
	X, Y  float64
	Attrs surface.TextAttrs
}

// Type implements Command.
func (StrokeTextCommand) Type() CommandType { return CmdStrokeText }

// DrawImageCommand draws a sub-rectangle of an image.
type DrawImageCommand struct {
	// Image references the image in the resource pool.
	Image ImageRef
	// Src is the source rectangle in image coordinates.
	// If empty, uses the entire image.
	Src image.Rectangle
	// Dst is the destination rectangle in user space.
	Dst surface.Rect
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
