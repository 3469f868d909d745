package recording

import (
	"errors"
	"fmt"
	"image"
	"math"
	"unicode/utf8"

	"github.com/gogpu/gg-shape/surface"
)

// Recorder captures surface calls as commands.
// Use FinishRecording to obtain an immutable Recording that can be replayed
// onto another surface.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	style  surface.Style
	pixels []byte

	// failure, when set, is returned by every Fill, Stroke and text call.
	failure error
}

var (
	_ surface.TextSurface  = (*Recorder)(nil)
	_ surface.ImageSurface = (*Recorder)(nil)
)

// NewRecorder creates a new Recorder for the given dimensions with the
// default style and a transparent pixel buffer.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
		style:     surface.DefaultStyle(),
		pixels:    newPixels(width, height),
	}
}

func newPixels(w, h int) []byte {
	n, ok := surface.PixelBytes(w, h)
	if !ok {
		return nil
	}
	return make([]byte, n)
}

func init() {
	surface.Register("recording", 0, func(o surface.Options) (surface.Surface, error) {
		return NewRecorder(o.Width, o.Height), nil
	})
}

// FinishRecording returns an immutable Recording containing all recorded commands.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  append([]Command(nil), r.commands...),
		resources: r.resources,
	}
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Types returns the type of every recorded command in order.
func (r *Recorder) Types() []CommandType {
	out := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		out[i] = c.Type()
	}
	return out
}

// Clear drops the recorded commands. Pixels and style are kept.
func (r *Recorder) Clear() {
	r.commands = r.commands[:0]
}

// Resources returns the resource pool.
func (r *Recorder) Resources() *ResourcePool {
	return r.resources
}

// Style returns the style set by the most recent SetStyle call.
func (r *Recorder) Style() surface.Style {
	return r.style.Clone()
}

// FailWith makes subsequent Fill, Stroke, FillText, StrokeText and DrawImage
// calls return err after recording. A nil err restores normal behaviour.
func (r *Recorder) FailWith(err error) {
	r.failure = err
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int { return r.height }

// BeginPath implements surface.Surface.
func (r *Recorder) BeginPath() { r.record(BeginPathCommand{}) }

// ClosePath implements surface.Surface.
func (r *Recorder) ClosePath() { r.record(ClosePathCommand{}) }

// MoveTo implements surface.Surface.
func (r *Recorder) MoveTo(x, y float64) { r.record(MoveToCommand{X: x, Y: y}) }

// LineTo implements surface.Surface.
func (r *Recorder) LineTo(x, y float64) { r.record(LineToCommand{X: x, Y: y}) }

// Arc implements surface.Surface.
func (r *Recorder) Arc(cx, cy, radius, start, end float64, anticlockwise bool) {
	r.record(ArcCommand{CX: cx, CY: cy, R: radius, Start: start, End: end, Anticlockwise: anticlockwise})
}

// ArcTo implements surface.Surface.
func (r *Recorder) ArcTo(x1, y1, x2, y2, radius float64) {
	r.record(ArcToCommand{X1: x1, Y1: y1, X2: x2, Y2: y2, R: radius})
}

// QuadraticCurveTo implements surface.Surface.
func (r *Recorder) QuadraticCurveTo(cx, cy, x, y float64) {
	r.record(QuadraticCurveToCommand{CX: cx, CY: cy, X: x, Y: y})
}

// BezierCurveTo implements surface.Surface.
func (r *Recorder) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.record(BezierCurveToCommand{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y})
}

// Rect implements surface.Surface.
func (r *Recorder) Rect(x, y, w, h float64) { r.record(RectCommand{X: x, Y: y, W: w, H: h}) }

// SetStyle implements surface.Surface.
func (r *Recorder) SetStyle(st surface.Style) {
	r.style = st.Clone()
	r.record(SetStyleCommand{Style: r.resources.AddStyle(st)})
}

// Fill implements surface.Surface.
func (r *Recorder) Fill() error {
	r.record(FillCommand{})
	return r.failure
}

// Stroke implements surface.Surface.
func (r *Recorder) Stroke() error {
	r.record(StrokeCommand{})
	return r.failure
}

// Clip implements surface.Surface.
func (r *Recorder) Clip() { r.record(ClipCommand{}) }

// Translate implements surface.Surface.
func (r *Recorder) Translate(x, y float64) { r.record(TranslateCommand{X: x, Y: y}) }

// Rotate implements surface.Surface.
func (r *Recorder) Rotate(angle float64) { r.record(RotateCommand{Angle: angle}) }

// Scale implements surface.Surface.
func (r *Recorder) Scale(x, y float64) { r.record(ScaleCommand{X: x, Y: y}) }

// ImageData implements surface.Surface. Reads are not recorded.
func (r *Recorder) ImageData(rect image.Rectangle) []byte {
	rect = rect.Canon()
	n, ok := surface.PixelBytes(rect.Dx(), rect.Dy())
	if !ok {
		return nil
	}
	out := make([]byte, n)
	if r.pixels == nil {
		return out
	}
	in := rect.Intersect(image.Rect(0, 0, r.width, r.height))
	rowLen := 4 * in.Dx()
	for y := in.Min.Y; y < in.Max.Y; y++ {
		src := 4 * (y*r.width + in.Min.X)
		dst := 4 * ((y-rect.Min.Y)*rect.Dx() + (in.Min.X - rect.Min.X))
		copy(out[dst:dst+rowLen], r.pixels[src:src+rowLen])
	}
	return out
}

// PutImageData implements surface.Surface.
func (r *Recorder) PutImageData(pix []byte, width, height, dx, dy int) {
	r.record(PutImageDataCommand{
		Pixels: r.resources.AddPixels(pix),
		Width:  width, Height: height,
		DX: dx, DY: dy,
	})
	n, ok := surface.PixelBytes(width, height)
	if !ok || len(pix) < n || r.pixels == nil {
		return
	}
	if dx > math.MaxInt-width || dy > math.MaxInt-height {
		return
	}
	target := image.Rect(dx, dy, dx+width, dy+height).Intersect(image.Rect(0, 0, r.width, r.height))
	rowLen := 4 * target.Dx()
	for y := target.Min.Y; y < target.Max.Y; y++ {
		src := 4 * ((y-dy)*width + (target.Min.X - dx))
		dst := 4 * (y*r.width + target.Min.X)
		copy(r.pixels[dst:dst+rowLen], pix[src:src+rowLen])
	}
}

// Reset implements surface.Surface.
func (r *Recorder) Reset() {
	r.record(ResetCommand{})
	clear(r.pixels)
}

// FillText implements surface.TextSurface.
func (r *Recorder) FillText(s string, x, y float64, attrs surface.TextAttrs) error {
	r.record(FillTextCommand{Text: s, X: x, Y: y, Attrs: attrs})
	return r.failure
}

// StrokeText implements surface.TextSurface.
func (r *Recorder) StrokeText(s string, x, y float64, attrs surface.TextAttrs) error {
	r.record(StrokeTextCommand{Text: s, X: x, Y: y, Attrs: attrs})
	return r.failure
}

// MeasureText implements surface.TextSurface with a fixed advance of half
// the em size per rune, so measurements are deterministic without fonts.
func (r *Recorder) MeasureText(s string, font surface.Font) (surface.TextMetrics, error) {
	f := font.Normalized()
	return surface.TextMetrics{
		Width:  float64(utf8.RuneCountInString(s)) * f.Size / 2,
		Height: f.Size,
	}, nil
}

// DrawImage implements surface.ImageSurface.
func (r *Recorder) DrawImage(img image.Image, src image.Rectangle, dst surface.Rect) error {
	r.record(DrawImageCommand{Image: r.resources.AddImage(img), Src: src, Dst: dst})
	return r.failure
}

// Recording is an immutable container for recorded commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// ErrUnsupported is returned by Playback when the destination lacks an
// optional capability a command needs.
var ErrUnsupported = errors.New("recording: destination does not support command")

// Playback replays the recording onto dst. Errors returned by dst are
// collected and replay continues; the joined error is returned.
func (r *Recording) Playback(dst surface.Surface) error {
	var errs []error
	for i, cmd := range r.commands {
		if err := r.apply(dst, cmd); err != nil {
			errs = append(errs, fmt.Errorf("command %d (%s): %w", i, cmd.Type(), err))
		}
	}
	return errors.Join(errs...)
}

func (r *Recording) apply(dst surface.Surface, cmd Command) error {
	switch c := cmd.(type) {
	case BeginPathCommand:
		dst.BeginPath()
	case ClosePathCommand:
		dst.ClosePath()
	case MoveToCommand:
		dst.MoveTo(c.X, c.Y)
	case LineToCommand:
		dst.LineTo(c.X, c.Y)
	case ArcCommand:
		dst.Arc(c.CX, c.CY, c.R, c.Start, c.End, c.Anticlockwise)
	case ArcToCommand:
		dst.ArcTo(c.X1, c.Y1, c.X2, c.Y2, c.R)
	case QuadraticCurveToCommand:
		dst.QuadraticCurveTo(c.CX, c.CY, c.X, c.Y)
	case BezierCurveToCommand:
		dst.BezierCurveTo(c.C1X, c.C1Y, c.C2X, c.C2Y, c.X, c.Y)
	case RectCommand:
		dst.Rect(c.X, c.Y, c.W, c.H)
	case SetStyleCommand:
		st, ok := r.resources.Style(c.Style)
		if !ok {
			return fmt.Errorf("recording: unknown style ref %d", c.Style)
		}
		dst.SetStyle(st)
	case FillCommand:
		return dst.Fill()
	case StrokeCommand:
		return dst.Stroke()
	case ClipCommand:
		dst.Clip()
	case TranslateCommand:
		dst.Translate(c.X, c.Y)
	case RotateCommand:
		dst.Rotate(c.Angle)
	case ScaleCommand:
		dst.Scale(c.X, c.Y)
	case PutImageDataCommand:
		dst.PutImageData(r.resources.Pixels(c.Pixels), c.Width, c.Height, c.DX, c.DY)
	case ResetCommand:
		dst.Reset()
	case FillTextCommand:
		ts, ok := dst.(surface.TextSurface)
		if !ok {
			return ErrUnsupported
		}
		return ts.FillText(c.Text, c.X, c.Y, c.Attrs)
	case StrokeTextCommand:
		ts, ok := dst.(surface.TextSurface)
		if !ok {
			return ErrUnsupported
		}
		return ts.StrokeText(c.Text, c.X, c.Y, c.Attrs)
	case DrawImageCommand:
		is, ok := dst.(surface.ImageSurface)
		if !ok {
			return ErrUnsupported
		}
		return is.DrawImage(r.resources.Image(c.Image), c.Src, c.Dst)
	}
	return nil
}
