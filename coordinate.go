package shape

import "github.com/gogpu/gg-shape/geom"

// Bounds is the on-screen placement of the surface: its top-left corner in
// window coordinates and its displayed size, which may differ from the
// surface's pixel size when the surface is scaled for display.
type Bounds struct {
	Left, Top     float64
	Width, Height float64
}

// Coordinate maps between window and surface coordinates and transforms
// the surface's coordinate frame.
type Coordinate struct {
	s *Session
}

// WindowToCanvas converts a window position to surface pixels given where
// the surface is displayed.
func (c Coordinate) WindowToCanvas(x, y float64, b Bounds) (float64, float64, error) {
	const op = "coordinate.WindowToCanvas"
	if err := checkNumeric(op, "point", x, y, b.Left, b.Top); err != nil {
		return 0, 0, err
	}
	if err := checkPositive(op, "bounds", b.Width, b.Height); err != nil {
		return 0, 0, err
	}
	sx := float64(c.s.surf.Width()) / b.Width
	sy := float64(c.s.surf.Height()) / b.Height
	return (x - b.Left) * sx, (y - b.Top) * sy, nil
}

// Rotate rotates the coordinate frame by degrees, clockwise on screen.
func (c Coordinate) Rotate(degrees float64) error {
	if err := checkNumeric("coordinate.Rotate", "degrees", degrees); err != nil {
		return err
	}
	c.s.surf.Rotate(geom.Radians(degrees))
	return nil
}

// Translate moves the origin of the coordinate frame to (x, y).
func (c Coordinate) Translate(x, y float64) error {
	if err := checkNumeric("coordinate.Translate", "point", x, y); err != nil {
		return err
	}
	c.s.surf.Translate(x, y)
	return nil
}

// Scale scales the coordinate frame.
func (c Coordinate) Scale(x, y float64) error {
	if err := checkNumeric("coordinate.Scale", "factor", x, y); err != nil {
		return err
	}
	c.s.surf.Scale(x, y)
	return nil
}
