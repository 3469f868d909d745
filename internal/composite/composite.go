// Package composite implements the canvas compositing operators over
// premultiplied RGBA byte buffers.
//
// Every operator works on premultiplied alpha values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package composite

import "github.com/gogpu/gg-shape/surface"

// Func combines one source pixel with one destination pixel.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// For returns the operator for op. Unknown operations fall back to
// source-over.
func For(op surface.CompositeOp) Func {
	switch op {
	case surface.SourceIn:
		return sourceIn
	case surface.SourceOut:
		return sourceOut
	case surface.SourceAtop:
		return sourceAtop
	case surface.DestinationOver:
		return destinationOver
	case surface.DestinationIn:
		return destinationIn
	case surface.DestinationOut:
		return destinationOut
	case surface.DestinationAtop:
		return destinationAtop
	case surface.Lighter:
		return lighter
	case surface.Copy:
		return copySource
	case surface.Xor:
		return xor
	default:
		return sourceOver
	}
}

// Bounded reports whether op leaves the destination untouched wherever the
// source is fully transparent. Unbounded operators such as source-in and
// copy clear the destination outside the drawn shape, so they must be
// applied over the whole surface.
func Bounded(op surface.CompositeOp) bool {
	switch op {
	case surface.SourceIn, surface.SourceOut, surface.DestinationIn,
		surface.DestinationAtop, surface.Copy:
		return false
	}
	return true
}

// Apply composites src onto dst in place. Both are premultiplied RGBA
// buffers of the same length. If coverage is non-nil it holds one byte per
// pixel; the result is blended with the unchanged destination by it, so
// pixels with zero coverage keep their destination value. For bounded
// operators, pixels where src is fully transparent are skipped.
func Apply(dst, src []byte, op surface.CompositeOp, coverage []byte) {
	fn := For(op)
	bounded := Bounded(op)
	n := min(len(dst), len(src)) / 4
	for p := 0; p < n; p++ {
		i := 4 * p
		if bounded && src[i+3] == 0 {
			continue
		}
		c := byte(255)
		if coverage != nil {
			if p >= len(coverage) {
				return
			}
			c = coverage[p]
			if c == 0 {
				continue
			}
		}
		r, g, b, a := fn(src[i], src[i+1], src[i+2], src[i+3], dst[i], dst[i+1], dst[i+2], dst[i+3])
		if c != 255 {
			r = lerp(dst[i], r, c)
			g = lerp(dst[i+1], g, c)
			b = lerp(dst[i+2], b, c)
			a = lerp(dst[i+3], a, c)
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = r, g, b, a
	}
}

// sourceOver composites source over destination (default operation).
// Formula: S + D * (1 - Sa)
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// destinationOver composites destination over source.
// Formula: S * (1 - Da) + D
func destinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), dr),
		addClamp(mulDiv255(sg, invDa), dg),
		addClamp(mulDiv255(sb, invDa), db),
		addClamp(mulDiv255(sa, invDa), da)
}

// sourceIn keeps the source where the destination is opaque.
// Formula: S * Da
func sourceIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// destinationIn keeps the destination where the source is opaque.
// Formula: D * Sa
func destinationIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// sourceOut keeps the source where the destination is transparent.
// Formula: S * (1 - Da)
func sourceOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

// destinationOut keeps the destination where the source is transparent.
// Formula: D * (1 - Sa)
func destinationOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// sourceAtop draws the source only over existing content.
// Formula: S * Da + D * (1 - Sa), alpha Da
func sourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

// destinationAtop keeps the destination only inside the source.
// Formula: S * (1 - Da) + D * Sa, alpha Sa
func destinationAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, sa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, sa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, sa)),
		sa
}

// xor keeps source and destination where they do not overlap.
// Formula: S * (1 - Da) + D * (1 - Sa)
func xor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// lighter adds source and destination.
// Formula: min(S + D, 255)
func lighter(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

// copySource replaces the destination with the source.
func copySource(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// mulDiv255 multiplies two byte values and divides by 255 with rounding.
// Formula: (a * b + 127) / 255
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two byte values with clamping to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// lerp moves from d towards v by t/255.
func lerp(d, v, t byte) byte {
	return addClamp(mulDiv255(d, 255-t), mulDiv255(v, t))
}
