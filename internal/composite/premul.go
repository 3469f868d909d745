package composite

// Premultiply converts straight RGBA bytes to premultiplied alpha in place.
func Premultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := pix[i+3]
		if a == 255 {
			continue
		}
		pix[i] = mulDiv255(pix[i], a)
		pix[i+1] = mulDiv255(pix[i+1], a)
		pix[i+2] = mulDiv255(pix[i+2], a)
	}
}

// Unpremultiply converts premultiplied RGBA bytes to straight alpha in
// place. Fully transparent pixels become transparent black.
func Unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint16(pix[i+3])
		switch a {
		case 255:
			continue
		case 0:
			pix[i], pix[i+1], pix[i+2] = 0, 0, 0
			continue
		}
		pix[i] = unmul(pix[i], a)
		pix[i+1] = unmul(pix[i+1], a)
		pix[i+2] = unmul(pix[i+2], a)
	}
}

func unmul(c byte, a uint16) byte {
	v := (uint16(c)*255 + a/2) / a
	if v > 255 {
		return 255
	}
	return byte(v)
}
