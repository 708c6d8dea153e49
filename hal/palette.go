package hal

import "image/color"

// Palette maps an 8-bit colour index to RGBA.
type Palette [256]color.RGBA

// DefaultPalette returns the power-on VGA DAC palette: the 16 EGA colours,
// a 6x6x6 colour cube and a 24 step grey ramp.
func DefaultPalette() Palette {
	var dac [256][3]uint8

	ega := [16][3]uint8{
		{0, 0, 0}, {0, 0, 42}, {0, 42, 0}, {0, 42, 42},
		{42, 0, 0}, {42, 0, 42}, {42, 21, 0}, {42, 42, 42},
		{21, 21, 21}, {21, 21, 63}, {21, 63, 21}, {21, 63, 63},
		{63, 21, 21}, {63, 21, 63}, {63, 63, 21}, {63, 63, 63},
	}
	copy(dac[:16], ega[:])

	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				dac[idx] = [3]uint8{uint8(r * 63 / 5), uint8(g * 63 / 5), uint8(b * 63 / 5)}
				idx++
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(i * 63 / 23)
		dac[idx] = [3]uint8{v, v, v}
		idx++
	}

	var p Palette
	for i, c := range dac {
		p[i] = color.RGBA{R: expand6(c[0]), G: expand6(c[1]), B: expand6(c[2]), A: 0xFF}
	}
	return p
}

// expand6 widens a 6-bit DAC component to 8 bits.
func expand6(v uint8) uint8 {
	v &= 0x3F
	return (v << 2) | (v >> 4)
}

// ExpandRGBA writes one RGBA quad per index in src into dst.
func (p *Palette) ExpandRGBA(dst, src []byte) {
	for i, ix := range src {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		c := p[ix]
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = 0xFF
	}
}
