package colorspace

// Packed is a 32-bit AARRGGBB representation used as a compact
// interchange token between space modules.
type Packed uint32

// Pack combines an RGB color and an 8-bit alpha into a Packed AARRGGBB
// value.
func Pack(rgb RGB, alpha uint8) Packed {
	return Packed(uint32(alpha)<<24 | uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B))
}

// Unpack splits a Packed AARRGGBB value back into an RGB color and an
// 8-bit alpha.
func Unpack(p Packed) (RGB, uint8) {
	alpha := uint8(p >> 24)
	rgb := RGB{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
	}
	return rgb, alpha
}
