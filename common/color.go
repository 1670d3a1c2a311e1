package common

// HexColor converts a packed 0xRRGGBB value into normalized RGB components.
//
// Parameters:
//   - hex: the packed color, e.g. 0x86cdff
//
// Returns:
//   - [3]float32: the color as (r, g, b) in [0, 1]
func HexColor(hex uint32) [3]float32 {
	return [3]float32{
		float32((hex>>16)&0xff) / 255.0,
		float32((hex>>8)&0xff) / 255.0,
		float32(hex&0xff) / 255.0,
	}
}
