package wire

import "math"

// Numeric codecs for the compact encodings used by the Catena firmware. All
// multi-byte values are big-endian on the wire.

// U16 reads a big-endian unsigned 16-bit integer.
func (c *Cursor) U16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// I16 reads a big-endian two's-complement signed 16-bit integer.
func (c *Cursor) I16() (int16, error) {
	v, err := c.U16()
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// U24 reads a big-endian unsigned 24-bit integer.
func (c *Cursor) U24() (uint32, error) {
	b, err := c.take(3)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// U32 reads a big-endian unsigned 32-bit integer.
func (c *Cursor) U32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// FixedVoltage reads a signed Q4.12 fixed-point voltage: i16 / 4096.
func (c *Cursor) FixedVoltage() (float64, error) {
	v, err := c.I16()
	if err != nil {
		return 0, err
	}
	return float64(v) / 4096.0, nil
}

// UFloat16 reads a 16-bit unsigned reduced-precision float: 4-bit exponent,
// 12-bit mantissa, value (m/4096) * 2^(e-15). The format has no sign and no
// NaN/Inf encodings.
func (c *Cursor) UFloat16() (float64, error) {
	raw, err := c.U16()
	if err != nil {
		return 0, err
	}
	exp := int(raw>>12) & 0x0F
	man := float64(raw&0x0FFF) / 4096.0
	return math.Ldexp(man, exp-15), nil
}

// SFloat16 reads a 16-bit signed reduced-precision float: sign bit, 4-bit
// exponent, 11-bit mantissa, value sign * (m/2048) * 2^(e-15). The single
// pattern 0x8000 decodes to negative zero.
func (c *Cursor) SFloat16() (float64, error) {
	raw, err := c.U16()
	if err != nil {
		return 0, err
	}
	exp := int(raw>>11) & 0x0F
	man := float64(raw&0x07FF) / 2048.0
	v := math.Ldexp(man, exp-15)
	if raw&0x8000 != 0 {
		v = -v
	}
	return v, nil
}

const (
	sflt24SignMask = 0x800000
	sflt24ExpMask  = 0x7F
	sflt24ManMask  = 0xFFFF
	sflt24ExpMax   = 0x7F
	sflt24ExpBias  = 63
	sflt24ManOne   = 0x10000 // explicit leading bit of a normalized mantissa
)

// SFloat24 reads a 24-bit signed reduced-precision float: sign bit, 7-bit
// exponent, 16-bit mantissa with an explicit leading bit. Exponent 0x7F
// encodes infinity (mantissa 0) or NaN, exponent 0 a denormal scaled as if
// the exponent were 1.
func (c *Cursor) SFloat24() (float64, error) {
	raw, err := c.U24()
	if err != nil {
		return 0, err
	}
	exp := int(raw>>16) & sflt24ExpMask
	man := raw & sflt24ManMask

	var v float64
	switch {
	case exp == sflt24ExpMax:
		if man == 0 {
			v = math.Inf(1)
		} else {
			v = math.NaN()
		}
	case exp != 0:
		v = math.Ldexp(float64(man+sflt24ManOne)/float64(sflt24ManOne), exp-sflt24ExpBias)
	default:
		v = math.Ldexp(float64(man)/float64(sflt24ManOne), 1-sflt24ExpBias)
	}
	if raw&sflt24SignMask != 0 {
		v = -v
	}
	return v, nil
}

// Lux reads an illuminance value; the wire encoding is SFloat24.
func (c *Cursor) Lux() (float64, error) {
	return c.SFloat24()
}
