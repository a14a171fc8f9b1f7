package wire

import (
	"errors"
	"math"
	"testing"
)

func TestIntegerReads(t *testing.T) {
	cur := NewCursor([]byte{0x12, 0x34, 0xFF, 0x9C, 0x01, 0x02, 0x03, 0xDE, 0xAD, 0xBE, 0xEF})

	u, err := cur.U16()
	if err != nil || u != 0x1234 {
		t.Fatalf("U16 = %04X, %v", u, err)
	}
	i, err := cur.I16()
	if err != nil || i != -100 {
		t.Fatalf("I16 = %d, %v", i, err)
	}
	u24, err := cur.U24()
	if err != nil || u24 != 0x010203 {
		t.Fatalf("U24 = %06X, %v", u24, err)
	}
	u32, err := cur.U32()
	if err != nil || u32 != 0xDEADBEEF {
		t.Fatalf("U32 = %08X, %v", u32, err)
	}
	if cur.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", cur.Remaining())
	}
}

func TestSignExtension(t *testing.T) {
	cases := []struct {
		raw  []byte
		want int16
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0x7F, 0xFF}, 32767},
		{[]byte{0x80, 0x00}, -32768},
		{[]byte{0xFF, 0xFF}, -1},
	}
	for _, tc := range cases {
		got, err := NewCursor(tc.raw).I16()
		if err != nil || got != tc.want {
			t.Errorf("I16(% X) = %d, %v; want %d", tc.raw, got, err, tc.want)
		}
	}
}

func TestFixedVoltage(t *testing.T) {
	cases := []struct {
		raw  []byte
		want float64
	}{
		{[]byte{0x3C, 0x00}, 3.75},
		{[]byte{0x50, 0x00}, 5.0},
		{[]byte{0xC4, 0x00}, -3.75},
		{[]byte{0x00, 0x00}, 0},
	}
	for _, tc := range cases {
		got, err := NewCursor(tc.raw).FixedVoltage()
		if err != nil || got != tc.want {
			t.Errorf("FixedVoltage(% X) = %v, %v; want %v", tc.raw, got, err, tc.want)
		}
	}
}

func TestUFloat16(t *testing.T) {
	cases := []struct {
		raw  []byte
		want float64
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0xF8, 0x00}, 0.5},            // e=15 m=2048
		{[]byte{0x78, 0x00}, 0.001953125},    // e=7 m=2048
		{[]byte{0xFF, 0xFF}, 4095.0 / 4096}, // largest encodable value
	}
	for _, tc := range cases {
		got, err := NewCursor(tc.raw).UFloat16()
		if err != nil || got != tc.want {
			t.Errorf("UFloat16(% X) = %v, %v; want %v", tc.raw, got, err, tc.want)
		}
	}
}

func TestSFloat16(t *testing.T) {
	cases := []struct {
		raw  []byte
		want float64
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0x44, 0x00}, 0.00390625},  // e=8 m=1024
		{[]byte{0xC4, 0x00}, -0.00390625}, // sign bit set
	}
	for _, tc := range cases {
		got, err := NewCursor(tc.raw).SFloat16()
		if err != nil || got != tc.want {
			t.Errorf("SFloat16(% X) = %v, %v; want %v", tc.raw, got, err, tc.want)
		}
	}
}

func TestSFloat16NegativeZero(t *testing.T) {
	got, err := NewCursor([]byte{0x80, 0x00}).SFloat16()
	if err != nil {
		t.Fatalf("SFloat16: %v", err)
	}
	if got != 0 || !math.Signbit(got) {
		t.Fatalf("SFloat16(0x8000) = %v (signbit %v), want negative zero", got, math.Signbit(got))
	}
}

func TestSFloat24(t *testing.T) {
	cases := []struct {
		name string
		raw  []byte
		want float64
	}{
		{"one", []byte{0x3F, 0x00, 0x00}, 1.0},     // E=63 M=0
		{"thousand", []byte{0x48, 0xF4, 0x00}, 1000.0},
		{"minus-thousand", []byte{0xC8, 0xF4, 0x00}, -1000.0},
		{"half", []byte{0x3E, 0x00, 0x00}, 0.5},
	}
	for _, tc := range cases {
		got, err := NewCursor(tc.raw).SFloat24()
		if err != nil || got != tc.want {
			t.Errorf("%s: SFloat24(% X) = %v, %v; want %v", tc.name, tc.raw, got, err, tc.want)
		}
	}
}

func TestSFloat24Specials(t *testing.T) {
	inf, err := NewCursor([]byte{0x7F, 0x00, 0x00}).SFloat24()
	if err != nil || !math.IsInf(inf, 1) {
		t.Fatalf("exponent 0x7F mantissa 0 = %v, %v; want +Inf", inf, err)
	}
	ninf, err := NewCursor([]byte{0xFF, 0x00, 0x00}).SFloat24()
	if err != nil || !math.IsInf(ninf, -1) {
		t.Fatalf("sign + exponent 0x7F mantissa 0 = %v, %v; want -Inf", ninf, err)
	}
	nan, err := NewCursor([]byte{0x7F, 0x00, 0x01}).SFloat24()
	if err != nil || !math.IsNaN(nan) {
		t.Fatalf("exponent 0x7F mantissa 1 = %v, %v; want NaN", nan, err)
	}
}

func TestSFloat24Denormal(t *testing.T) {
	den, err := NewCursor([]byte{0x00, 0xFF, 0xFF}).SFloat24()
	if err != nil {
		t.Fatalf("SFloat24: %v", err)
	}
	norm, err := NewCursor([]byte{0x01, 0x00, 0x00}).SFloat24()
	if err != nil {
		t.Fatalf("SFloat24: %v", err)
	}
	if den <= 0 {
		t.Fatalf("largest denormal = %v, want > 0", den)
	}
	if den >= norm {
		t.Fatalf("largest denormal %v not below smallest normal %v", den, norm)
	}
}

func TestLuxAliasesSFloat24(t *testing.T) {
	lux, err := NewCursor([]byte{0x48, 0xF4, 0x00}).Lux()
	if err != nil || lux != 1000.0 {
		t.Fatalf("Lux = %v, %v; want 1000", lux, err)
	}
}

func TestUnderrun(t *testing.T) {
	reads := map[string]func(*Cursor) error{
		"U8":           func(c *Cursor) error { _, err := c.U8(); return err },
		"U16":          func(c *Cursor) error { _, err := c.U16(); return err },
		"U24":          func(c *Cursor) error { _, err := c.U24(); return err },
		"U32":          func(c *Cursor) error { _, err := c.U32(); return err },
		"FixedVoltage": func(c *Cursor) error { _, err := c.FixedVoltage(); return err },
		"UFloat16":     func(c *Cursor) error { _, err := c.UFloat16(); return err },
		"SFloat16":     func(c *Cursor) error { _, err := c.SFloat16(); return err },
		"SFloat24":     func(c *Cursor) error { _, err := c.SFloat24(); return err },
		"Bytes":        func(c *Cursor) error { _, err := c.Bytes(2); return err },
		"Peek":         func(c *Cursor) error { _, err := c.Peek(); return err },
	}
	for name, read := range reads {
		cur := NewCursor([]byte{})
		if err := read(cur); !errors.Is(err, ErrBufferUnderrun) {
			t.Errorf("%s on empty buffer: %v, want ErrBufferUnderrun", name, err)
		}
		if cur.Offset() != 0 {
			t.Errorf("%s consumed bytes on failure", name)
		}
	}
}

func TestPartialUnderrunDoesNotConsume(t *testing.T) {
	cur := NewCursor([]byte{0xAA})
	if _, err := cur.U16(); !errors.Is(err, ErrBufferUnderrun) {
		t.Fatalf("U16 on 1 byte: %v, want ErrBufferUnderrun", err)
	}
	if cur.Offset() != 0 {
		t.Fatalf("offset = %d after failed read, want 0", cur.Offset())
	}
	b, err := cur.U8()
	if err != nil || b != 0xAA {
		t.Fatalf("U8 after failed U16 = %02X, %v", b, err)
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	cur := NewCursor([]byte{0x42})
	b, err := cur.Peek()
	if err != nil || b != 0x42 {
		t.Fatalf("Peek = %02X, %v", b, err)
	}
	if cur.Offset() != 0 {
		t.Fatalf("Peek advanced cursor to %d", cur.Offset())
	}
}
