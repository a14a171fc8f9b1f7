package uplink

import (
	"context"
	"errors"
	"fmt"

	"github.com/muralisundaramoorthi/Catena5230/internal/driver"
	"github.com/muralisundaramoorthi/Catena5230/internal/options"
	"github.com/muralisundaramoorthi/Catena5230/internal/weather"
	"github.com/muralisundaramoorthi/Catena5230/internal/wire"
)

// ErrUnsupportedFormat reports a telemetry message whose leading format tag
// is not the one this firmware emits.
var ErrUnsupportedFormat = errors.New("unsupported message format")

// FormatTelemetry is the format tag byte opening every telemetry uplink.
const FormatTelemetry = 0x15

// Flag bits of the second payload byte. Each set bit gates one field group,
// decoded in ascending bit order. Bits 6-7 are reserved and ignored.
const (
	flagPower       = 0x01 // vBat, vBus, vSys
	flagVersion     = 0x02 // four version bytes
	flagBoot        = 0x04 // boot counter
	flagEnvironment = 0x08 // temperature + relative humidity
	flagLight       = 0x10 // lux
	flagTap         = 0x20 // accelerometer tap code
)

func init() {
	driver.Register([]uint8{1, 4}, Driver{})
}

// Driver decodes the bitmap-gated telemetry format sent on ports 1 and 4.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "telemetry" }

// Decode implements driver.Driver.
func (Driver) Decode(ctx context.Context, payload []byte) (driver.Record, error) {
	rec, err := decode(wire.NewCursor(payload), options.From(ctx))
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func decode(cur *wire.Cursor, opts options.Options) (*Record, error) {
	tag, err := cur.U8()
	if err != nil {
		return nil, err
	}
	if tag != FormatTelemetry {
		return nil, fmt.Errorf("%w: tag 0x%02X", ErrUnsupportedFormat, tag)
	}
	flags, err := cur.U8()
	if err != nil {
		return nil, err
	}

	rec := &Record{}
	if flags&flagPower != 0 {
		if err := decodePower(cur, rec); err != nil {
			return nil, err
		}
	}
	if flags&flagVersion != 0 {
		if err := decodeVersion(cur, rec); err != nil {
			return nil, err
		}
	}
	if flags&flagBoot != 0 {
		boot, err := cur.U8()
		if err != nil {
			return nil, err
		}
		rec.Boot = &boot
	}
	if flags&flagEnvironment != 0 {
		if err := decodeEnvironment(cur, rec); err != nil {
			return nil, err
		}
	}
	if flags&flagLight != 0 {
		lux, err := cur.Lux()
		if err != nil {
			return nil, err
		}
		rec.Lux = &lux
	}
	if flags&flagTap != 0 {
		// The firmware places tap last, and its reference decoder read the
		// byte without consuming it. Advance by default; TapHoldsCursor
		// keeps byte accounting compatible with that decoder.
		var tap uint8
		if opts.TapHoldsCursor {
			tap, err = cur.Peek()
		} else {
			tap, err = cur.U8()
		}
		if err != nil {
			return nil, err
		}
		rec.Tap = &tap
	}
	return rec, nil
}

func decodePower(cur *wire.Cursor, rec *Record) error {
	for _, dst := range []**float64{&rec.VBat, &rec.VBus, &rec.VSys} {
		v, err := cur.FixedVoltage()
		if err != nil {
			return err
		}
		value := v
		*dst = &value
	}
	return nil
}

func decodeVersion(cur *wire.Cursor, rec *Record) error {
	b, err := cur.Bytes(4)
	if err != nil {
		return err
	}
	version := fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3])
	rec.Version = &version
	return nil
}

func decodeEnvironment(cur *wire.Cursor, rec *Record) error {
	tRaw, err := cur.I16()
	if err != nil {
		return err
	}
	rhRaw, err := cur.U16()
	if err != nil {
		return err
	}
	t := float64(tRaw) / 256.0
	rh := float64(rhRaw) * 100.0 / 65535.0
	rec.TempC = &t
	rec.RH = &rh

	dew := weather.DewPoint(t, rh)
	rec.DewPointC = &dew
	if hi, ok := weather.HeatIndexCelsius(weather.CelsiusToFahrenheit(t), rh); ok {
		rec.HeatIndexC = &hi
	}
	return nil
}
