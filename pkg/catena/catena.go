// Package catena decodes the LoRaWAN payloads emitted by the Catena 5230
// environmental sensor: bitmap-gated telemetry uplinks on ports 1 and 4,
// and command responses on port 3.
package catena

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/muralisundaramoorthi/Catena5230/internal/driver"
	"github.com/muralisundaramoorthi/Catena5230/internal/driver/downlink"
	"github.com/muralisundaramoorthi/Catena5230/internal/driver/uplink"
	"github.com/muralisundaramoorthi/Catena5230/internal/wire"
)

// Ports the device transmits on. Any other port fails with
// ErrUnsupportedChannel.
const (
	PortTelemetry          = 1
	PortCommandResponse    = 3
	PortTelemetrySecondary = 4
)

// Sentinel errors returned by Decode, re-exported from the packages that
// raise them so callers need only this package.
var (
	ErrBufferUnderrun      = wire.ErrBufferUnderrun
	ErrUnsupportedFormat   = uplink.ErrUnsupportedFormat
	ErrUnsupportedChannel  = driver.ErrUnsupportedChannel
	ErrUnrecognizedCommand = downlink.ErrUnrecognizedCommand
)

// Result captures the outcome of a decode.
type Result struct {
	Driver    string
	Port      uint8
	RawHex    string
	ByteCount int
	Uplink    *uplink.Record
	Response  *downlink.Record
	Fields    map[string]any
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"driver":     r.Driver,
		"port":       r.Port,
		"byte_count": r.ByteCount,
		"raw_hex":    r.RawHex,
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("driver: %s port:%d bytes:%d raw:%s (marshal error: %v)", r.Driver, r.Port, r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// Decode routes the payload to the decoder registered for the port and
// returns the decoded record. The payload is either decoded completely or
// rejected; there are no partial results.
func Decode(ctx context.Context, port uint8, payload []byte) (Result, error) {
	return DecodeWithOptions(ctx, port, payload, DecodeOptions{})
}

// DecodeWithOptions decodes the payload with custom options.
func DecodeWithOptions(ctx context.Context, port uint8, payload []byte, opts DecodeOptions) (Result, error) {
	drv, err := driver.Lookup(port)
	if err != nil {
		return Result{}, err
	}
	rec, err := drv.Decode(opts.toInternal(ctx), payload)
	if err != nil {
		return Result{}, fmt.Errorf("port %d: %w", port, err)
	}
	result := Result{
		Driver:    drv.Name(),
		Port:      port,
		RawHex:    strings.ToUpper(hex.EncodeToString(payload)),
		ByteCount: len(payload),
		Fields:    rec.Fields(),
	}
	switch typed := rec.(type) {
	case *uplink.Record:
		result.Uplink = typed
	case *downlink.Record:
		result.Response = typed
	}
	return result, nil
}

// DecodeHex decodes a hex-encoded payload. Whitespace and the separators
// '|' and '_' commonly pasted from log output are stripped first.
func DecodeHex(ctx context.Context, port uint8, raw string) (Result, error) {
	return DecodeHexWithOptions(ctx, port, raw, DecodeOptions{})
}

// DecodeHexWithOptions decodes a hex-encoded payload with custom options.
func DecodeHexWithOptions(ctx context.Context, port uint8, raw string, opts DecodeOptions) (Result, error) {
	payload, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	return DecodeWithOptions(ctx, port, payload, opts)
}

func decodeHex(input string) ([]byte, error) {
	clean := stripWhitespace(input)
	if strings.HasPrefix(clean, "0X") || strings.HasPrefix(clean, "0x") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex payload must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripWhitespace(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
