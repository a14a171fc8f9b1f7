package downlink

import (
	"context"
	"errors"
	"fmt"

	"github.com/muralisundaramoorthi/Catena5230/internal/driver"
	"github.com/muralisundaramoorthi/Catena5230/internal/wire"
)

// ErrUnrecognizedCommand reports a response whose leading command byte is
// outside the device's command set.
var ErrUnrecognizedCommand = errors.New("unrecognized command")

// Command identifies which downlink a response acknowledges.
type Command uint8

const (
	CmdApplication   Command = 0x01
	CmdReset         Command = 0x02
	CmdDeviceVersion Command = 0x03
	CmdAppEUI        Command = 0x04
	CmdAppKey        Command = 0x05
	CmdRejoin        Command = 0x06
	CmdInterval      Command = 0x07
)

// String returns the response type label for the command.
func (c Command) String() string {
	switch c {
	case CmdApplication:
		return "Application"
	case CmdReset:
		return "Device Reset"
	case CmdDeviceVersion:
		return "Device Version"
	case CmdAppEUI:
		return "AppEUI Update"
	case CmdAppKey:
		return "AppKey Update"
	case CmdRejoin:
		return "Rejoin"
	case CmdInterval:
		return "Uplink Interval"
	default:
		return fmt.Sprintf("Command(0x%02X)", uint8(c))
	}
}

// Status byte values the firmware reports after executing a command.
const (
	statusSuccess       = 0x00
	statusInvalidLength = 0x01
	statusFailure       = 0x02
)

// defaultModel stands in when the version response carries a zero model id;
// early firmware shipped without the model register programmed.
const defaultModel = 5230

const revisionNotFound = "Not Found"

func init() {
	driver.Register([]uint8{3}, Driver{})
}

// Driver decodes command responses sent on port 3.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "command-response" }

// Decode implements driver.Driver.
func (Driver) Decode(_ context.Context, payload []byte) (driver.Record, error) {
	rec, err := Parse(payload)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Parse decodes a command-response payload into a typed record.
func Parse(payload []byte) (*Record, error) {
	cur := wire.NewCursor(payload)
	cmd, err := cur.U8()
	if err != nil {
		return nil, err
	}

	rec := &Record{Command: Command(cmd)}
	switch rec.Command {
	case CmdApplication:
		// Application-defined payload; passed through undecoded.
		rec.Payload = append([]byte(nil), payload[1:]...)
	case CmdReset:
		// The device reboots before answering; an observed response
		// carries no payload.
	case CmdDeviceVersion:
		if err := decodeStatus(cur, rec); err != nil {
			return nil, err
		}
		if cur.Remaining() > 0 {
			if err := decodeVersionBody(cur, rec); err != nil {
				return nil, err
			}
		}
	case CmdAppEUI, CmdAppKey, CmdRejoin:
		if err := decodeStatus(cur, rec); err != nil {
			return nil, err
		}
	case CmdInterval:
		if err := decodeStatus(cur, rec); err != nil {
			return nil, err
		}
		if cur.Remaining() > 0 {
			seconds, err := cur.U32()
			if err != nil {
				return nil, err
			}
			rec.IntervalSec = &seconds
		}
	default:
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnrecognizedCommand, cmd)
	}
	return rec, nil
}

// decodeStatus reads the mandatory status byte. Unknown status values leave
// the field unset rather than invent a label.
func decodeStatus(cur *wire.Cursor, rec *Record) error {
	b, err := cur.U8()
	if err != nil {
		return err
	}
	var status string
	switch b {
	case statusSuccess:
		status = "Success"
	case statusInvalidLength:
		status = "Invalid Length"
	case statusFailure:
		status = "Failure"
	default:
		return nil
	}
	rec.Status = &status
	return nil
}

func decodeVersionBody(cur *wire.Cursor, rec *Record) error {
	b, err := cur.Bytes(4)
	if err != nil {
		return err
	}
	version := fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3])
	rec.AppVersion = &version

	model, err := cur.U16()
	if err != nil {
		return err
	}
	revByte, err := cur.U8()
	if err != nil {
		return err
	}

	if model == 0 {
		model = defaultModel
		rev := revisionNotFound
		rec.Revision = &rev
	} else if revByte <= 4 {
		rev := string(rune('A' + revByte))
		rec.Revision = &rev
	}
	rec.Model = &model
	return nil
}
