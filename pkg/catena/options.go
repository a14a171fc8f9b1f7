package catena

import (
	"context"

	internalopts "github.com/muralisundaramoorthi/Catena5230/internal/options"
)

// DecodeOptions configures decoding.
type DecodeOptions struct {
	// TapHoldsCursor makes the tap byte decode without advancing the
	// cursor, matching the reference firmware decoder byte-for-byte.
	TapHoldsCursor bool
}

func (opts DecodeOptions) toInternal(ctx context.Context) context.Context {
	return internalopts.With(ctx, internalopts.Options{
		TapHoldsCursor: opts.TapHoldsCursor,
	})
}
