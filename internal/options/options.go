package options

import "context"

type contextKey struct{}

// Options carries per-call decode tweaks through the context, so drivers
// receive them regardless of which entry point started the decode.
type Options struct {
	// TapHoldsCursor reproduces the deployed firmware decoder, which read
	// the accelerometer tap byte without consuming it. The default advances
	// the cursor like every other field.
	TapHoldsCursor bool
}

// With stores decode options inside the context.
func With(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, contextKey{}, opts)
}

// From retrieves decode options from the context, zero value if absent.
func From(ctx context.Context) Options {
	if v := ctx.Value(contextKey{}); v != nil {
		if opts, ok := v.(Options); ok {
			return opts
		}
	}
	return Options{}
}
