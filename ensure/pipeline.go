package ensure

import (
	"context"

	"github.com/zerocity/define-ensure/log"
	"github.com/zerocity/define-ensure/runtime"
)

// fail computes the final failure value and raises it. The steps run in a
// fixed order: strip decision, message resolution and formatting, class
// selection, construction, optional stack cleaning, reporting, panic.
// Both primitives funnel through here so their failure behavior cannot
// drift apart.
func fail(cfg Config, opt Options, fallback *Class) {
	strip := cfg.DefaultStrip
	if opt.Strip != nil {
		strip = *opt.Strip
	}

	var finalMessage string

	if strip && runtime.IsProductionMode() {
		// The message is not resolved in this branch: a lazy thunk must
		// never run once stripping applies, so diagnostic text cannot leak
		// into a production build.
		finalMessage = cfg.Name
		if finalMessage == "" {
			finalMessage = fallbackMessage
		}
	} else {
		finalMessage = opt.Message.resolve()

		format := cfg.Format
		if opt.Format != nil {
			format = opt.Format
		}

		if format != nil {
			finalMessage = format(finalMessage)
		}
	}

	// Class selection is independent of stripping: a per-call override
	// wins even when the stripped label was used.
	class := cfg.Class
	if opt.Class != nil {
		class = opt.Class
	}

	if class == nil {
		class = fallback
	}

	err := &Error{
		class:   class,
		message: finalMessage,
		cause:   opt.Cause,
		stack:   selectCleaner(opt.CleanStack).capture(0),
	}

	report(cfg, opt, err)
	panic(err)
}

// report emits the failure to the family's logger and the active span.
// Reporting is purely observational: it sees only the final (possibly
// stripped) message and never suppresses the raise.
func report(cfg Config, opt Options, err *Error) {
	if cfg.Logger != nil {
		ctx := opt.Context
		if ctx == nil {
			ctx = context.Background()
		}

		fields := []log.Field{log.String("class", err.Name())}

		if cfg.Name != "" {
			fields = append(fields, log.String("validator", cfg.Name))
		}

		if cause := err.Unwrap(); cause != nil {
			fields = append(fields, log.Err(cause))
		}

		cfg.Logger.Log(ctx, log.LevelError, "ASSERTION FAILED: "+err.Message(), fields...)
	}

	if opt.Context != nil {
		recordToSpan(opt.Context, cfg, err)
	}
}
