package shape

import (
	"log/slog"
	"time"

	"github.com/gogpu/gg-shape/loader"
)

// DefaultLoadTimeout bounds pattern and image source loading when no
// WithLoadTimeout option is given.
const DefaultLoadTimeout = 10 * time.Second

// SessionOption configures a Session during creation.
//
// Example:
//
//	s := shape.NewSession(surf,
//	    shape.WithLogger(slog.Default()),
//	    shape.WithLoadTimeout(2*time.Second),
//	)
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	logger      *slog.Logger
	loader      *loader.Loader
	loadTimeout time.Duration
	clock       func() time.Time
}

// defaultOptions returns the default session options.
func defaultOptions() sessionOptions {
	return sessionOptions{
		logger:      nil, // Falls back to Logger() at creation time
		loader:      nil, // Created lazily on first load
		loadTimeout: DefaultLoadTimeout,
		clock:       time.Now,
	}
}

// WithLogger sets the logger for one Session, overriding SetLogger.
func WithLogger(l *slog.Logger) SessionOption {
	return func(o *sessionOptions) {
		o.logger = l
	}
}

// WithLoader sets the image loader used by Pattern and the image builder.
//
// Example:
//
//	l := loader.New(loader.WithHTTPClient(client))
//	s := shape.NewSession(surf, shape.WithLoader(l))
func WithLoader(l *loader.Loader) SessionOption {
	return func(o *sessionOptions) {
		o.loader = l
	}
}

// WithLoadTimeout bounds every blocking source load. Non-positive values
// disable the timeout; the caller's context still applies.
func WithLoadTimeout(d time.Duration) SessionOption {
	return func(o *sessionOptions) {
		o.loadTimeout = d
	}
}

// WithClock sets the time source used by the session's FrameMeter.
func WithClock(now func() time.Time) SessionOption {
	return func(o *sessionOptions) {
		if now != nil {
			o.clock = now
		}
	}
}
