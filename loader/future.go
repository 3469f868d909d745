package loader

import (
	"context"
	"image"
)

// Future is the pending result of Start.
type Future struct {
	uri    string
	done   chan struct{}
	cancel context.CancelFunc
	img    image.Image
	err    error
}

// Start begins loading uri in the background. The load is bound to ctx:
// cancelling ctx, or calling Cancel, aborts it.
func (l *Loader) Start(ctx context.Context, uri string) *Future {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future{uri: uri, done: make(chan struct{}), cancel: cancel}
	go func() {
		defer close(f.done)
		defer cancel()
		f.img, f.err = l.Load(ctx, uri)
		if f.err != nil {
			l.log.Debug("loader: failed", "uri", shorten(uri), "err", f.err)
		}
	}()
	return f
}

// URI returns the source being loaded.
func (f *Future) URI() string { return f.uri }

// Done is closed when the load has finished, successfully or not.
func (f *Future) Done() <-chan struct{} { return f.done }

// Cancel aborts the load. Waiters observe context.Canceled unless the load
// already finished.
func (f *Future) Cancel() { f.cancel() }

// Wait blocks until the load finishes or ctx is done.
func (f *Future) Wait(ctx context.Context) (image.Image, error) {
	select {
	case <-f.done:
		return f.img, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
