package settings

import (
	"context"
	"maps"
	"sync"

	"github.com/sirupsen/logrus"

	"rgbpick/channel"
)

// Writer queues channel values for a Backend without blocking the caller.
// Pending values are coalesced per channel, so repeated writes to one channel
// converge on the last one issued. Run drains the queue.
type Writer struct {
	backend Backend
	log     *logrus.Entry

	flushMu sync.Mutex // keeps batches in issue order
	mu      sync.Mutex
	pending channel.Values
	wake    chan struct{}
}

func NewWriter(b Backend, log *logrus.Entry) *Writer {
	if log == nil {
		log = logrus.WithField("component", "settings")
	}
	return &Writer{
		backend: b,
		log:     log,
		pending: channel.Values{},
		wake:    make(chan struct{}, 1),
	}
}

// ReadAll loads the stored values from the backend.
func (w *Writer) ReadAll() (channel.Values, error) {
	return w.backend.Load()
}

// Write records value for ch and returns immediately.
func (w *Writer) Write(ch channel.Channel, value int) {
	w.mu.Lock()
	w.pending[ch] = value
	w.mu.Unlock()
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Run saves queued values until ctx is done, then flushes what is left.
// Save failures are logged and dropped.
func (w *Writer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.Flush()
			return nil
		case <-w.wake:
			w.Flush()
		}
	}
}

// Flush saves everything pending now.
func (w *Writer) Flush() {
	w.flushMu.Lock()
	defer w.flushMu.Unlock()
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	batch := maps.Clone(w.pending)
	clear(w.pending)
	w.mu.Unlock()

	if err := w.backend.Save(batch); err != nil {
		w.log.WithError(err).Warn("save channel values")
		return
	}
	w.log.WithField("batch", batch).Debug("saved")
}
