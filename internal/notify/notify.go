// Package notify sends a one-shot WebSocket message when a game session
// starts. Delivery is best effort: failures are logged and never reach the
// game.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Notifier fires the session-start hook.
type Notifier struct {
	cfg    config.NotifyConfig
	dialer *websocket.Dialer
	logger *log.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// New creates a notifier. A nil logger discards log output.
func New(cfg config.NotifyConfig, logger *log.Logger) *Notifier {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	cfg.Timeout = timeout

	return &Notifier{
		cfg: cfg,
		dialer: &websocket.Dialer{
			HandshakeTimeout: timeout,
		},
		logger: logger,
	}
}

// Enabled reports whether an endpoint is configured.
func (n *Notifier) Enabled() bool {
	return n != nil && n.cfg.Endpoint != ""
}

// SessionStarted sends the configured message in the background and returns
// immediately. It is a no-op when no endpoint is configured or after Close.
func (n *Notifier) SessionStarted(ctx context.Context) {
	if !n.Enabled() {
		return
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		n.logger.Debug("session notify skipped, notifier closed")
		return
	}
	n.wg.Add(1)
	n.mu.Unlock()

	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
		defer cancel()

		if err := n.send(ctx); err != nil {
			n.logger.Debug("session notify failed", "endpoint", n.cfg.Endpoint, "err", err)
			return
		}
		n.logger.Debug("session notify sent", "endpoint", n.cfg.Endpoint)
	}()
}

// Close stops accepting notifications and blocks until the in-flight ones
// have finished. It may be called more than once.
func (n *Notifier) Close() {
	if n == nil {
		return
	}
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()

	n.wg.Wait()
}

func (n *Notifier) send(ctx context.Context) error {
	conn, _, err := n.dialer.DialContext(ctx, n.cfg.Endpoint, nil)
	if err != nil {
		return fmt.Errorf("notify: dial %s: %w", n.cfg.Endpoint, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(n.cfg.Message)); err != nil {
		return fmt.Errorf("notify: write: %w", err)
	}

	// Best-effort close handshake; the peer may already be gone.
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return nil
}
