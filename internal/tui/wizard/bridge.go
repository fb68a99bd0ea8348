package wizard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Bridge is the flow.Scheduler for the TUI. Scheduled callbacks are delivered
// as CallbackMsg values through a channel and executed inside Update, so
// every controller mutation happens on the single tea update goroutine.
type Bridge struct {
	msgs   chan tea.Msg
	ctx    context.Context
	cancel context.CancelFunc
}

// NewBridge creates a Bridge ready to schedule callbacks.
func NewBridge() *Bridge {
	ctx, cancel := context.WithCancel(context.Background())
	return &Bridge{
		msgs:   make(chan tea.Msg, 64),
		ctx:    ctx,
		cancel: cancel,
	}
}

// AfterFunc satisfies flow.Scheduler. Delivery order follows timer expiry,
// which for the controller's chained transitions matches scheduling order.
func (b *Bridge) AfterFunc(d time.Duration, fn func()) {
	timer := time.NewTimer(d)
	go func() {
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-b.ctx.Done():
			return
		}
		select {
		case b.msgs <- CallbackMsg{Fn: fn}:
		case <-b.ctx.Done():
		}
	}()
}

// NextMsg returns a tea.Cmd that waits for the next scheduled callback.
func (b *Bridge) NextMsg() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.msgs:
			return msg
		case <-b.ctx.Done():
			return nil
		}
	}
}

// Close stops delivery; outstanding timer goroutines exit without firing.
func (b *Bridge) Close() {
	b.cancel()
}
