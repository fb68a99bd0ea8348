package wizard

// CallbackMsg carries a deferred controller mutation into the update loop.
// The Bridge wraps every scheduled flow callback in one of these so the
// mutation runs on the tea goroutine, never on a timer goroutine.
type CallbackMsg struct {
	Fn func()
}
