package scene

// Token identifies one subscription to a Signal. Tokens are never reused
// within a Signal's lifetime.
type Token uint64

// Signal is a minimal synchronous change-notification mechanism.
// Subscribers are invoked in subscription order, on the emitting
// goroutine, after the mutation that triggered the emission has fully
// completed. Consumers must tolerate being notified more often than
// strictly necessary, never less.
//
// Signal follows the single-threaded document model: it is not safe for
// concurrent use.
type Signal struct {
	next Token
	subs []subscriber
}

type subscriber struct {
	token Token
	fn    func()
}

// Subscribe registers a callback and returns a token for Unsubscribe.
func (s *Signal) Subscribe(fn func()) Token {
	s.next++
	s.subs = append(s.subs, subscriber{token: s.next, fn: fn})
	return s.next
}

// Unsubscribe removes a subscription. Unknown tokens are ignored.
func (s *Signal) Unsubscribe(t Token) {
	for i, sub := range s.subs {
		if sub.token == t {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Emit invokes all subscribers in subscription order.
func (s *Signal) Emit() {
	// Iterate over a snapshot so a callback unsubscribing itself (or
	// subscribing others) does not disturb this emission.
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn()
	}
}
