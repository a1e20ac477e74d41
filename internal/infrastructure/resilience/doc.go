/*
Package resilience provides a circuit breaker for calls to a peer process.

The HTTP bridge transport wraps each POST in a Breaker so that a UI talking
to a dead bridge fails fast instead of waiting on every keypress. Only
transport failures count: a refused request or a failed file operation is a
healthy answer from the peer.

	Closed --[failures]-> Open --[cooldown]-> Half-Open --[trial calls ok]-> Closed
	                                              |
	                                          [failure]
	                                              v
	                                            Open

Usage:

	breaker := resilience.New("bridge", resilience.Settings{
		Cooldown: 5 * time.Second,
		ReadyToTrip: func(c resilience.Counts) bool {
			return c.ConsecutiveFailures >= 3
		},
	})
	err := breaker.Do(func() error { return call(ctx) })
*/
package resilience
