package repository

// Unsubscribe cancels a real-time subscription and releases its resources.
// Calling it more than once is a no-op.
type Unsubscribe func()

// Listener receives every snapshot of a watched query. The first call carries
// the current state; later calls follow each change. A non-nil err means the
// subscription has ended and no further snapshots are delivered.
type Listener[T any] func(snapshot T, err error)
