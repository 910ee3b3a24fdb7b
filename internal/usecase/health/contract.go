package health

import "context"

// DBPinger verifies the backing store is reachable.
type DBPinger interface {
	Ping(ctx context.Context) error
}
