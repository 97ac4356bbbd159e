package ports

import "context"

// ResponseCache memoizes encoded responses. Implementations may drop entries
// at any time; callers must be able to recompute on a miss.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
