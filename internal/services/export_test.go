package services

import "context"

// SetCacheInvalidator swaps the dashboard cache invalidation for the test.
func SetCacheInvalidator(fn func(ctx context.Context)) (restore func()) {
	prev := invalidateCaches
	invalidateCaches = fn
	return func() { invalidateCaches = prev }
}
