package primecache

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking - the sequence calls
// them synchronously right after an extension. Wrap with hooks/async to
// take them off the calling goroutine.
type Hooks interface {
	// A full sieve pass completed. bound is the sieved upper limit,
	// found the total number of primes known afterwards.
	SievePass(bound, found int)

	// The sequence cache grew. watermark is the new "complete up to"
	// limit, size the cached prime count.
	CacheExtended(watermark, size int)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) SievePass(int, int)     {}
func (NopHooks) CacheExtended(int, int) {}
