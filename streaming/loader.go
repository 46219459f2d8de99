package streaming

// Handle is an opaque, disposable resource obtained from a loader. The
// manager never looks inside it; the render layer knows the concrete type.
type Handle interface {
	Dispose()
}

// Request identifies one asynchronous load. Gen is the resource generation
// at issue time; a completion whose generation no longer matches is stale
// and must be dropped.
type Request struct {
	ID  string
	Gen uint64
	URL string
}

// Result is a load completion. Exactly one of Handle/Err is set.
type Result struct {
	ID     string
	Gen    uint64
	Handle Handle
	Err    error
}

// Loader fetches resources asynchronously. Load must never block; completions
// arrive on Results and are drained at the top of every manager tick.
type Loader interface {
	Load(Request)
	Results() <-chan Result
}
