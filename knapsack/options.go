// SPDX-License-Identifier: MIT

package knapsack

// ---------- Defaults ----------

const (
	// DefaultMaxStates is the largest index space Solve accepts by default.
	// The value table and every per-item quantity table are this long, so the
	// ceiling bounds memory at roughly DefaultMaxStates·8·(items+1) bytes.
	DefaultMaxStates = 1 << 24
)

const panicMaxStatesInvalid = "knapsack: WithMaxStates: limit must be > 0"

// Observer receives solver progress. Calls happen synchronously on the
// solving goroutine.
type Observer interface {
	// OnPass is called after each 0/1 pass; item is the input position.
	OnPass(item int, b Bundle)

	// OnSolved is called once per successful Solve.
	OnSolved(s Stats)
}

// Option configures Solve.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	maxStates int
	observer  Observer
}

// WithMaxStates sets the CapacityTooLarge ceiling on Π(bound_d+1).
// Panics if limit ≤ 0.
func WithMaxStates(limit int) Option {
	if limit <= 0 {
		panic(panicMaxStatesInvalid)
	}

	return func(o *Options) { o.maxStates = limit }
}

// WithObserver installs a progress observer. nil restores the no-op observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			obs = nopObserver{}
		}
		o.observer = obs
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		maxStates: DefaultMaxStates,
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

type nopObserver struct{}

func (nopObserver) OnPass(int, Bundle) {}
func (nopObserver) OnSolved(Stats)     {}
