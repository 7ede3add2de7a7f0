package search

import (
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Options defines parameters for a search.
type Options struct {
	// NumberOfWorkers bounds how many problems SolveAll solves at once.
	NumberOfWorkers int

	// MaxExpansions stops a search with ErrExpansionLimit once this many
	// states have been expanded. Zero means unlimited.
	MaxExpansions int

	// MaxDepth prevents nodes deeper than this from entering the frontier.
	// Zero means unlimited.
	MaxDepth int

	Logger   *slog.Logger
	Observer Observer
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many searches SolveAll runs concurrently.
// Values below one are ignored.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) {
		if numberOfWorkers > 0 {
			options.NumberOfWorkers = numberOfWorkers
		}
	}
}

// WithMaxExpansions caps the number of expanded states.
func WithMaxExpansions(limit int) Option {
	return func(options *Options) { options.MaxExpansions = limit }
}

// WithMaxDepth caps the depth of nodes pushed onto the frontier. It makes
// depth-first search terminate on infinite state spaces.
func WithMaxDepth(depth int) Option {
	return func(options *Options) { options.MaxDepth = depth }
}

// WithLogger sets the structured logger. Searches log at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) {
		if logger != nil {
			options.Logger = logger
		}
	}
}

// WithObserver registers an Observer. When used with SolveAll the observer is
// called from several goroutines.
func WithObserver(observer Observer) Option {
	return func(options *Options) { options.Observer = observer }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		Observer:        nopObserver{},
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Observer == nil {
		searchOptions.Observer = nopObserver{}
	}
	return searchOptions
}

// Stats summarises a finished search for observers.
type Stats struct {
	Expanded  int
	Generated int
	Found     bool
	Cost      float64
	Duration  time.Duration
}

// Observer receives search lifecycle events. Every search, whether run by
// Solve or stepped by hand, sends SearchStarted once before its first
// expansion and SearchFinished once when it ends.
type Observer interface {
	SearchStarted(strategy Strategy)
	NodeExpanded(strategy Strategy, depth int, cost float64)
	SearchFinished(strategy Strategy, stats Stats, err error)
}

type nopObserver struct{}

func (nopObserver) SearchStarted(Strategy)                {}
func (nopObserver) NodeExpanded(Strategy, int, float64)   {}
func (nopObserver) SearchFinished(Strategy, Stats, error) {}
