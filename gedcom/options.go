package gedcom

import "sync/atomic"

// DefaultReadNotificationRate is the number of lines read between file
// progress events.
const DefaultReadNotificationRate = 500

// Option configures parser behavior.
type Option func(*Options)

// Options configures parser behavior. Zero values use defaults.
type Options struct {
	// ReadNotificationRate is the number of lines between file progress
	// events.
	ReadNotificationRate int

	// StrictLineBreaks warns on line terminators other than \r\n and \n.
	StrictLineBreaks bool

	// StrictCustomTags warns on underscore-prefixed tags instead of
	// accepting them silently.
	StrictCustomTags bool

	// Cancel is an externally settable flag; when set, the parse fails
	// with ErrCancelled. The parser allocates its own when nil.
	Cancel *atomic.Bool

	// FileObservers are invoked with read progress.
	FileObservers []FileObserver

	// ParseObservers are invoked after each top-level record is hydrated.
	ParseObservers []ParseObserver

	// InternStrings extends the default set of interned strings.
	InternStrings []string
}

func defaultParserOptions() Options {
	return Options{ReadNotificationRate: DefaultReadNotificationRate}
}

func normalizeOptions(opts Options) Options {
	if opts.ReadNotificationRate <= 0 {
		opts.ReadNotificationRate = DefaultReadNotificationRate
	}
	if opts.Cancel == nil {
		opts.Cancel = new(atomic.Bool)
	}
	return opts
}

// OptReadNotificationRate sets the number of lines between file progress
// events.
func OptReadNotificationRate(lines int) Option {
	return func(opts *Options) {
		opts.ReadNotificationRate = lines
	}
}

// OptStrictLineBreaks warns on line terminators other than \r\n and \n.
func OptStrictLineBreaks() Option {
	return func(opts *Options) {
		opts.StrictLineBreaks = true
	}
}

// OptStrictCustomTags warns on underscore-prefixed tags instead of
// accepting them silently.
func OptStrictCustomTags() Option {
	return func(opts *Options) {
		opts.StrictCustomTags = true
	}
}

// OptCancelFlag supplies the flag used to cancel a parse from another
// goroutine.
func OptCancelFlag(flag *atomic.Bool) Option {
	return func(opts *Options) {
		opts.Cancel = flag
	}
}

// OptFileObserver registers a callback for read progress events.
func OptFileObserver(obs FileObserver) Option {
	return func(opts *Options) {
		opts.FileObservers = append(opts.FileObservers, obs)
	}
}

// OptParseObserver registers a callback invoked after each top-level
// record is hydrated.
func OptParseObserver(obs ParseObserver) Option {
	return func(opts *Options) {
		opts.ParseObservers = append(opts.ParseObservers, obs)
	}
}

// OptInternStrings extends the set of strings interned by the line
// readers.
func OptInternStrings(values ...string) Option {
	return func(opts *Options) {
		opts.InternStrings = append(opts.InternStrings, values...)
	}
}
