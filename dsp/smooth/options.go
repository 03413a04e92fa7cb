package smooth

import "github.com/cwbudde/algo-smooth/dsp/window"

// Progress receives the completion fraction of a smoothing run, in (0, 1].
// It is called once per output index with monotonically increasing values.
// The callback is purely observational and must not influence the result.
type Progress func(fraction float64)

// StrengthNotice is informed when a requested smoothing strength was
// silently corrected to the nearest supported value.
type StrengthNotice func(requested float64, used int)

// Option configures a smoothing run.
type Option func(*config)

type config struct {
	table    *window.Table
	progress Progress
	notice   StrengthNotice
}

func applyOptions(opts ...Option) config {
	cfg := config{table: window.Default()}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithProgress installs a completion callback.
func WithProgress(p Progress) Option {
	return func(c *config) {
		c.progress = p
	}
}

// WithTable uses a custom window table instead of the shared default.
func WithTable(t *window.Table) Option {
	return func(c *config) {
		if t != nil {
			c.table = t
		}
	}
}

// WithStrengthNotice reports strength corrections on the accelerated
// engines. Corrections stay non-fatal either way.
func WithStrengthNotice(n StrengthNotice) Option {
	return func(c *config) {
		c.notice = n
	}
}

func (c *config) notifyStrength(requested float64, used int) {
	if c.notice != nil && float64(used) != requested {
		c.notice(requested, used)
	}
}

func (c *config) reportProgress(done, total int) {
	if c.progress != nil && total > 0 {
		c.progress(float64(done) / float64(total))
	}
}
