package mimemap

type readConfig struct {
	limits   Limits
	validate bool
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

// WithValidation runs Validate on the decoded map, turning out-of-range
// indices and non-finite floats into errors.
func WithValidation(v bool) ReadOption {
	return func(c *readConfig) { c.validate = v }
}

func newReadConfig(opts []ReadOption) readConfig {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}

type writeConfig struct {
	limits      Limits
	validate    bool
	concurrency int
}

type WriteOption func(*writeConfig)

func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

// WithValidationOnWrite runs Validate before encoding.
func WithValidationOnWrite(v bool) WriteOption {
	return func(c *writeConfig) { c.validate = v }
}

// WithConcurrency encodes up to n sectors at a time. The output is identical
// to a sequential encode. Values below 2 encode sequentially.
func WithConcurrency(n int) WriteOption {
	return func(c *writeConfig) { c.concurrency = n }
}

func newWriteConfig(opts []WriteOption) writeConfig {
	cfg := writeConfig{limits: defaultLimits(), concurrency: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}
