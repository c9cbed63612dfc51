// Package seed ensures the store contains a known-good starting dataset
// exactly once per schema version. It is the sole writer of the schema
// version marker.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fabcore/internal/store"
)

// SchemaVersion is the compiled-in dataset version. Bump it whenever the
// bundled fixtures change shape; every installation reseeds once on the next
// boot after a bump.
const SchemaVersion = "1.2.0"

// Controller compares the stored version marker against the expected version
// and reseeds on mismatch.
type Controller struct {
	store   *store.Store
	log     *zap.Logger
	version string
	nowFn   func() time.Time
}

// Option configures the controller.
type Option func(*Controller)

// WithLogger sets the seed logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithVersion overrides the expected version. Tests use this to force or
// suppress reseeding.
func WithVersion(version string) Option {
	return func(c *Controller) { c.version = version }
}

// WithNowFunc overrides the fixture timestamp source.
func WithNowFunc(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.nowFn = now
		}
	}
}

// New constructs a controller over the given store.
func New(s *store.Store, opts ...Option) *Controller {
	c := &Controller{
		store:   s,
		log:     zap.NewNop(),
		version: SchemaVersion,
		nowFn:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ensure reseeds the store when the stored marker is absent or differs from
// the expected version, then rewrites the marker. Idempotent: repeated calls
// at the same version are no-ops. Any write failure during reseeding returns
// before the marker is touched, so the next boot retries.
func (c *Controller) Ensure(ctx context.Context) (bool, error) {
	current, ok, err := c.store.SchemaVersion(ctx)
	if err != nil {
		return false, fmt.Errorf("read schema version: %w", err)
	}
	if ok && current == c.version {
		return false, nil
	}
	snapshot, err := Fixtures(c.nowFn())
	if err != nil {
		return false, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := c.store.ImportState(ctx, snapshot); err != nil {
		return false, fmt.Errorf("reseed: %w", err)
	}
	if err := c.store.WriteSchemaVersion(ctx, c.version); err != nil {
		return false, fmt.Errorf("write schema version: %w", err)
	}
	c.log.Info("reseeded store",
		zap.String("from", current),
		zap.String("to", c.version))
	return true, nil
}
