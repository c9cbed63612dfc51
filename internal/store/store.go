// Package store implements the fabcore entity store: durable, typed CRUD over
// named collections, each persisted as a single JSON blob in the substrate.
// Every mutation is a read-transform-write over one whole collection; the
// in-memory slice is only swapped after the substrate write succeeds.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fabcore/pkg/domain"
)

// KeyPrefix namespaces every fabcore key in the substrate so collections can
// be enumerated and bulk-exported without colliding with unrelated data.
const KeyPrefix = "fabcore/"

// VersionKey is the reserved key holding the schema version marker. Only the
// seed controller writes it.
const VersionKey = KeyPrefix + "schema_version"

func collectionKey(entity domain.EntityType) string {
	return KeyPrefix + string(entity)
}

type record[E any] interface {
	Clone() E
}

type recordPtr[E any] interface {
	*E
	RecordBase() *domain.Base
}

// collection is one insertion-ordered typed collection.
type collection[E record[E]] struct {
	entity domain.EntityType
	items  []E
}

// Store owns every collection exclusively; no other component writes the
// substrate directly. Calls are serialized by the embedding process (single
// logical writer); the mutex guards reads taken from other goroutines.
type Store struct {
	mu        sync.RWMutex
	substrate domain.Substrate
	log       *zap.Logger
	metrics   *Metrics
	nowFn     func() time.Time

	customers      collection[domain.Customer]
	suppliers      collection[domain.Supplier]
	quotations     collection[domain.Quotation]
	salesOrders    collection[domain.SalesOrder]
	projects       collection[domain.EngineeringProject]
	drawings       collection[domain.EngineeringDrawing]
	changes        collection[domain.EngineeringChange]
	boms           collection[domain.BillOfMaterials]
	boqs           collection[domain.BillOfQuantities]
	workOrders     collection[domain.ProductionWorkOrder]
	processSteps   collection[domain.ProcessStep]
	workstations   collection[domain.Workstation]
	operators      collection[domain.Operator]
	activities     collection[domain.ShopfloorActivity]
	inspections    collection[domain.QualityInspection]
	qualityTests   collection[domain.QualityTest]
	items          collection[domain.Item]
	locations      collection[domain.Location]
	invoices       collection[domain.Invoice]
	purchaseOrders collection[domain.PurchaseOrder]
	subcontractors collection[domain.ProjectSubcontractor]
	subWorkOrders  collection[domain.SubcontractorWorkOrder]
}

// Option configures optional store collaborators.
type Option func(*Store)

// WithLogger sets the logger used for recoverable load warnings.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetrics attaches a Prometheus recorder to every store operation.
func WithMetrics(m *Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithNowFunc overrides the time source. Tests use this to pin timestamps.
func WithNowFunc(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.nowFn = now
		}
	}
}

// New constructs a store over the given substrate and hydrates every
// collection from it. A collection blob that fails to parse is logged and
// treated as empty so one corrupted blob cannot take down the whole store;
// a substrate read failure during hydration is a hard error.
func New(ctx context.Context, sub domain.Substrate, opts ...Option) (*Store, error) {
	s := &Store{
		substrate: sub,
		log:       zap.NewNop(),
		nowFn:     func() time.Time { return time.Now().UTC() },

		customers:      collection[domain.Customer]{entity: domain.EntityCustomer},
		suppliers:      collection[domain.Supplier]{entity: domain.EntitySupplier},
		quotations:     collection[domain.Quotation]{entity: domain.EntityQuotation},
		salesOrders:    collection[domain.SalesOrder]{entity: domain.EntitySalesOrder},
		projects:       collection[domain.EngineeringProject]{entity: domain.EntityEngineeringProject},
		drawings:       collection[domain.EngineeringDrawing]{entity: domain.EntityEngineeringDrawing},
		changes:        collection[domain.EngineeringChange]{entity: domain.EntityEngineeringChange},
		boms:           collection[domain.BillOfMaterials]{entity: domain.EntityBillOfMaterials},
		boqs:           collection[domain.BillOfQuantities]{entity: domain.EntityBillOfQuantities},
		workOrders:     collection[domain.ProductionWorkOrder]{entity: domain.EntityProductionWorkOrder},
		processSteps:   collection[domain.ProcessStep]{entity: domain.EntityProcessStep},
		workstations:   collection[domain.Workstation]{entity: domain.EntityWorkstation},
		operators:      collection[domain.Operator]{entity: domain.EntityOperator},
		activities:     collection[domain.ShopfloorActivity]{entity: domain.EntityShopfloorActivity},
		inspections:    collection[domain.QualityInspection]{entity: domain.EntityQualityInspection},
		qualityTests:   collection[domain.QualityTest]{entity: domain.EntityQualityTest},
		items:          collection[domain.Item]{entity: domain.EntityItem},
		locations:      collection[domain.Location]{entity: domain.EntityLocation},
		invoices:       collection[domain.Invoice]{entity: domain.EntityInvoice},
		purchaseOrders: collection[domain.PurchaseOrder]{entity: domain.EntityPurchaseOrder},
		subcontractors: collection[domain.ProjectSubcontractor]{entity: domain.EntityProjectSubcontractor},
		subWorkOrders:  collection[domain.SubcontractorWorkOrder]{entity: domain.EntitySubcontractorWorkOrder},
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	if err := loadCollection(ctx, s, &s.customers); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.suppliers); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.quotations); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.salesOrders); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.projects); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.drawings); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.changes); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.boms); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.boqs); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.workOrders); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.processSteps); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.workstations); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.operators); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.activities); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.inspections); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.qualityTests); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.items); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.locations); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.invoices); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.purchaseOrders); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, &s.subcontractors); err != nil {
		return err
	}
	return loadCollection(ctx, s, &s.subWorkOrders)
}

// newID returns an identifier unique for the process lifetime and extremely
// unlikely to collide across restarts: base36 millisecond prefix plus a short
// random suffix. Best-effort, acceptable with one writer at a time.
func (s *Store) newID() string {
	return strconv.FormatInt(s.nowFn().UnixMilli(), 36) + "-" + uuid.NewString()[:8]
}

// SchemaVersion reads the stored schema version marker, if any.
func (s *Store) SchemaVersion(ctx context.Context) (string, bool, error) {
	payload, ok, err := s.substrate.Read(ctx, VersionKey)
	if err != nil || !ok {
		return "", false, err
	}
	return string(payload), true, nil
}

// WriteSchemaVersion persists the schema version marker. Reserved for the
// seed controller.
func (s *Store) WriteSchemaVersion(ctx context.Context, version string) error {
	return s.substrate.Write(ctx, VersionKey, []byte(version))
}

func (s *Store) observe(op string, entity domain.EntityType, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.observe(op, string(entity), time.Since(start), err)
}

func loadCollection[E record[E]](ctx context.Context, s *Store, c *collection[E]) error {
	payload, ok, err := s.substrate.Read(ctx, collectionKey(c.entity))
	if err != nil {
		return fmt.Errorf("load %s: %w", c.entity, err)
	}
	if !ok {
		return nil
	}
	var items []E
	if err := json.Unmarshal(payload, &items); err != nil {
		s.log.Warn("corrupt collection payload, treating as empty",
			zap.String("collection", string(c.entity)), zap.Error(err))
		return nil
	}
	c.items = items
	return nil
}

// persistCollection writes the candidate slice; callers swap it into the
// collection only on success so a failed write leaves memory untouched.
func persistCollection[E record[E]](ctx context.Context, s *Store, entity domain.EntityType, items []E) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", entity, err)
	}
	if err := s.substrate.Write(ctx, collectionKey(entity), payload); err != nil {
		return fmt.Errorf("persist %s: %w", entity, err)
	}
	return nil
}

func listRecords[E record[E]](s *Store, c *collection[E]) []E {
	start := s.nowSafe()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]E, 0, len(c.items))
	for _, e := range c.items {
		out = append(out, e.Clone())
	}
	s.observe("list", c.entity, start, nil)
	return out
}

func getRecord[E record[E], P recordPtr[E]](s *Store, c *collection[E], id string) (E, bool) {
	start := s.nowSafe()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range c.items {
		if P(&c.items[i]).RecordBase().ID == id {
			s.observe("get", c.entity, start, nil)
			return c.items[i].Clone(), true
		}
	}
	s.observe("get", c.entity, start, nil)
	var zero E
	return zero, false
}

func createRecord[E record[E], P recordPtr[E]](ctx context.Context, s *Store, c *collection[E], e E) (E, error) {
	start := s.nowSafe()
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero E
	base := P(&e).RecordBase()
	if base.ID == "" {
		base.ID = s.newID()
	}
	for i := range c.items {
		if P(&c.items[i]).RecordBase().ID == base.ID {
			err := fmt.Errorf("%s %q already exists", c.entity, base.ID)
			s.observe("create", c.entity, start, err)
			return zero, err
		}
	}
	now := s.nowFn()
	base.CreatedAt = now
	base.UpdatedAt = now
	next := make([]E, 0, len(c.items)+1)
	next = append(next, c.items...)
	next = append(next, e.Clone())
	if err := persistCollection(ctx, s, c.entity, next); err != nil {
		s.observe("create", c.entity, start, err)
		return zero, err
	}
	c.items = next
	s.observe("create", c.entity, start, nil)
	return e.Clone(), nil
}

// updateRecord applies the mutator to a copy of the record. Not-found is
// reported as ok=false with no error and no write. ID and CreatedAt are
// restored after the mutator runs so they stay immutable.
func updateRecord[E record[E], P recordPtr[E]](ctx context.Context, s *Store, c *collection[E], id string, mutate func(*E) error) (E, bool, error) {
	start := s.nowSafe()
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero E
	for i := range c.items {
		if P(&c.items[i]).RecordBase().ID != id {
			continue
		}
		current := c.items[i].Clone()
		if err := mutate(&current); err != nil {
			s.observe("update", c.entity, start, err)
			return zero, false, err
		}
		base := P(&current).RecordBase()
		prior := P(&c.items[i]).RecordBase()
		base.ID = id
		base.CreatedAt = prior.CreatedAt
		base.UpdatedAt = s.nowFn()
		next := make([]E, len(c.items))
		copy(next, c.items)
		next[i] = current.Clone()
		if err := persistCollection(ctx, s, c.entity, next); err != nil {
			s.observe("update", c.entity, start, err)
			return zero, false, err
		}
		c.items = next
		s.observe("update", c.entity, start, nil)
		return current.Clone(), true, nil
	}
	s.observe("update", c.entity, start, nil)
	return zero, false, nil
}

func deleteRecord[E record[E], P recordPtr[E]](ctx context.Context, s *Store, c *collection[E], id string) (bool, error) {
	start := s.nowSafe()
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range c.items {
		if P(&c.items[i]).RecordBase().ID != id {
			continue
		}
		next := make([]E, 0, len(c.items)-1)
		next = append(next, c.items[:i]...)
		next = append(next, c.items[i+1:]...)
		if err := persistCollection(ctx, s, c.entity, next); err != nil {
			s.observe("delete", c.entity, start, err)
			return false, err
		}
		c.items = next
		s.observe("delete", c.entity, start, nil)
		return true, nil
	}
	s.observe("delete", c.entity, start, nil)
	return false, nil
}

func (s *Store) nowSafe() time.Time {
	if s.metrics == nil {
		return time.Time{}
	}
	return time.Now()
}
