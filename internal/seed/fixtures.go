package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"fabcore/internal/store"
	"fabcore/pkg/domain"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Fixtures decodes the bundled dataset into a store snapshot. Records carry
// fixed identifiers so the fixture reference graph stays intact across
// reseeds; missing timestamps are stamped with now.
func Fixtures(now time.Time) (store.Snapshot, error) {
	// YAML decodes into generic maps first, then through JSON so the domain
	// entities keep a single set of field tags.
	var raw map[string]any
	if err := yaml.Unmarshal(fixturesYAML, &raw); err != nil {
		return store.Snapshot{}, fmt.Errorf("parse fixtures yaml: %w", err)
	}
	bridge, err := json.Marshal(raw)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("bridge fixtures: %w", err)
	}
	var snapshot store.Snapshot
	if err := json.Unmarshal(bridge, &snapshot); err != nil {
		return store.Snapshot{}, fmt.Errorf("decode fixtures: %w", err)
	}
	stampSnapshot(&snapshot, now)
	return snapshot, nil
}

func stampSnapshot(s *store.Snapshot, now time.Time) {
	stamp(s.Customers, now)
	stamp(s.Suppliers, now)
	stamp(s.Quotations, now)
	stamp(s.SalesOrders, now)
	stamp(s.Projects, now)
	stamp(s.Drawings, now)
	stamp(s.Changes, now)
	stamp(s.BOMs, now)
	stamp(s.BOQs, now)
	stamp(s.WorkOrders, now)
	stamp(s.ProcessSteps, now)
	stamp(s.Workstations, now)
	stamp(s.Operators, now)
	stamp(s.Activities, now)
	stamp(s.Inspections, now)
	stamp(s.QualityTests, now)
	stamp(s.Items, now)
	stamp(s.Locations, now)
	stamp(s.Invoices, now)
	stamp(s.PurchaseOrders, now)
	stamp(s.Subcontractors, now)
	stamp(s.SubWorkOrders, now)
}

func stamp[E any, P interface {
	*E
	RecordBase() *domain.Base
}](items []E, now time.Time) {
	for i := range items {
		base := P(&items[i]).RecordBase()
		if base.CreatedAt.IsZero() {
			base.CreatedAt = now
		}
		if base.UpdatedAt.Before(base.CreatedAt) {
			base.UpdatedAt = base.CreatedAt
		}
	}
}
