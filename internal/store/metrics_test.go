package store_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"fabcore/internal/store"
	"fabcore/pkg/domain"
	"fabcore/testutil"
)

func TestOperationsAreObserved(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	s, err := store.New(ctx, testutil.NewFakeSubstrate(),
		store.WithMetrics(store.NewMetrics(reg)))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	created, err := s.CreateCustomer(ctx, domain.Customer{Name: "observed"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	s.ListCustomers()
	s.GetCustomer(created.ID)
	if _, err := s.DeleteCustomer(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	counts := map[string]bool{}
	for _, mf := range families {
		counts[mf.GetName()] = true
	}
	if !counts["fabcore_store_operations_total"] {
		t.Fatal("operation counter not registered")
	}
	if !counts["fabcore_store_operation_duration_seconds"] {
		t.Fatal("duration histogram not registered")
	}

	for _, mf := range families {
		if mf.GetName() != "fabcore_store_operations_total" {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		if total < 4 {
			t.Fatalf("expected at least 4 observed operations, got %v", total)
		}
	}
}
