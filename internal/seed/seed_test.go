package seed

import (
	"context"
	"errors"
	"testing"

	"shopsmart/internal/catalog"
	"shopsmart/internal/domain"
)

type stubWriter struct {
	items  []domain.Product
	failAt int
}

func (s *stubWriter) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.failAt > 0 && len(s.items) == s.failAt {
		return nil, errors.New("boom")
	}
	s.items = append(s.items, p)
	return &p, nil
}

func TestApply_WritesBuiltinInOrder(t *testing.T) {
	w := &stubWriter{}
	n, err := Apply(context.Background(), w)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := catalog.Builtin()
	if n != len(want) || len(w.items) != len(want) {
		t.Fatalf("expected %d products, got n=%d saved=%d", len(want), n, len(w.items))
	}
	for i := range want {
		if w.items[i].Name != want[i].Name || w.items[i].Category != want[i].Category {
			t.Fatalf("item %d: expected %s/%s, got %s/%s", i, want[i].Category, want[i].Name, w.items[i].Category, w.items[i].Name)
		}
	}
}

func TestApply_StopsOnError(t *testing.T) {
	w := &stubWriter{failAt: 3}
	n, err := Apply(context.Background(), w)
	if err == nil {
		t.Fatalf("expected error")
	}
	if n != 3 {
		t.Fatalf("expected 3 products written before failure, got %d", n)
	}
}
