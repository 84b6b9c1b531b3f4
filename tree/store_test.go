package tree

import (
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)
	tr := weatherTree(t)
	id, err := s.Create(ctx, tr)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got != tr {
		t.Errorf("expected stored tree back")
	}
	other := New(NewLeaf("Yes"), tr.Target())
	if err = s.Store(ctx, id, other); err != nil {
		t.Fatal(err)
	}
	if got, _ = s.Get(ctx, id); got != other {
		t.Errorf("expected updated tree back")
	}
	if err = s.Store(ctx, "missing", other); err == nil {
		t.Errorf("expected error storing over a missing tree")
	}
	if err = s.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	if got, _ = s.Get(ctx, id); got != nil {
		t.Errorf("expected deleted tree to be gone")
	}
}
