package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/datepicker/pkg/date"
)

func TestStoreGetListDelete(t *testing.T) {
	p, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	when := date.Of(2024, time.March, 5, 0, 0, 0, time.UTC)
	for _, name := range []string{"release", "birthday/mine", ""} {
		pick := &Pick{Name: name, Value: when, Text: "03/05/2024", Format: "mm/dd/yyyy"}
		err := p.Store(pick)
		if name == "" {
			if err == nil {
				t.Fatalf("expected error for unnamed pick")
			}
			continue
		}
		if err != nil {
			t.Fatalf("store %q: %v", name, err)
		}
		if pick.Updated.IsZero() {
			t.Fatalf("expected updated to be stamped")
		}
	}

	got, err := p.Get("birthday/mine")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Value.SameDay(when.Time) || got.Text != "03/05/2024" {
		t.Fatalf("unexpected pick %+v", got)
	}

	all := p.List(context.Background())
	if len(all) != 2 || all[0].Name != "birthday/mine" || all[1].Name != "release" {
		t.Fatalf("unexpected list %+v", all)
	}

	if err := p.Delete("release"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := p.Get("release"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := p.Delete("release"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestStoreOverwrites(t *testing.T) {
	p, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	first := date.Of(2024, time.January, 1, 0, 0, 0, time.UTC)
	second := date.Of(2025, time.February, 2, 0, 0, 0, time.UTC)
	if err := p.Store(&Pick{Name: "x", Value: first}); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := p.Store(&Pick{Name: "x", Value: second}); err != nil {
		t.Fatalf("store: %v", err)
	}
	got, err := p.Get("x")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Value.Year() != 2025 {
		t.Fatalf("expected overwrite, got %s", got.Value)
	}
	if n := len(p.List(context.Background())); n != 1 {
		t.Fatalf("expected one pick, got %d", n)
	}
}

func TestKeyRoundTrip(t *testing.T) {
	for _, name := range []string{"a", "with-dash", "slash/and space", "ünï"} {
		if got := fromKey(toKey(name)); got != name {
			t.Fatalf("expected %q, got %q", name, got)
		}
		pk := keyToPathTransform(toKey(name))
		if pathToKeyTransform(pk) != toKey(name) {
			t.Fatalf("transform mismatch for %q", name)
		}
	}
	if _, err := Load(" "); err == nil {
		t.Fatalf("expected error for empty base path")
	}
}
