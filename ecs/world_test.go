package ecs

import (
	"testing"

	"github.com/milk9111/minimapicons/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get[int](w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
				},
				teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get[float64](w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove[float64](w, e1, h3.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()

				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ka, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, intPtr(3)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, kb, intPtr(4)); err != nil {
					t.Fatal(err)
				}

				res := Query(w, ka, kb)
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponentKind[int]()
				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}
				if res := Query(w, ka); len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if res := Query(w, ka, kb); res != nil {
					t.Fatalf("expected nil when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot reuse, got %d and %d", old.id(), reused.id())
	}
	if reused == old {
		t.Fatalf("expected a new generation")
	}
	if err := Add(w, old, k, intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	if Has(w, reused, k) {
		t.Fatalf("reused entity must not inherit components")
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[string]()
	if _, ok := First(w, k); ok {
		t.Fatalf("expected no entity")
	}
	CreateEntity(w)
	e := CreateEntity(w)
	if err := Add(w, e, k, stringPtr("x")); err != nil {
		t.Fatal(err)
	}
	got, ok := First(w, k)
	if !ok || got != e {
		t.Fatalf("expected %v, got %v ok=%v", e, got, ok)
	}
}

type countingSystem struct {
	updates int
	drained int
}

func (c *countingSystem) Update(w *World) {
	c.updates++
	c.drained += len(w.Events().Drain())
}

type pushSystem struct{}

func (pushSystem) Update(w *World) {
	w.Events().Push(Event{Type: "tick"})
}

func TestSchedulerEvents(t *testing.T) {
	w := NewWorld()
	late := &countingSystem{}
	s := NewScheduler(late, pushSystem{})

	s.Update(w)
	s.Update(w)
	if late.updates != 2 {
		t.Fatalf("expected 2 updates, got %d", late.updates)
	}
	// events pushed after a reader ran are dropped at the end of the tick
	if late.drained != 0 {
		t.Fatalf("expected no events to reach an earlier system, got %d", late.drained)
	}

	early := &countingSystem{}
	s = NewScheduler(pushSystem{}, early)
	s.Update(w)
	if early.drained != 1 {
		t.Fatalf("expected 1 event, got %d", early.drained)
	}
}
