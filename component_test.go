package backstage

import (
	"errors"
	"testing"
)

func TestAddThenGetRoundTrip(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()

	tests := []struct {
		name string
		add  Position
		want Position
	}{
		{"Zero value", Position{}, Position{}},
		{"Negative coordinates", Position{X: -3, Y: -7}, Position{X: -3, Y: -7}},
		{"Fractional coordinates", Position{X: 0.5, Y: 1.25}, Position{X: 0.5, Y: 1.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := newTestCoordinator()
			entity := cd.Create()

			if err := posComp.Add(cd, entity, tt.add); err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if !posComp.Has(cd, entity) {
				t.Fatal("Has() = false after Add")
			}
			got, err := posComp.Get(cd, entity)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("Get() = %+v, want %+v", *got, tt.want)
			}
			// A type never attached must not read as present.
			if velComp.Has(cd, entity) {
				t.Error("Has() = true for unattached component type")
			}
		})
	}
}

func TestGetReturnsMutableReference(t *testing.T) {
	cd := newTestCoordinator()
	posComp := FactoryNewComponent[Position]()

	entity := cd.Create()
	posComp.Add(cd, entity, Position{X: 1})

	pos, err := posComp.Get(cd, entity)
	if err != nil {
		t.Fatal(err)
	}
	pos.X = 42

	again, _ := posComp.Get(cd, entity)
	if again.X != 42 {
		t.Errorf("in-place mutation lost, got %v", again.X)
	}
}

func TestAddOverwritesInPlace(t *testing.T) {
	cd := newTestCoordinator()
	posComp := FactoryNewComponent[Position]()

	entity := cd.Create()
	posComp.Add(cd, entity, Position{X: 1})
	posComp.Add(cd, entity, Position{X: 2})

	got, err := posComp.Get(cd, entity)
	if err != nil {
		t.Fatal(err)
	}
	if got.X != 2 {
		t.Errorf("overwrite not applied, got %v", got.X)
	}
}

func TestRemoveComponent(t *testing.T) {
	cd := newTestCoordinator()
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()

	entity := cd.Create()
	posComp.Add(cd, entity, Position{X: 1})
	velComp.Add(cd, entity, Velocity{X: 2})

	if err := posComp.Remove(cd, entity); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if posComp.Has(cd, entity) {
		t.Error("Has() = true after Remove")
	}

	_, err := posComp.Get(cd, entity)
	var notFound ComponentNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Get() after Remove error = %v, want ComponentNotFoundError", err)
	}

	// Other component types are untouched.
	if !velComp.Has(cd, entity) {
		t.Error("unrelated component removed")
	}

	// Removing again, and removing a type with no pool, are no-ops.
	if err := posComp.Remove(cd, entity); err != nil {
		t.Errorf("second Remove() error = %v", err)
	}
	healthComp := FactoryNewComponent[Health]()
	if err := healthComp.Remove(cd, entity); err != nil {
		t.Errorf("Remove() of never-pooled type error = %v", err)
	}
}

func TestSwapRemoveKeepsOtherEntitiesResolvable(t *testing.T) {
	cd := newTestCoordinator()
	posComp := FactoryNewComponent[Position]()

	const n = 8
	entities := make([]Entity, n)
	for i := range entities {
		entities[i] = cd.Create()
		posComp.Add(cd, entities[i], Position{X: float64(i) * 10})
	}

	// Remove one from the middle; every other value must survive intact.
	posComp.Remove(cd, entities[3])

	for i, entity := range entities {
		if i == 3 {
			continue
		}
		got, err := posComp.Get(cd, entity)
		if err != nil {
			t.Fatalf("entity %d unresolvable after middle removal: %v", i, err)
		}
		if got.X != float64(i)*10 {
			t.Errorf("entity %d value = %v, want %v", i, got.X, float64(i)*10)
		}
	}
}

func TestGetOnForeignEntityFails(t *testing.T) {
	cd := newTestCoordinator()
	posComp := FactoryNewComponent[Position]()

	bogus := Entity{id: 9999}
	if err := posComp.Add(cd, bogus, Position{}); err == nil {
		t.Error("Add() on unknown entity should fail")
	}
	if _, err := posComp.Get(cd, bogus); err == nil {
		t.Error("Get() on unknown entity should fail")
	}
}
