package backstage

import (
	"iter"
	"reflect"

	"github.com/TheBitDrifter/mask"
	"go.uber.org/zap"
)

var _ System = &BaseSystem{}

// BaseSystem holds the required signature and the live matched-entity list.
// Concrete systems embed *BaseSystem and declare their requirements in their
// constructors, before registration.
type BaseSystem struct {
	signature mask.Mask
	entities  []Entity
}

func (s *BaseSystem) base() *BaseSystem { return s }

// Require marks a component type as required by this system. It must run
// before the system is registered: matching reads the signature value captured
// at registration time.
func (s *BaseSystem) Require(cd *Coordinator, c Component) error {
	bit, err := cd.registerComponent(c)
	if err != nil {
		return err
	}
	s.signature.Mark(bit)
	return nil
}

func (s *BaseSystem) Signature() mask.Mask {
	return s.signature
}

// Entities returns a snapshot of the matched entities in insertion order.
func (s *BaseSystem) Entities() []Entity {
	snapshot := make([]Entity, len(s.entities))
	copy(snapshot, s.entities)
	return snapshot
}

// EntitySeq iterates the matched list without copying. Destruction requested
// mid-iteration is deferred to the next reconciliation and cannot invalidate
// the sequence.
func (s *BaseSystem) EntitySeq() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, entity := range s.entities {
			if !yield(entity) {
				return
			}
		}
	}
}

func (s *BaseSystem) addEntity(entity Entity) {
	s.entities = append(s.entities, entity)
}

func (s *BaseSystem) removeEntity(entity Entity) {
	for i, other := range s.entities {
		if other.ID() == entity.ID() {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return
		}
	}
}

// AddSystem registers a system keyed by its concrete type. Re-adding an
// already-registered type replaces the previous instance and discards its
// matched-entity list; the new instance is matched against every live entity
// so its list is complete immediately after registration.
func AddSystem(cd *Coordinator, sys System) {
	key := reflect.TypeOf(sys)
	if _, replaced := cd.systems[key]; replaced {
		cd.log.Warn("replacing registered system; matched entities re-derived from the live set",
			zap.String("system", key.String()),
		)
	}
	cd.systems[key] = sys

	base := sys.base()
	base.entities = base.entities[:0]
	for _, entity := range cd.liveEntities() {
		if cd.signatures[entity.ID()].ContainsAll(base.signature) {
			base.addEntity(entity)
		}
	}
}

// RemoveSystem drops the system of type S, if registered.
func RemoveSystem[S System](cd *Coordinator) {
	delete(cd.systems, systemKey[S]())
}

// HasSystem reports whether a system of type S is registered.
func HasSystem[S System](cd *Coordinator) bool {
	_, registered := cd.systems[systemKey[S]()]
	return registered
}

// GetSystem returns the registered system of type S, or SystemNotFoundError.
func GetSystem[S System](cd *Coordinator) (S, error) {
	sys, registered := cd.systems[systemKey[S]()]
	if !registered {
		var zero S
		return zero, SystemNotFoundError{Type: systemKey[S]()}
	}
	return sys.(S), nil
}

func systemKey[S System]() reflect.Type {
	return reflect.TypeOf((*S)(nil)).Elem()
}
