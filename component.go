package backstage

import (
	"github.com/TheBitDrifter/mask"
)

// MaxComponentTypes bounds the number of distinct component types one
// coordinator can register; it is the width of the signature bitset contract.
const MaxComponentTypes = 32

// AccessibleComponent extends a base Component identity with typed access
// against a coordinator's pools.
type AccessibleComponent[T any] struct {
	Component
}

// Add constructs the entity's T slot from value, inserting new if absent or
// overwriting in place if already present, and sets the entity's signature
// bit. Unlike entity creation/destruction the effect is immediate.
func (c AccessibleComponent[T]) Add(cd *Coordinator, entity Entity, value T) error {
	bit, err := cd.registerComponent(c.Component)
	if err != nil {
		return err
	}
	sig, err := cd.signatureOf(entity)
	if err != nil {
		return err
	}
	poolFor[T](cd, bit).set(entity.ID(), value)
	sig.Mark(bit)
	return nil
}

// Remove detaches T from the entity. It is a no-op when T has no pool yet or
// the entity lacks the component.
func (c AccessibleComponent[T]) Remove(cd *Coordinator, entity Entity) error {
	bit, err := cd.registerComponent(c.Component)
	if err != nil {
		return err
	}
	sig, err := cd.signatureOf(entity)
	if err != nil {
		return err
	}
	if cd.pools[bit] == nil {
		return nil
	}
	cd.pools[bit].remove(entity.ID())
	sig.Unmark(bit)
	return nil
}

// Has reports whether the entity currently carries T, by signature bit test.
func (c AccessibleComponent[T]) Has(cd *Coordinator, entity Entity) bool {
	bit, err := cd.registerComponent(c.Component)
	if err != nil {
		return false
	}
	sig, err := cd.signatureOf(entity)
	if err != nil {
		return false
	}
	var required mask.Mask
	required.Mark(bit)
	return sig.ContainsAll(required)
}

// Get returns a pointer to the entity's T for direct, in-place mutation.
// A ComponentNotFoundError is returned when the entity lacks the component.
func (c AccessibleComponent[T]) Get(cd *Coordinator, entity Entity) (*T, error) {
	bit, err := cd.registerComponent(c.Component)
	if err != nil {
		return nil, err
	}
	if _, err := cd.signatureOf(entity); err != nil {
		return nil, err
	}
	if cd.pools[bit] == nil {
		return nil, ComponentNotFoundError{Component: c.Component}
	}
	value, present := cd.pools[bit].(*pool[T]).get(entity.ID())
	if !present {
		return nil, ComponentNotFoundError{Component: c.Component}
	}
	return value, nil
}
