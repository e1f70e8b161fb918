package backstage

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// Component identifies one component type. Identities are created once via
// FactoryNewComponent and reused; the coordinator's schema assigns each
// identity its stable numeric type id.
type Component interface {
	table.ElementType
}

// System is a behavior unit matched to all entities whose signature covers the
// system's required signature. Concrete systems satisfy it by embedding
// *BaseSystem.
type System interface {
	Signature() mask.Mask
	Entities() []Entity
	EntitySeq() iter.Seq[Entity]

	base() *BaseSystem
}

// componentPool is the type-erased face of a pool[T], uniform across all
// component types so pools can live in one slice indexed by type id.
type componentPool interface {
	remove(id EntityID)
	size() int
}
