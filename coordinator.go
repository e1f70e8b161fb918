package backstage

import (
	"cmp"
	"reflect"
	"slices"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	"go.uber.org/zap"
)

// Coordinator is the central orchestrator: it owns entity id allocation and
// recycling, the component pools, the system registry, the per-entity
// signature table, the staged creation/destruction sets, and the tag/group
// indices. It is not safe for concurrent use; all mutation must be externally
// serialized.
type Coordinator struct {
	log *zap.Logger

	numEntities uint32
	freeIDs     []EntityID

	// Staged structural changes, committed by Update. Creation and
	// destruction are deferred so that neither can perturb a system's
	// entity list mid-iteration; component attachment is not deferred.
	pendingCreate     []Entity
	pendingDestroy    []Entity
	pendingDestroySet map[EntityID]struct{}

	signatures []mask.Mask
	live       map[EntityID]Entity

	schema table.Schema
	pools  []componentPool

	systems map[reflect.Type]System

	entityPerTag map[string]Entity
	tagPerEntity map[EntityID]string

	entitiesPerGroup map[string]map[Entity]struct{}
	groupsPerEntity  map[EntityID]map[string]struct{}
}

func newCoordinator(schema table.Schema, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{
		log:               log,
		pendingDestroySet: make(map[EntityID]struct{}),
		live:              make(map[EntityID]Entity),
		schema:            schema,
		systems:           make(map[reflect.Type]System),
		entityPerTag:      make(map[string]Entity),
		tagPerEntity:      make(map[EntityID]string),
		entitiesPerGroup:  make(map[string]map[Entity]struct{}),
		groupsPerEntity:   make(map[EntityID]map[string]struct{}),
	}
}

// Create allocates an entity id, reusing the oldest reclaimed id when one is
// available, and stages the entity for creation. The entity is not visible to
// any system until the next Update.
func (cd *Coordinator) Create() Entity {
	var id EntityID
	if len(cd.freeIDs) > 0 {
		id = cd.freeIDs[0]
		cd.freeIDs = cd.freeIDs[1:]
	} else {
		id = EntityID(cd.numEntities)
		cd.numEntities++
		if int(id) >= len(cd.signatures) {
			newSize := 2
			if len(cd.signatures) > 0 {
				newSize = 2 * len(cd.signatures)
			}
			grown := make([]mask.Mask, newSize)
			copy(grown, cd.signatures)
			cd.signatures = grown
		}
	}
	entity := Entity{id: id}
	cd.pendingCreate = append(cd.pendingCreate, entity)
	cd.log.Debug("entity created", zap.Uint32("id", uint32(id)))
	return entity
}

// Destroy stages the entity for destruction. Pools, signatures, system
// membership, and tag/group indices are untouched until the next Update.
func (cd *Coordinator) Destroy(entity Entity) {
	if _, staged := cd.pendingDestroySet[entity.ID()]; staged {
		return
	}
	cd.pendingDestroySet[entity.ID()] = struct{}{}
	cd.pendingDestroy = append(cd.pendingDestroy, entity)
	cd.log.Debug("entity destruction staged", zap.Uint32("id", uint32(entity.ID())))
}

// Update reconciles staged structural changes. It must be called exactly once
// per simulation step, before any system's own update runs.
//
// Creations commit first: each staged entity is matched against every
// registered system. Destructions commit second: the entity leaves every
// system, its signature is reset, every pool drops it, its id is reclaimed,
// and its tag and group memberships are removed.
func (cd *Coordinator) Update() {
	created := len(cd.pendingCreate)
	destroyed := len(cd.pendingDestroy)

	for _, entity := range cd.pendingCreate {
		cd.addEntityToSystems(entity)
		cd.live[entity.ID()] = entity
	}
	cd.pendingCreate = cd.pendingCreate[:0]

	for _, entity := range cd.pendingDestroy {
		if _, alive := cd.live[entity.ID()]; !alive {
			continue // stale handle; its id was already reclaimed
		}
		cd.removeEntityFromSystems(entity)

		var empty mask.Mask
		cd.signatures[entity.ID()] = empty

		for _, p := range cd.pools {
			if p != nil {
				p.remove(entity.ID())
			}
		}

		cd.freeIDs = append(cd.freeIDs, entity.ID())
		cd.RemoveEntityTag(entity)
		cd.RemoveEntityGroups(entity)
		delete(cd.live, entity.ID())
	}
	cd.pendingDestroy = cd.pendingDestroy[:0]
	clear(cd.pendingDestroySet)

	if created > 0 || destroyed > 0 {
		cd.log.Debug("reconciled",
			zap.Int("created", created),
			zap.Int("destroyed", destroyed),
		)
	}
}

func (cd *Coordinator) addEntityToSystems(entity Entity) {
	if int(entity.ID()) >= len(cd.signatures) {
		return
	}
	signature := cd.signatures[entity.ID()]
	for _, sys := range cd.systems {
		if signature.ContainsAll(sys.base().signature) {
			sys.base().addEntity(entity)
		}
	}
}

func (cd *Coordinator) removeEntityFromSystems(entity Entity) {
	for _, sys := range cd.systems {
		sys.base().removeEntity(entity)
	}
}

// liveEntities snapshots the reconciled entities in id order.
func (cd *Coordinator) liveEntities() []Entity {
	entities := make([]Entity, 0, len(cd.live))
	for _, entity := range cd.live {
		entities = append(entities, entity)
	}
	slices.SortFunc(entities, func(a, b Entity) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return entities
}

// registerComponent resolves the component's numeric type id, assigning one on
// first use, and makes room for its pool handle. Exceeding MaxComponentTypes
// fails fast rather than truncating signatures.
func (cd *Coordinator) registerComponent(c Component) (uint32, error) {
	cd.schema.Register(c)
	bit := cd.schema.RowIndexFor(c)
	if bit >= MaxComponentTypes {
		return 0, ComponentCapacityError{Limit: MaxComponentTypes}
	}
	for int(bit) >= len(cd.pools) {
		cd.pools = append(cd.pools, nil)
	}
	return bit, nil
}

// RowIndexFor returns the numeric type id assigned to a registered component.
func (cd *Coordinator) RowIndexFor(c Component) uint32 {
	return cd.schema.RowIndexFor(c)
}

func (cd *Coordinator) signatureOf(entity Entity) (*mask.Mask, error) {
	if int(entity.ID()) >= len(cd.signatures) {
		return nil, EntityNotFoundError{Entity: entity}
	}
	return &cd.signatures[entity.ID()], nil
}

// poolFor lazily constructs T's pool on first use. The downcast is guarded by
// the schema-assigned type id indexing the slice.
func poolFor[T any](cd *Coordinator, bit uint32) *pool[T] {
	if cd.pools[bit] == nil {
		cd.pools[bit] = newPool[T](Config.defaultPoolCapacity)
		cd.log.Debug("component pool created", zap.Uint32("typeID", bit))
	}
	return cd.pools[bit].(*pool[T])
}
