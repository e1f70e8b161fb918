package backstage

// pool is dense, swap-remove storage for one component type. External entity
// ids map through entityToIndex onto movable slots in data; indexToEntity is
// kept aligned with data so the moved slot can be re-pointed in O(1).
//
// Invariant: for every entity present, indexToEntity[entityToIndex[id]] == id
// and data[entityToIndex[id]] holds that entity's value.
type pool[T any] struct {
	data          []T
	entityToIndex map[EntityID]int
	indexToEntity []EntityID
}

func newPool[T any](capacity int) *pool[T] {
	return &pool[T]{
		data:          make([]T, 0, capacity),
		entityToIndex: make(map[EntityID]int, capacity),
		indexToEntity: make([]EntityID, 0, capacity),
	}
}

// set inserts the value for an entity, or overwrites in place when the entity
// already has a slot. Overwrites do not move the dense index.
func (p *pool[T]) set(id EntityID, value T) {
	if index, present := p.entityToIndex[id]; present {
		p.data[index] = value
		return
	}
	p.entityToIndex[id] = len(p.data)
	p.indexToEntity = append(p.indexToEntity, id)
	p.data = append(p.data, value)
}

func (p *pool[T]) get(id EntityID) (*T, bool) {
	index, present := p.entityToIndex[id]
	if !present {
		return nil, false
	}
	return &p.data[index], true
}

func (p *pool[T]) has(id EntityID) bool {
	_, present := p.entityToIndex[id]
	return present
}

// remove is a no-op for absent entities; otherwise the removed slot is
// overwritten by the last live slot and both maps are updated for the moved
// entity. Dense order is not stable across removals.
func (p *pool[T]) remove(id EntityID) {
	indexOfRemoved, present := p.entityToIndex[id]
	if !present {
		return
	}
	indexOfLast := len(p.data) - 1
	idOfLast := p.indexToEntity[indexOfLast]

	p.data[indexOfRemoved] = p.data[indexOfLast]
	p.indexToEntity[indexOfRemoved] = idOfLast
	p.entityToIndex[idOfLast] = indexOfRemoved

	var zero T
	p.data[indexOfLast] = zero // don't retain pointers held by the old value
	p.data = p.data[:indexOfLast]
	p.indexToEntity = p.indexToEntity[:indexOfLast]
	delete(p.entityToIndex, id)
}

func (p *pool[T]) size() int {
	return len(p.data)
}
