package backstage

// EntityID is the raw numeric identity of an entity. IDs are recycled
// oldest-destroyed-first after destruction is reconciled, so an ID alone must
// never outlive the Update call that reclaimed it.
type EntityID uint32

// Entity is an opaque handle representing one simulated object. It carries no
// data; identity is value equality over the raw id.
type Entity struct {
	id EntityID
}

func (e Entity) ID() EntityID {
	return e.id
}
