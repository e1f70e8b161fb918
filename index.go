package backstage

import (
	"cmp"
	"iter"
	"slices"

	iter_util "github.com/TheBitDrifter/util/iter"
)

// Tags are a bijection: at most one entity per tag and one tag per entity.
// Groups are many-to-many named membership sets. Both indices are maintained
// here and cleaned up automatically when destruction reconciles.

// TagEntity binds a tag to an entity. First assignment wins on both sides:
// the call is a no-op when the tag already names some entity or the entity
// already holds a tag.
func (cd *Coordinator) TagEntity(entity Entity, tag string) {
	if _, taken := cd.entityPerTag[tag]; taken {
		return
	}
	if _, tagged := cd.tagPerEntity[entity.ID()]; tagged {
		return
	}
	cd.entityPerTag[tag] = entity
	cd.tagPerEntity[entity.ID()] = tag
}

// EntityHasTag reports whether the entity currently holds exactly this tag.
func (cd *Coordinator) EntityHasTag(entity Entity, tag string) bool {
	held, tagged := cd.tagPerEntity[entity.ID()]
	return tagged && held == tag
}

// GetEntityByTag looks up the entity bound to a tag.
func (cd *Coordinator) GetEntityByTag(tag string) (Entity, error) {
	entity, present := cd.entityPerTag[tag]
	if !present {
		return Entity{}, TagNotFoundError{Tag: tag}
	}
	return entity, nil
}

// RemoveEntityTag removes both sides of the entity's tag binding, if any.
func (cd *Coordinator) RemoveEntityTag(entity Entity) {
	tag, tagged := cd.tagPerEntity[entity.ID()]
	if !tagged {
		return
	}
	delete(cd.entityPerTag, tag)
	delete(cd.tagPerEntity, entity.ID())
}

// RemoveTag removes both sides of a tag binding by tag name, if any.
func (cd *Coordinator) RemoveTag(tag string) {
	entity, present := cd.entityPerTag[tag]
	if !present {
		return
	}
	delete(cd.entityPerTag, tag)
	delete(cd.tagPerEntity, entity.ID())
}

// GroupEntity adds the entity to a named group. Idempotent.
func (cd *Coordinator) GroupEntity(entity Entity, group string) {
	members, present := cd.entitiesPerGroup[group]
	if !present {
		members = make(map[Entity]struct{})
		cd.entitiesPerGroup[group] = members
	}
	members[entity] = struct{}{}

	groups, present := cd.groupsPerEntity[entity.ID()]
	if !present {
		groups = make(map[string]struct{})
		cd.groupsPerEntity[entity.ID()] = groups
	}
	groups[group] = struct{}{}
}

// EntityBelongsToGroup reports group membership.
func (cd *Coordinator) EntityBelongsToGroup(entity Entity, group string) bool {
	members, present := cd.entitiesPerGroup[group]
	if !present {
		return false
	}
	_, member := members[entity]
	return member
}

// GetEntitiesByGroup returns the group's entities in id order. An unknown
// group yields an empty slice.
func (cd *Coordinator) GetEntitiesByGroup(group string) []Entity {
	entities := iter_util.Collect(cd.groupSeq(group))
	slices.SortFunc(entities, func(a, b Entity) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return entities
}

func (cd *Coordinator) groupSeq(group string) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for entity := range cd.entitiesPerGroup[group] {
			if !yield(entity) {
				return
			}
		}
	}
}

// RemoveEntityGroup removes one (entity, group) pairing, garbage-collecting
// the group or the entity's membership entry when it empties.
func (cd *Coordinator) RemoveEntityGroup(entity Entity, group string) {
	if members, present := cd.entitiesPerGroup[group]; present {
		delete(members, entity)
		if len(members) == 0 {
			delete(cd.entitiesPerGroup, group)
		}
	}
	if groups, present := cd.groupsPerEntity[entity.ID()]; present {
		delete(groups, group)
		if len(groups) == 0 {
			delete(cd.groupsPerEntity, entity.ID())
		}
	}
}

// RemoveEntityGroups removes the entity from every group it belongs to.
func (cd *Coordinator) RemoveEntityGroups(entity Entity) {
	for group := range cd.groupsPerEntity[entity.ID()] {
		if members, present := cd.entitiesPerGroup[group]; present {
			delete(members, entity)
			if len(members) == 0 {
				delete(cd.entitiesPerGroup, group)
			}
		}
	}
	delete(cd.groupsPerEntity, entity.ID())
}

// RemoveGroup disbands a group, dropping every member's pairing with it.
func (cd *Coordinator) RemoveGroup(group string) {
	for entity := range cd.entitiesPerGroup[group] {
		if groups, present := cd.groupsPerEntity[entity.ID()]; present {
			delete(groups, group)
			if len(groups) == 0 {
				delete(cd.groupsPerEntity, entity.ID())
			}
		}
	}
	delete(cd.entitiesPerGroup, group)
}
