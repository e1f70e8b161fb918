/*
Package backstage provides the Entity-Component-System (ECS) core for small
interactive simulations.

Backstage favors a sparse-set storage model: one densely packed pool per
component type, a bitset signature per entity, and systems that hold the live
list of entities whose signatures cover their requirements. Structural changes
(entity creation and destruction) are staged and committed at one explicit
reconciliation point per simulation step, so a system can iterate its entity
list and request destruction without invalidating that iteration.

Core Concepts:

  - Entity: A unique identifier that represents a simulated object.
  - Component: A data container that defines entity attributes.
  - Signature: A bitset recording which component types an entity carries,
    or which component types a system requires.
  - System: A behavior unit matched to all entities covering its signature.
  - Coordinator: The orchestrator owning entities, pools, systems, and the
    tag/group indices.

Basic Usage:

	// Create a coordinator with a schema
	schema := table.Factory.NewSchema()
	coordinator := backstage.Factory.NewCoordinator(schema, nil)

	// Define components
	position := backstage.FactoryNewComponent[Position]()
	velocity := backstage.FactoryNewComponent[Velocity]()

	// Create an entity and attach data (attachment is immediate)
	player := coordinator.Create()
	position.Add(coordinator, player, Position{X: 100, Y: 100})
	velocity.Add(coordinator, player, Velocity{X: 30})

	// Commit staged creations/destructions once per step, before systems run
	coordinator.Update()

	for _, entity := range movementSystem.Entities() {
		pos, _ := position.Get(coordinator, entity)
		vel, _ := velocity.Get(coordinator, entity)
		pos.X += vel.X
		pos.Y += vel.Y
	}

Backstage is the underlying ECS for the pixel demo shell but also works as a
standalone library.
*/
package backstage
