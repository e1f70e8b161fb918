// Package motion provides the built-in kinematics components and the movement
// system that integrates them each simulation step.
package motion

import (
	"github.com/TheBitDrifter/backstage"
)

// Vec2 is a plain 2D vector.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Transform places an entity in world space.
type Transform struct {
	Position Vec2    `yaml:"position"`
	Scale    Vec2    `yaml:"scale"`
	Rotation float64 `yaml:"rotation"`
}

// RigidBody carries an entity's kinematic state.
type RigidBody struct {
	Velocity     Vec2    `yaml:"velocity"`
	Acceleration Vec2    `yaml:"acceleration"`
	Mass         float64 `yaml:"mass"`
}

// Component identities, created once and shared.
var (
	TransformComponent = backstage.FactoryNewComponent[Transform]()
	RigidBodyComponent = backstage.FactoryNewComponent[RigidBody]()
)

// Movement integrates position by velocity for every entity carrying a
// Transform and a RigidBody.
type Movement struct {
	*backstage.BaseSystem
	Gravity float64
}

// NewMovement declares the system's requirements against the coordinator's
// registry. Call before registration with AddSystem.
func NewMovement(cd *backstage.Coordinator, gravity float64) (*Movement, error) {
	s := &Movement{
		BaseSystem: &backstage.BaseSystem{},
		Gravity:    gravity,
	}
	if err := s.Require(cd, TransformComponent); err != nil {
		return nil, err
	}
	if err := s.Require(cd, RigidBodyComponent); err != nil {
		return nil, err
	}
	return s, nil
}

// Update advances every matched entity by deltaTime seconds. It must run after
// the coordinator's own Update for the step.
func (s *Movement) Update(cd *backstage.Coordinator, deltaTime float64) error {
	for _, entity := range s.Entities() {
		transform, err := TransformComponent.Get(cd, entity)
		if err != nil {
			return err
		}
		body, err := RigidBodyComponent.Get(cd, entity)
		if err != nil {
			return err
		}

		body.Velocity.X += body.Acceleration.X * deltaTime
		body.Velocity.Y += (body.Acceleration.Y + s.Gravity*body.Mass) * deltaTime

		transform.Position.X += body.Velocity.X * deltaTime
		transform.Position.Y += body.Velocity.Y * deltaTime
	}
	return nil
}
