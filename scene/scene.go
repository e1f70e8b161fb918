// Package scene loads data-driven scene definitions and spawns them through a
// coordinator. A scene file declares the simulation step and the entities to
// create, with their components, tags, and groups.
package scene

import (
	"fmt"
	"io"
	"os"

	"github.com/TheBitDrifter/backstage"
	"github.com/TheBitDrifter/backstage/motion"
	"gopkg.in/yaml.v3"
)

// EntityDef declares one entity. Component sections are optional; only the
// sections present are attached.
type EntityDef struct {
	Tag       string            `yaml:"tag"`
	Groups    []string          `yaml:"groups"`
	Transform *motion.Transform `yaml:"transform"`
	RigidBody *motion.RigidBody `yaml:"rigidbody"`
}

// Scene is a complete scene file.
type Scene struct {
	Timestep float64     `yaml:"timestep"`
	Steps    int         `yaml:"steps"`
	Gravity  float64     `yaml:"gravity"`
	Entities []EntityDef `yaml:"entities"`
}

// Load decodes a scene from YAML.
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if s.Timestep <= 0 {
		s.Timestep = 1.0 / 60.0
	}
	return &s, nil
}

// LoadFile decodes a scene from a YAML file on disk.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Spawn creates every declared entity, attaches its components, and records
// its tag and group memberships. The returned entities are staged; callers
// must reconcile with coordinator.Update before systems can see them.
func (s *Scene) Spawn(cd *backstage.Coordinator) ([]backstage.Entity, error) {
	entities := make([]backstage.Entity, 0, len(s.Entities))
	for i, def := range s.Entities {
		entity := cd.Create()
		if def.Transform != nil {
			if err := motion.TransformComponent.Add(cd, entity, *def.Transform); err != nil {
				return nil, fmt.Errorf("entity %d: %w", i, err)
			}
		}
		if def.RigidBody != nil {
			if err := motion.RigidBodyComponent.Add(cd, entity, *def.RigidBody); err != nil {
				return nil, fmt.Errorf("entity %d: %w", i, err)
			}
		}
		if def.Tag != "" {
			cd.TagEntity(entity, def.Tag)
		}
		for _, group := range def.Groups {
			cd.GroupEntity(entity, group)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
