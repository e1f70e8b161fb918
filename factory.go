package backstage

import (
	"github.com/TheBitDrifter/table"
	"go.uber.org/zap"
)

type factory struct{}

var Factory factory

// NewCoordinator builds a coordinator around the given schema. A nil logger
// disables logging.
func (f factory) NewCoordinator(schema table.Schema, log *zap.Logger) *Coordinator {
	return newCoordinator(schema, log)
}

// FactoryNewComponent creates the identity for a component type. Identities
// are created once and reused everywhere the type is referenced.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{
		Component: table.FactoryNewElementType[T](),
	}
}
