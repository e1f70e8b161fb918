package backstage

import (
	"fmt"
	"reflect"
)

type EntityNotFoundError struct {
	Entity Entity
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d is not known to this coordinator", e.Entity.ID())
}

type ComponentNotFoundError struct {
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity: %T", e.Component)
}

type ComponentCapacityError struct {
	Limit int
}

func (e ComponentCapacityError) Error() string {
	return fmt.Sprintf("component type capacity exceeded (max %d distinct types)", e.Limit)
}

type SystemNotFoundError struct {
	Type reflect.Type
}

func (e SystemNotFoundError) Error() string {
	return fmt.Sprintf("system is not registered: %v", e.Type)
}

type TagNotFoundError struct {
	Tag string
}

func (e TagNotFoundError) Error() string {
	return fmt.Sprintf("no entity holds tag %q", e.Tag)
}
