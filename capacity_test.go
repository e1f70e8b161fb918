package backstage

// Marker component types for probing the signature capacity limit. Each must
// be a distinct named type to receive its own type id.
type (
	capProbe00 struct{}
	capProbe01 struct{}
	capProbe02 struct{}
	capProbe03 struct{}
	capProbe04 struct{}
	capProbe05 struct{}
	capProbe06 struct{}
	capProbe07 struct{}
	capProbe08 struct{}
	capProbe09 struct{}
	capProbe10 struct{}
	capProbe11 struct{}
	capProbe12 struct{}
	capProbe13 struct{}
	capProbe14 struct{}
	capProbe15 struct{}
	capProbe16 struct{}
	capProbe17 struct{}
	capProbe18 struct{}
	capProbe19 struct{}
	capProbe20 struct{}
	capProbe21 struct{}
	capProbe22 struct{}
	capProbe23 struct{}
	capProbe24 struct{}
	capProbe25 struct{}
	capProbe26 struct{}
	capProbe27 struct{}
	capProbe28 struct{}
	capProbe29 struct{}
	capProbe30 struct{}
	capProbe31 struct{}
	capProbe32 struct{}
)

func capacityAdder[T any]() func(*Coordinator, Entity) error {
	comp := FactoryNewComponent[T]()
	return func(cd *Coordinator, entity Entity) error {
		return comp.Add(cd, entity, *new(T))
	}
}

// capacityProbeAdders returns MaxComponentTypes+1 attachers over distinct
// component types.
func capacityProbeAdders() []func(*Coordinator, Entity) error {
	return []func(*Coordinator, Entity) error{
		capacityAdder[capProbe00](), capacityAdder[capProbe01](), capacityAdder[capProbe02](),
		capacityAdder[capProbe03](), capacityAdder[capProbe04](), capacityAdder[capProbe05](),
		capacityAdder[capProbe06](), capacityAdder[capProbe07](), capacityAdder[capProbe08](),
		capacityAdder[capProbe09](), capacityAdder[capProbe10](), capacityAdder[capProbe11](),
		capacityAdder[capProbe12](), capacityAdder[capProbe13](), capacityAdder[capProbe14](),
		capacityAdder[capProbe15](), capacityAdder[capProbe16](), capacityAdder[capProbe17](),
		capacityAdder[capProbe18](), capacityAdder[capProbe19](), capacityAdder[capProbe20](),
		capacityAdder[capProbe21](), capacityAdder[capProbe22](), capacityAdder[capProbe23](),
		capacityAdder[capProbe24](), capacityAdder[capProbe25](), capacityAdder[capProbe26](),
		capacityAdder[capProbe27](), capacityAdder[capProbe28](), capacityAdder[capProbe29](),
		capacityAdder[capProbe30](), capacityAdder[capProbe31](), capacityAdder[capProbe32](),
	}
}
