package lir

// Linkage mirrors the backend's notion of symbol linkage. The core treats
// it as an opaque tag handed to the backend unchanged (spec.md §3).
type Linkage int

const (
	LinkageExternal Linkage = iota
	LinkageInternal
	LinkageWeak
	LinkageLinkOnce
)

// Visibility mirrors the backend's notion of symbol visibility.
type Visibility int

const (
	VisibilityDefault Visibility = iota
	VisibilityHidden
	VisibilityProtected
)

// UnnamedAddress mirrors the backend's notion of address significance.
type UnnamedAddress int

const (
	UnnamedAddressNone UnnamedAddress = iota
	UnnamedAddressLocal
	UnnamedAddressGlobal
)

// CallConv mirrors the backend's calling-convention tag.
type CallConv int

const (
	CallConvC CallConv = iota
	CallConvFast
	CallConvCold
)

// BodyKind distinguishes ordinary functions from other body kinds a future
// front end might lower (closures, coroutines — see the Glossary's
// "Unit / Body" entry). v1 only produces Function bodies.
type BodyKind int

const (
	BodyKindFunction BodyKind = iota
)

// BodyMetadata carries a body's identity and the backend-facing tags that
// the core treats opaquely (spec.md §3 "Body metadata").
type BodyMetadata struct {
	DefId          DefId
	Name           string
	Kind           BodyKind
	Inlined        bool
	Linkage        Linkage
	Visibility     Visibility
	UnnamedAddress UnnamedAddress
	CallConv       CallConv
}

// UnitMetadata carries a compilation unit's identity.
type UnitMetadata struct {
	UnitName string
}
