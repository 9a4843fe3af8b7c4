package target

import (
	"strings"

	"github.com/pkg/errors"
)

// TargetTriple identifies a compilation target as
// "arch-vendor-os-env-abi", e.g. "x86_64-unknown-linux-gnu-gnu". Supplements
// spec.md §4.B, which only calls for serialization, with the parse
// direction carried over from tidec_abi::target (SPEC_FULL.md item 3): a
// driver realistically receives triples as strings and needs to turn them
// back into structured form.
type TargetTriple struct {
	Arch   string
	Vendor string
	OS     string
	Env    string
	ABI    string
}

// String renders the triple in LLVM's dash-joined form.
func (t TargetTriple) String() string {
	return strings.Join([]string{t.Arch, t.Vendor, t.OS, t.Env, t.ABI}, "-")
}

// ParseTargetTriple parses a dash-joined "arch-vendor-os-env-abi" string.
func ParseTargetTriple(s string) (TargetTriple, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 5 {
		return TargetTriple{}, errors.Errorf("target: invalid triple %q: expected 5 dash-separated components, got %d", s, len(parts))
	}
	return TargetTriple{
		Arch:   parts[0],
		Vendor: parts[1],
		OS:     parts[2],
		Env:    parts[3],
		ABI:    parts[4],
	}, nil
}

// Target bundles the codegen backend selection, its data layout, and an
// optional triple (spec.md §3 "Target").
type Target struct {
	BackendKind BackendKind
	DataLayout  TargetDataLayout
	Triple      *TargetTriple
}

// NewTarget returns a Target for the given backend using the default data
// layout and no triple set (triple defaults to host at emit time per
// spec.md §6).
func NewTarget(kind BackendKind) Target {
	return Target{BackendKind: kind, DataLayout: DefaultTargetDataLayout()}
}

// DataLayoutString serializes the data layout according to the configured
// backend kind. Only LLVM is implemented; other kinds panic, matching the
// Rust source's `unimplemented!()` stubs for Cranelift/GCC.
func (t Target) DataLayoutString() string {
	switch t.BackendKind {
	case LLVM:
		return t.DataLayout.AsLLVMDataLayoutString()
	default:
		panic("target: data layout serialization not implemented for backend " + t.BackendKind.String())
	}
}

// TripleString serializes the triple according to the configured backend
// kind, or returns ("", false) if no triple was set.
func (t Target) TripleString() (string, bool) {
	if t.Triple == nil {
		return "", false
	}
	switch t.BackendKind {
	case LLVM:
		return t.Triple.String(), true
	default:
		panic("target: triple serialization not implemented for backend " + t.BackendKind.String())
	}
}
