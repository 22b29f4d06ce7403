package symbolic

import (
	"go/types"

	"github.com/cs-au-dk/absdom/utils"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry records the static type of every identifier discovered by a
// front end. It is populated once per analysis run, then frozen, after
// which it is only read. A frozen registry may be shared between goroutines.
type Registry struct {
	types  map[Identifier]types.Type
	frozen bool
}

func NewRegistry() *Registry {
	return &Registry{types: map[Identifier]types.Type{}}
}

// Register records the type of an identifier. Registering the same
// identifier twice with identical types is allowed.
func (r *Registry) Register(id Identifier, typ types.Type) error {
	if r.frozen {
		return errors.Wrapf(ErrFrozenRegistry, "registering %s", id)
	}
	if old, ok := r.types[id]; ok && !types.Identical(old, typ) {
		return errors.Errorf("identifier %s registered as both %s and %s", id, old, typ)
	}
	r.types[id] = typ
	return nil
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.frozen = true
}

func (r *Registry) Frozen() bool {
	return r.frozen
}

// Type retrieves the registered type of an identifier.
func (r *Registry) Type(id Identifier) (types.Type, bool) {
	if r == nil {
		return nil, false
	}
	typ, ok := r.types[id]
	return typ, ok
}

// IsNumeric checks whether an identifier may be tracked by an integer
// domain. Unregistered identifiers are assumed to be numeric.
func (r *Registry) IsNumeric(id Identifier) bool {
	typ, ok := r.Type(id)
	return !ok || utils.IsIntegerType(typ)
}

// Identifiers lists the registered identifiers in lexical order.
func (r *Registry) Identifiers() []Identifier {
	ids := maps.Keys(r.types)
	slices.Sort(ids)
	return ids
}
