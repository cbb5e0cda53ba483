package behavior

import (
	"errors"
	"fmt"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/column"
)

// ErrDuplicateIdentifier is returned by a Registry when registering a
// behavior whose identifier is already registered.
var ErrDuplicateIdentifier = errors.New("behavior: identifier already registered")

// ErrUnknownIdentifier is returned when resolving a signature that names a
// behavior the registry has never seen.
var ErrUnknownIdentifier = errors.New("behavior: unknown identifier")

// Behavior is one entry in a bucket's pipeline (spec.md §4.2). Act may
// read/write any slice [0,size) of any column in Required; it must not
// touch any other column, and must not mutate Dead/CurrentDead or append
// to AddSpawns except through the mandatory-end protocol.
type Behavior struct {
	Identifier string
	Required   dancoren.ColumnSet
	Act        func(s *column.Store, size int)
}

// Registry resolves behavior signatures (ordered identifier lists) into
// Behavior values and the union of their required columns.
type Registry struct {
	byID map[string]Behavior
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Behavior)}
}

// Register adds b to the registry. It returns ErrDuplicateIdentifier if a
// behavior with the same Identifier is already registered.
func (r *Registry) Register(b Behavior) error {
	if _, exists := r.byID[b.Identifier]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateIdentifier, b.Identifier)
	}
	r.byID[b.Identifier] = b
	return nil
}

// Resolve looks up every identifier in signature, in order, returning the
// matching Behaviors and the union of their required columns. It returns
// ErrUnknownIdentifier for the first identifier not found.
func (r *Registry) Resolve(signature []string) ([]Behavior, dancoren.ColumnSet, error) {
	behaviors := make([]Behavior, 0, len(signature))
	var required dancoren.ColumnSet
	for _, id := range signature {
		b, ok := r.byID[id]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %q", ErrUnknownIdentifier, id)
		}
		behaviors = append(behaviors, b)
		required = required.Union(b.Required)
	}
	return behaviors, required, nil
}

// RegisterReferenceCatalog registers the spec's reference catalog (spec.md
// §4.2 table): motion1, gravity1, acceleration1, rotate_orientation,
// rotate_forward, motion3, gravity3, acceleration3, and mandatory_end. It
// panics on the first duplicate, since a fresh Registry should never
// already hold one of these identifiers.
func RegisterReferenceCatalog(r *Registry) {
	all := []Behavior{
		Motion1(),
		Gravity1(),
		Acceleration1(),
		RotateOrientation(),
		RotateForward(),
		Motion3(),
		Gravity3(),
		Acceleration3(),
		MandatoryEnd(),
	}
	for _, b := range all {
		if err := r.Register(b); err != nil {
			panic(err)
		}
	}
}
