package corval

// Question is a structural capability query answered without executing
// validation. Decorators forward questions that are not about themselves.
type Question int

const (
	// QHasDefault asks whether the subtree can supply a value for a
	// missing field.
	QHasDefault Question = iota
	// QOmitOnError asks whether the subtree drops the field on failure
	// instead of reporting it.
	QOmitOnError
	// QAllowsNull asks whether the subtree accepts nil input.
	QAllowsNull
)

// Validator is the capability contract every schema kind satisfies. The
// compiled tree is immutable after the completion pass and safe for
// concurrent Validate calls; all mutable per-call state travels in ex and g.
type Validator interface {
	// Validate checks or coerces one input value. It may recurse into owned
	// or slot-referenced children, reusing the same ex, slots and g. The
	// error is Issues, or ErrOmit when the caller should drop the value.
	Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error)

	// DefaultValue is invoked by a surrounding container when a field is
	// absent; presence branching itself is the caller's job. ok reports
	// whether a default exists: (nil, false, nil) means "no default
	// present" and leaves required-field policy to the caller. outerLoc is
	// a field name (string), index (int) or nil, prepended to any error so
	// the report points at the enclosing field.
	DefaultValue(outerLoc any, ex *Extra, slots []Validator, g *RecursionGuard) (any, bool, error)

	// Name is a stable identifier for diagnostics; decorators compose as
	// "<tag>[<inner>]".
	Name() string

	// Ask answers a structural Question about the subtree.
	Ask(q Question) bool

	// Complete is the second build phase: slot references reserved during
	// build are guaranteed populated here. No Validate call may happen
	// before Complete has run over the whole tree.
	Complete(bc *BuildContext) error
}

// BuildContext is the build-owned slot table. Named definitions reserve an
// integer slot before their validator exists, so self-referential schemas
// become index indirection instead of ownership cycles.
type BuildContext struct {
	slots []Validator
	names map[string]int
}

// NewBuildContext returns an empty build context. Most callers want Compile,
// which owns the build/complete phase barrier; the exported constructor
// exists for hosts assembling custom kind catalogues.
func NewBuildContext() *BuildContext {
	return &BuildContext{names: make(map[string]int)}
}

// SlotFor returns the slot index reserved for the named reference, reserving
// a fresh one on first sight. The slot may still be unpopulated.
func (bc *BuildContext) SlotFor(name string) int {
	if i, ok := bc.names[name]; ok {
		return i
	}
	i := len(bc.slots)
	bc.slots = append(bc.slots, nil)
	bc.names[name] = i
	return i
}

// SetSlot fills a reserved slot with its built validator.
func (bc *BuildContext) SetSlot(i int, v Validator) { bc.slots[i] = v }

// Slot returns the validator in slot i, with ok=false when unpopulated.
func (bc *BuildContext) Slot(i int) (Validator, bool) {
	if i < 0 || i >= len(bc.slots) || bc.slots[i] == nil {
		return nil, false
	}
	return bc.slots[i], true
}

// Finish verifies every reserved slot was populated and returns the flat
// validator array shared by all Validate calls. An unresolved reference is a
// build failure.
func (bc *BuildContext) Finish() ([]Validator, error) {
	for name, i := range bc.names {
		if bc.slots[i] == nil {
			return nil, schemaErrf("unresolved definition reference %q", name)
		}
	}
	return bc.slots, nil
}

// noDefault supplies the contract's "no default present" answer for kinds
// without default semantics.
type noDefault struct{}

func (noDefault) DefaultValue(any, *Extra, []Validator, *RecursionGuard) (any, bool, error) {
	return nil, false, nil
}

// leaf supplies the remaining contract defaults for childless kinds.
type leaf struct{ noDefault }

func (leaf) Ask(Question) bool { return false }

func (leaf) Complete(bc *BuildContext) error { return nil }
