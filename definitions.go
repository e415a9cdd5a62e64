package corval

// Self-referential schemas are expressed as named definitions plus
// definition-ref indirection: a ref reserves an integer slot in the
// BuildContext before the referenced validator exists, and the slot is
// populated once its definition builds. The completion pass verifies every
// reserved slot was filled; at runtime the ref resolves through the flat
// slot array, so the tree never contains an ownership cycle.

// buildDefinitions registers each named definition in the slot table, then
// builds and returns the body schema. The wrapper has no runtime presence.
func buildDefinitions(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	defs, ok, err := schemaSlice(schema, "definitions")
	if err != nil {
		return nil, err
	}
	if ok {
		for _, d := range defs {
			m, ok := d.(map[string]any)
			if !ok {
				return nil, schemaErrf("field %q must be a list of mappings", "definitions")
			}
			ref, err := schemaStrReq(m, "ref")
			if err != nil {
				return nil, err
			}
			slot := bc.SlotFor(ref)
			if _, filled := bc.Slot(slot); filled {
				return nil, schemaErrf("duplicate definition %q", ref)
			}
			dv, err := BuildValidator(m, cfg, bc)
			if err != nil {
				return nil, err
			}
			bc.SetSlot(slot, dv)
		}
	}
	sub, err := schemaMapReq(schema, "schema")
	if err != nil {
		return nil, err
	}
	return BuildValidator(sub, cfg, bc)
}

// definitionRefValidator resolves a named definition through its slot. It is
// the re-entrant call site: logically-the-same input can reach the same slot
// again, so every delegation holds a recursion guard token.
type definitionRefValidator struct {
	noDefault
	ref  string
	slot int
}

func buildDefinitionRef(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	ref, err := schemaStrReq(schema, "schema_ref")
	if err != nil {
		return nil, err
	}
	return &definitionRefValidator{ref: ref, slot: bc.SlotFor(ref)}, nil
}

func (v *definitionRefValidator) Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error) {
	release, err := g.Enter(input, v.slot)
	if err != nil {
		return nil, err
	}
	defer release()
	return slots[v.slot].Validate(input, ex, slots, g)
}

func (v *definitionRefValidator) Name() string { return "definition-ref[" + v.ref + "]" }

// Ask answers false: resolving the slot here could itself recurse through
// the reference cycle.
func (v *definitionRefValidator) Ask(q Question) bool { return false }

func (v *definitionRefValidator) Complete(bc *BuildContext) error {
	if _, ok := bc.Slot(v.slot); !ok {
		return schemaErrf("unresolved definition reference %q", v.ref)
	}
	return nil
}
