package corval

import "reflect"

// maxRecursionDepth is the fixed ceiling on concurrently active guard
// markers within one Parse call.
const maxRecursionDepth = 255

type guardKey struct {
	input uintptr
	slot  int
}

// RecursionGuard bounds re-entrant validation of self-referential schemas
// and inputs. It is call-scoped mutable state: one guard per top-level Parse,
// never shared between calls. A marker is a (input identity, validator slot)
// pair; re-entering an active marker is a cycle, and the active count is
// capped at maxRecursionDepth. Both conditions surface as a recursion_loop
// issue rather than unbounded stack growth.
type RecursionGuard struct {
	active map[guardKey]struct{}
	depth  int
}

func newRecursionGuard() *RecursionGuard { return &RecursionGuard{} }

// Enter records the marker as active and returns a release func that must run
// on every exit path (defer it). Entering fails when the marker is already
// active or the ceiling would be exceeded.
func (g *RecursionGuard) Enter(input any, slot int) (func(), error) {
	if g.depth >= maxRecursionDepth {
		return nil, g.errLoop(input)
	}
	id, ok := containerID(input)
	if ok {
		key := guardKey{input: id, slot: slot}
		if _, seen := g.active[key]; seen {
			return nil, g.errLoop(input)
		}
		if g.active == nil {
			g.active = make(map[guardKey]struct{})
		}
		g.active[key] = struct{}{}
		g.depth++
		return func() {
			delete(g.active, key)
			g.depth--
		}, nil
	}
	// Scalar inputs have no stable identity; they participate only in the
	// depth ceiling.
	g.depth++
	return func() { g.depth-- }, nil
}

// Depth reports the number of currently active markers.
func (g *RecursionGuard) Depth() int { return g.depth }

func (g *RecursionGuard) errLoop(input any) error {
	return Issues{Issue{
		Path:    "/",
		Code:    CodeRecursionLoop,
		Message: "recursion detected while validating self-referential data",
		Input:   input,
	}}
}

// containerID derives an identity for reference-shaped inputs. Two inputs
// share an identity only if mutating one mutates the other.
func containerID(v any) (uintptr, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	default:
		return 0, false
	}
}
