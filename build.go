package corval

// builderFunc constructs one validator kind from its schema fragment.
type builderFunc func(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error)

// builders is the closed kind catalogue; the discriminator dispatch here is
// the only way to obtain a validator.
var builders map[string]builderFunc

func init() {
	builders = map[string]builderFunc{
		"any":            buildAny,
		"none":           buildNone,
		"bool":           buildBool,
		"int":            buildInt,
		"float":          buildFloat,
		"str":            buildStr,
		"list":           buildList,
		"object":         buildObject,
		"nullable":       buildNullable,
		"union":          buildUnion,
		"default":        buildWithDefault,
		"definitions":    buildDefinitions,
		"definition-ref": buildDefinitionRef,
	}
}

// BuildValidator reads the schema's "type" discriminator and dispatches to
// the matching kind constructor. It is the recursive entry point kind
// constructors use for their sub-schemas; hosts should use Compile, which
// also runs the completion pass.
func BuildValidator(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	typ, err := schemaStrReq(schema, "type")
	if err != nil {
		return nil, err
	}
	build, ok := builders[typ]
	if !ok {
		return nil, schemaErrf("unknown validator kind %q", typ)
	}
	return build(schema, cfg, bc)
}

// ---- schema field helpers ----

// schemaStr reads an optional string field; absent yields ok=false.
func schemaStr(schema map[string]any, key string) (string, bool, error) {
	v, ok := schema[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, schemaErrf("field %q must be a string", key)
	}
	return s, true, nil
}

// schemaStrReq reads a mandatory string field.
func schemaStrReq(schema map[string]any, key string) (string, error) {
	s, ok, err := schemaStr(schema, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", schemaErrf("missing required field %q", key)
	}
	return s, nil
}

// schemaBool reads an optional bool field; absent yields ok=false.
func schemaBool(schema map[string]any, key string) (bool, bool, error) {
	v, ok := schema[key]
	if !ok {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, false, schemaErrf("field %q must be a bool", key)
	}
	return b, true, nil
}

// schemaInt reads an optional integer field (YAML gives int, JSON may give
// json.Number or float64); absent yields ok=false.
func schemaInt(schema map[string]any, key string) (int, bool, error) {
	v, ok := schema[key]
	if !ok {
		return 0, false, nil
	}
	n, err := coerceInt(v, true)
	if err != nil {
		return 0, false, schemaErrf("field %q must be an integer", key)
	}
	return int(n), true, nil
}

// schemaMapReq reads a mandatory nested-schema field.
func schemaMapReq(schema map[string]any, key string) (map[string]any, error) {
	v, ok := schema[key]
	if !ok {
		return nil, schemaErrf("missing required field %q", key)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, schemaErrf("field %q must be a mapping", key)
	}
	return m, nil
}

// schemaSlice reads an optional list field; absent yields ok=false.
func schemaSlice(schema map[string]any, key string) ([]any, bool, error) {
	v, ok := schema[key]
	if !ok {
		return nil, false, nil
	}
	s, ok := v.([]any)
	if !ok {
		return nil, false, schemaErrf("field %q must be a list", key)
	}
	return s, true, nil
}

// schemaOrConfigBool resolves "schema value if present, else ambient-config
// value": the lookup used for policies that may be set once per compilation
// (e.g. validate_default, strict) rather than per schema fragment.
func schemaOrConfigBool(schema map[string]any, key string, ambient bool) (bool, error) {
	b, ok, err := schemaBool(schema, key)
	if err != nil {
		return false, err
	}
	if ok {
		return b, nil
	}
	return ambient, nil
}
