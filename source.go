package corval

import (
	"bytes"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Schema documents are plain nested mappings; these loaders decode the two
// wire shapes the engine recognizes. Both return the document ready for
// Compile.

// SchemaFromJSON decodes a JSON schema document, keeping numbers as
// json.Number.
func SchemaFromJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, schemaErrf("decoding schema document: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, schemaErrf("schema document must be a mapping")
	}
	return m, nil
}

// SchemaFromYAML decodes a YAML schema document.
func SchemaFromYAML(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, schemaErrf("decoding schema document: %v", err)
	}
	if m == nil {
		return nil, schemaErrf("schema document must be a mapping")
	}
	return m, nil
}
