// Package argschema converts a remote tool's JSON-Schema-like input
// declaration into a runtime argument validator.
//
// The conversion is deliberately best-effort: recognized primitive property
// types (string, number, boolean, integer) are validated strictly, anything
// unrecognized is accepted as-is, and any failure to compile the schema
// degrades to a validator that accepts everything. A tool with a strange
// schema stays invocable; it is never dropped from the catalog.
package argschema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Primitive property types validated strictly. Everything else falls back to
// accept-anything for that property.
var primitiveTypes = map[string]bool{
	"string":  true,
	"number":  true,
	"boolean": true,
	"integer": true,
}

// Schema validates tool-call arguments.
type Schema struct {
	doc      map[string]any
	compiled *gojsonschema.Schema
}

// Permissive returns a validator that accepts any argument map.
func Permissive() *Schema {
	return &Schema{}
}

// Convert builds a validator from a remote tool's declared properties and
// required list. Fields are optional unless named in required; required names
// that reference undeclared properties are ignored.
func Convert(properties map[string]any, required []string) *Schema {
	doc := sanitize(properties, required)
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Permissive()
	}
	return &Schema{doc: doc, compiled: compiled}
}

// sanitize reduces the remote schema to the subset this package validates:
// primitive-typed properties with optional descriptions, plus the required
// list filtered to declared properties.
func sanitize(properties map[string]any, required []string) map[string]any {
	props := make(map[string]any, len(properties))
	for name, raw := range properties {
		props[name] = sanitizeProperty(raw)
	}

	doc := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": true,
	}

	var req []any
	for _, name := range required {
		if _, ok := props[name]; ok {
			req = append(req, name)
		}
	}
	if len(req) > 0 {
		doc["required"] = req
	}
	return doc
}

func sanitizeProperty(raw any) map[string]any {
	decl, ok := raw.(map[string]any)
	if !ok {
		// Property declaration is not an object: accept anything for it.
		return map[string]any{}
	}

	typ, _ := decl["type"].(string)
	if !primitiveTypes[typ] {
		// Unrecognized or missing type: unrestricted fallback.
		return map[string]any{}
	}

	prop := map[string]any{"type": typ}
	if desc, ok := decl["description"].(string); ok && desc != "" {
		prop["description"] = desc
	}
	return prop
}

// Validate checks args against the schema. A nil map is treated as empty.
// Validation-machinery failures (arguments that cannot be loaded as a JSON
// document) are tolerated, consistent with the availability-over-strictness
// policy: only genuine schema violations are reported.
func (s *Schema) Validate(args map[string]any) error {
	if s.compiled == nil {
		return nil
	}
	if args == nil {
		args = map[string]any{}
	}
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return nil
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("argschema: %s", strings.Join(msgs, "; "))
}

// IsPermissive reports whether the schema accepts any argument map, either
// by construction or because conversion fell back.
func (s *Schema) IsPermissive() bool {
	return s.compiled == nil
}

// Doc returns the sanitized schema document, nil for a permissive schema.
// Callers must not mutate it.
func (s *Schema) Doc() map[string]any {
	return s.doc
}
