// Package schema derives host-facing field descriptors from Go structs.
//
// The host's credential and node descriptors are declarative field lists.
// Rather than maintaining those lists by hand next to the structs they
// mirror, this package reflects a JSON Schema from the struct (via
// invopop/jsonschema) and flattens it into ordered fields.
package schema

import (
	"strings"

	"github.com/invopop/jsonschema"
)

// Field is one input field derived from a struct field's JSON schema.
type Field struct {
	// Name is the JSON property name.
	Name string

	// Type is the JSON Schema primitive type ("string", "integer", ...).
	Type string

	// Description comes from the jsonschema struct tag, if present.
	Description string

	// Required reports whether the field is in the schema's required list.
	Required bool

	// Enum lists the allowed string values, if the field is an enum.
	Enum []string
}

// Fields derives the ordered field list for struct type T. Field order
// follows struct declaration order.
func Fields[T any]() []Field {
	var zero T
	top := jsonschema.Reflect(&zero)
	root := extractRoot(top)
	if root == nil || root.Properties == nil {
		return nil
	}

	required := make(map[string]bool, len(root.Required))
	for _, name := range root.Required {
		required[name] = true
	}

	var fields []Field
	for pair := root.Properties.Oldest(); pair != nil; pair = pair.Next() {
		prop := resolveRef(top, pair.Value)
		fields = append(fields, Field{
			Name:        pair.Key,
			Type:        propertyType(prop),
			Description: propertyDescription(pair.Value, prop),
			Required:    required[pair.Key],
			Enum:        enumStrings(prop),
		})
	}
	return fields
}

// extractRoot resolves the root schema, following $ref to $defs if needed.
// invopop/jsonschema puts the reflected type under $defs with a ref like
// "#/$defs/TypeName".
func extractRoot(s *jsonschema.Schema) *jsonschema.Schema {
	if s.Ref != "" && s.Definitions != nil {
		if def := resolveRef(s, s); def != s {
			return def
		}
		for _, def := range s.Definitions {
			if def.Type == "object" {
				return def
			}
		}
	}
	return s
}

// resolveRef follows a "#/$defs/Name" ref against the top-level definitions.
// Returns the input schema unchanged when it is not a ref or cannot be
// resolved.
func resolveRef(top, s *jsonschema.Schema) *jsonschema.Schema {
	if s.Ref == "" || top.Definitions == nil {
		return s
	}
	name := s.Ref[strings.LastIndex(s.Ref, "/")+1:]
	if def, ok := top.Definitions[name]; ok && def != nil {
		return def
	}
	return s
}

// propertyType extracts the primitive type, unwrapping the anyOf that
// invopop/jsonschema emits for nullable (pointer) fields.
func propertyType(s *jsonschema.Schema) string {
	if s.Type != "" {
		return s.Type
	}
	for _, sub := range s.AnyOf {
		if sub.Type != "" && sub.Type != "null" {
			return sub.Type
		}
	}
	return ""
}

// propertyDescription prefers the description on the property itself (where
// struct tags land) over the referenced definition's.
func propertyDescription(prop, resolved *jsonschema.Schema) string {
	if prop.Description != "" {
		return prop.Description
	}
	return resolved.Description
}

func enumStrings(s *jsonschema.Schema) []string {
	if len(s.Enum) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.Enum))
	for _, e := range s.Enum {
		if str, ok := e.(string); ok {
			out = append(out, str)
		}
	}
	return out
}
