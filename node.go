package mcpnode

import "context"

// Host plugin contract. The shapes below mirror the workflow host's plugin
// interface: nodes declare themselves to the host as descriptors, the host
// feeds resolved credentials and parameters back as NodeData. They are fixed
// by the host runtime and treated as given.

// NodeDescriptor declares a node to the host: identity, configurable inputs,
// the credential type it consumes, and the async callbacks that populate
// dropdowns.
type NodeDescriptor struct {
	// Label is the human-readable node name shown in the editor.
	Label string

	// Name is the unique identifying name used in workflow definitions.
	Name string

	// Version is the node revision understood by the host.
	Version int

	// Category groups the node in the host's palette.
	Category string

	// Description is a one-line summary shown in the editor.
	Description string

	// Credential names the credential type this node consumes.
	Credential string

	// Inputs are the node's configurable fields.
	Inputs []Property

	// LoadMethods maps load-method names (referenced by Property.LoadMethod)
	// to the callbacks that populate their options.
	LoadMethods map[string]LoadOptionsFunc
}

// Property describes one configurable input field of a node or credential.
type Property struct {
	// DisplayName is the label shown next to the field.
	DisplayName string

	// Name is the key under which the value appears in NodeData.
	Name string

	// Type is the host field type: "string", "options", or "multiOptions".
	Type string

	// Description is the field's help text.
	Description string

	// Required marks the field as mandatory in the editor.
	Required bool

	// Secret marks the field as a masked secret (stored encrypted by the host).
	Secret bool

	// Default is the initial value, if any.
	Default any

	// Options are the fixed choices for "options"/"multiOptions" fields.
	Options []OptionItem

	// LoadMethod names the descriptor's LoadOptionsFunc that populates
	// Options dynamically. Empty for static fields.
	LoadMethod string
}

// OptionItem is one selectable entry in a host dropdown.
type OptionItem struct {
	Name        string
	Value       string
	Description string
}

// LoadOptionsFunc populates a dropdown from host-supplied node data. The host
// calls it while the editor is open, so implementations must not fail: every
// problem is reported as an option the user can read.
type LoadOptionsFunc func(ctx context.Context, data NodeData) []OptionItem

// NodeData carries the host-resolved configuration for one node instance:
// decrypted credential fields and the parameter values the user entered.
type NodeData struct {
	Credentials map[string]string
	Parameters  map[string]any
}

// StringsParam reads a string-slice parameter, accepting both []string and
// the []any that the host's JSON layer produces.
func (d NodeData) StringsParam(key string) []string {
	switch v := d.Parameters[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
