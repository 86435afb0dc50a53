package toolkit

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/workflowkit/mcp-node-go/internal/argschema"
)

// NoTextResult is returned by Invoke when the remote response carries no
// text-typed content parts.
const NoTextResult = "Tool call returned no text content."

// Tool is one remote tool materialized as a locally invocable, argument-
// validated callable. It stays bound to the session that created it.
type Tool struct {
	toolkit     *Toolkit
	name        string
	description string
	args        *argschema.Schema
}

func newTool(tk *Toolkit, remote mcp.Tool) *Tool {
	return &Tool{
		toolkit:     tk,
		name:        remote.Name,
		description: remote.Description,
		args:        argschema.Convert(remote.InputSchema.Properties, remote.InputSchema.Required),
	}
}

// Name returns the tool's name as reported by the server.
func (t *Tool) Name() string { return t.name }

// Description returns the tool's description as reported by the server.
func (t *Tool) Description() string { return t.description }

// ArgumentSchema returns the validator derived from the remote input schema.
func (t *Tool) ArgumentSchema() *argschema.Schema { return t.args }

// Invoke validates args, issues one tools/call exchange, and returns the
// text-typed content parts of the response joined by newlines. Non-text
// parts are dropped.
//
// Argument-validation failures are returned as errors: they are host-side
// misuse, caught before anything goes over the wire. Transport and protocol
// failures during the call itself are converted into the tool's text output,
// prefixed "Error executing tool", and never surface as an error — a
// workflow run can log the failure without crashing.
func (t *Tool) Invoke(ctx context.Context, args map[string]any) (string, error) {
	if err := t.args.Validate(args); err != nil {
		return "", fmt.Errorf("toolkit: invalid arguments for tool %s: %w", t.name, err)
	}

	result, err := t.toolkit.call(ctx, t.name, args)
	if err != nil {
		return fmt.Sprintf("Error executing tool %s: %s", t.name, err), nil
	}

	text := joinTextParts(result.Content)
	if text == "" {
		return NoTextResult, nil
	}
	return text, nil
}

func joinTextParts(content []mcp.Content) string {
	var parts []string
	for _, c := range content {
		if tc, ok := mcp.AsTextContent(c); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
