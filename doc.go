// Package mcpnode provides a workflow-host plugin node that surfaces remote
// MCP (Model Context Protocol) tools as invocable tool objects.
//
// The node connects to a hosted SaaS MCP gateway over Server-Sent Events,
// enumerates the tools the gateway exposes, and materializes a user-selected
// subset for execution inside the host's workflow engine. All protocol work
// is delegated to the mcp-go SDK; this package owns only the credential
// shape, the host-facing node descriptor, and the discovery/materialization
// glue.
//
// # Quick Start
//
//	node := mcpnode.NewToolsNode()
//
//	data := mcpnode.NodeData{
//	    Credentials: map[string]string{"zone": "eu1", "token": token},
//	    Parameters:  map[string]any{"selectedTools": []any{"search_*"}},
//	}
//
//	// UI dropdown population — never fails, errors become options.
//	options := node.ListToolOptions(ctx, data)
//
//	// Workflow build time — fails loudly on bad configuration.
//	tools, err := node.MaterializeTools(ctx, data)
//
// # Sub-packages
//
//   - [toolkit] owns the MCP session: transport, handshake, catalog fetch,
//     and per-tool invocation.
//   - [log] provides the pluggable Logger used across the module.
package mcpnode
