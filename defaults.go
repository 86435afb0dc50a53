package mcpnode

// Client identity and presentation defaults.
const (
	// DefaultClientName is reported to the gateway during the MCP handshake.
	DefaultClientName = "workflowkit-mcp-node"

	// DefaultClientVersion is the version reported alongside DefaultClientName.
	DefaultClientVersion = "0.1.0"

	// DefaultErrorPreviewLen caps the length of error text embedded in the
	// discovery sentinel option.
	DefaultErrorPreviewLen = 120
)
