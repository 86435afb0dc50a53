package mcpnode

import (
	"net/http"

	"github.com/workflowkit/mcp-node-go/log"
	"github.com/workflowkit/mcp-node-go/toolkit"
)

// NodeOption configures a ToolsNode via the functional options pattern.
type NodeOption func(*nodeOptions)

type nodeOptions struct {
	logger        log.Logger
	httpClient    *http.Client
	dial          toolkit.DialFunc
	cache         *toolkit.SessionCache
	includeTools  []string
	excludeTools  []string
	clientName    string
	clientVersion string
}

func (o *nodeOptions) applyDefaults() {
	if o.logger == nil {
		o.logger = log.Default()
	}
	if o.clientName == "" {
		o.clientName = DefaultClientName
	}
	if o.clientVersion == "" {
		o.clientVersion = DefaultClientVersion
	}
}

func resolveNodeOptions(opts []NodeOption) nodeOptions {
	var o nodeOptions
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	o.applyDefaults()
	return o
}

// WithLogger sets the logger used by the node and its toolkits.
func WithLogger(l log.Logger) NodeOption {
	return func(o *nodeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHTTPClient sets the HTTP client backing the SSE transport.
func WithHTTPClient(hc *http.Client) NodeOption {
	return func(o *nodeOptions) { o.httpClient = hc }
}

// WithSessionCache shares sessions across discovery and materialization
// calls instead of re-handshaking per call. The caller owns the cache's
// lifecycle and must Close it for explicit teardown.
func WithSessionCache(cache *toolkit.SessionCache) NodeOption {
	return func(o *nodeOptions) { o.cache = cache }
}

// WithIncludeTools restricts the node to remote tools whose names match one
// of the given doublestar glob patterns. Empty means no restriction.
func WithIncludeTools(patterns ...string) NodeOption {
	return func(o *nodeOptions) { o.includeTools = patterns }
}

// WithExcludeTools hides remote tools whose names match one of the given
// doublestar glob patterns.
func WithExcludeTools(patterns ...string) NodeOption {
	return func(o *nodeOptions) { o.excludeTools = patterns }
}

// WithDialFunc replaces how the node's toolkits open their client
// connections. This is primarily useful for testing with fake or redirected
// endpoints.
func WithDialFunc(dial toolkit.DialFunc) NodeOption {
	return func(o *nodeOptions) { o.dial = dial }
}

// WithClientInfo overrides the client identity reported to the gateway
// during the MCP handshake.
func WithClientInfo(name, version string) NodeOption {
	return func(o *nodeOptions) {
		o.clientName = name
		o.clientVersion = version
	}
}
