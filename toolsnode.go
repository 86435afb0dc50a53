package mcpnode

import (
	"context"
	"errors"
	"sort"
	"unicode/utf8"

	"github.com/workflowkit/mcp-node-go/toolkit"
)

// Node identity as registered with the host.
const (
	NodeName     = "mcpGatewayTools"
	NodeLabel    = "MCP Gateway Tools"
	NodeVersion  = 1
	NodeCategory = "AI"
)

// Parameter and load-method names referenced by the descriptor.
const (
	// ParamSelectedTools is the multi-select parameter holding the tool
	// names (or glob patterns) the user picked.
	ParamSelectedTools = "selectedTools"

	// LoadMethodListTools is the load-method key the host uses to populate
	// the tool dropdown.
	LoadMethodListTools = "listTools"
)

// SentinelNoCredentials is the name of the single option ListToolOptions
// returns when credential data is incomplete.
const SentinelNoCredentials = "No credentials configured"

// errorOptionName heads the single option returned when discovery fails.
const errorOptionName = "Error loading tools"

// ToolsNode is the plugin node: it discovers the gateway's remote tools for
// the editor dropdown and materializes the selected subset for workflow
// execution. A ToolsNode holds no per-workflow state; every call builds (or
// borrows, with a SessionCache) its own session.
type ToolsNode struct {
	opts   nodeOptions
	filter toolFilter
}

// NewToolsNode creates the node with the given options.
func NewToolsNode(opts ...NodeOption) *ToolsNode {
	o := resolveNodeOptions(opts)
	return &ToolsNode{
		opts:   o,
		filter: toolFilter{include: o.includeTools, exclude: o.excludeTools},
	}
}

// Descriptor returns the declarative node shape consumed by the host.
func (n *ToolsNode) Descriptor() NodeDescriptor {
	return NodeDescriptor{
		Label:       NodeLabel,
		Name:        NodeName,
		Version:     NodeVersion,
		Category:    NodeCategory,
		Description: "Exposes tools from your hosted MCP gateway to the workflow.",
		Credential:  CredentialName,
		Inputs: []Property{
			{
				DisplayName: "Tools",
				Name:        ParamSelectedTools,
				Type:        "multiOptions",
				Description: "Remote tools to expose. Entries may be exact names or glob patterns.",
				LoadMethod:  LoadMethodListTools,
			},
		},
		LoadMethods: map[string]LoadOptionsFunc{
			LoadMethodListTools: n.ListToolOptions,
		},
	}
}

// ListToolOptions is the dropdown-population callback: it resolves the
// credential into a gateway URL, opens a session, and returns one option per
// discovered tool, sorted ascending by name. It never fails — missing
// credentials and discovery errors each collapse into a single option the
// user can read in the editor.
func (n *ToolsNode) ListToolOptions(ctx context.Context, data NodeData) []OptionItem {
	cred, err := CredentialFromData(data)
	if err != nil {
		if !errors.Is(err, ErrMissingCredential) {
			// Credentials are present but unusable (for example an unknown
			// zone): report the actual problem, not the missing-field hint.
			return []OptionItem{errorOption(err)}
		}
		n.opts.logger.Debug("tool discovery skipped: %v", err)
		return []OptionItem{{
			Name:        SentinelNoCredentials,
			Value:       "",
			Description: "Select a zone and enter an access token, then reopen this list.",
		}}
	}
	url, err := cred.SSEURL()
	if err != nil {
		return []OptionItem{errorOption(err)}
	}

	tk, release, err := n.session(ctx, url)
	if err != nil {
		n.opts.logger.Warn("tool discovery failed: %v", err)
		return []OptionItem{errorOption(err)}
	}
	defer release()

	tools, err := tk.Tools()
	if err != nil {
		return []OptionItem{errorOption(err)}
	}

	options := make([]OptionItem, 0, len(tools))
	for _, t := range tools {
		if !n.filter.keep(t.Name()) {
			continue
		}
		options = append(options, OptionItem{
			Name:        t.Name(),
			Value:       t.Name(),
			Description: t.Description(),
		})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Name < options[j].Name })
	return options
}

// MaterializeTools rebuilds a session independently of any earlier discovery
// call, fetches the full catalog again, and returns only the tools matching
// the user's selection (exact names or glob patterns). Unlike
// ListToolOptions this path reports configuration problems as errors: it
// runs at workflow build time, where the host wants a hard failure.
//
// The returned tools stay bound to the session that produced them, so the
// session is left open. With a SessionCache the cache owns teardown;
// otherwise the session lives until the host discards the tools.
func (n *ToolsNode) MaterializeTools(ctx context.Context, data NodeData) ([]*toolkit.Tool, error) {
	cred, err := CredentialFromData(data)
	if err != nil {
		return nil, err
	}
	url, err := cred.SSEURL()
	if err != nil {
		return nil, err
	}

	tk, _, err := n.session(ctx, url)
	if err != nil {
		return nil, err
	}

	all, err := tk.Tools()
	if err != nil {
		return nil, err
	}

	selected := data.StringsParam(ParamSelectedTools)
	tools := make([]*toolkit.Tool, 0, len(selected))
	for _, t := range all {
		if !n.filter.keep(t.Name()) {
			continue
		}
		if !matchesAny(selected, t.Name()) {
			continue
		}
		tools = append(tools, t)
	}
	n.opts.logger.Debug("materialized %d of %d tools from %s", len(tools), len(all), url)
	return tools, nil
}

// session returns an initialized toolkit for url. Without a session cache a
// fresh session is built per call, mirroring the host's one-shot callback
// contract, and release closes it. With a cache the session is shared and
// release is a no-op — the cache owns teardown.
func (n *ToolsNode) session(ctx context.Context, url string) (*toolkit.Toolkit, func(), error) {
	if n.opts.cache != nil {
		tk, err := n.opts.cache.GetOrCreate(ctx, url, n.newToolkit)
		if err != nil {
			return nil, nil, err
		}
		return tk, func() {}, nil
	}

	tk := n.newToolkit(url)
	if err := tk.Initialize(ctx); err != nil {
		return nil, nil, err
	}
	return tk, func() { _ = tk.Close() }, nil
}

func (n *ToolsNode) newToolkit(url string) *toolkit.Toolkit {
	opts := []toolkit.Option{
		toolkit.WithLogger(n.opts.logger),
		toolkit.WithHTTPClient(n.opts.httpClient),
		toolkit.WithClientInfo(n.opts.clientName, n.opts.clientVersion),
	}
	if n.opts.dial != nil {
		opts = append(opts, toolkit.WithDialFunc(n.opts.dial))
	}
	return toolkit.New(url, opts...)
}

func errorOption(err error) OptionItem {
	return OptionItem{
		Name:        errorOptionName,
		Value:       "",
		Description: truncate(err.Error(), DefaultErrorPreviewLen),
	}
}

// truncate trims s to at most n bytes, backing up to a rune boundary so a
// multi-byte character is never cut in half.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
