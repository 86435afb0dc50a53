// Package toolkit owns one MCP session against a remote tool server: it
// opens the SSE transport, runs the protocol handshake, fetches the tool
// catalog once, and hands out invocable tools bound to that session.
//
// Protocol work is delegated to the mcp-go SDK. A Toolkit is bound to a
// single URL; discovery and workflow materialization each build their own
// Toolkit unless a SessionCache is used.
package toolkit

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// Client is the slice of the MCP client surface the toolkit uses. It is
// satisfied by *client.Client from mcp-go; tests inject fakes.
type Client interface {
	Initialize(ctx context.Context, req mcp.InitializeRequest) (*mcp.InitializeResult, error)
	ListTools(ctx context.Context, req mcp.ListToolsRequest) (*mcp.ListToolsResult, error)
	CallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
	Close() error
}

// DialFunc opens a started (but not yet initialized) client connection to
// the given URL.
type DialFunc func(ctx context.Context, url string) (Client, error)

// Toolkit is one transport + client pair bound to one URL, with the tool
// catalog fetched exactly once per successful Initialize.
type Toolkit struct {
	url       string
	sessionID string
	opts      options

	mu          sync.Mutex
	client      Client
	tools       []*Tool
	initialized bool
}

// New creates a Toolkit for the given SSE endpoint URL. No connection is
// made until Initialize.
func New(url string, opts ...Option) *Toolkit {
	o := resolveOptions(opts)
	return &Toolkit{
		url:       url,
		sessionID: uuid.NewString(),
		opts:      o,
	}
}

// URL returns the endpoint this toolkit is bound to.
func (tk *Toolkit) URL() string { return tk.url }

// SessionID returns the toolkit's locally assigned session identifier, used
// to correlate log lines.
func (tk *Toolkit) SessionID() string { return tk.sessionID }

// Initialize dials the server, runs the MCP handshake, and fetches the tool
// catalog. A second call on an already-initialized toolkit is a no-op. On
// failure all internal state is reset so a subsequent call retries from
// scratch.
func (tk *Toolkit) Initialize(ctx context.Context) error {
	tk.mu.Lock()
	defer tk.mu.Unlock()

	if tk.initialized {
		return nil
	}

	if err := tk.initLocked(ctx); err != nil {
		tk.resetLocked()
		return fmt.Errorf("toolkit: initialize %s: %w", tk.url, err)
	}

	tk.initialized = true
	tk.opts.logger.Debug("session %s: initialized, %d tools discovered", tk.sessionID, len(tk.tools))
	return nil
}

func (tk *Toolkit) initLocked(ctx context.Context) error {
	c, err := tk.opts.dial(ctx, tk.url)
	if err != nil {
		return err
	}
	tk.client = c

	_, err = c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			ClientInfo: mcp.Implementation{
				Name:    tk.opts.clientName,
				Version: tk.opts.clientVersion,
			},
		},
	})
	if err != nil {
		return err
	}

	listed, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return err
	}

	tools := make([]*Tool, 0, len(listed.Tools))
	for _, rt := range listed.Tools {
		tools = append(tools, newTool(tk, rt))
	}
	tk.tools = tools
	return nil
}

func (tk *Toolkit) resetLocked() {
	if tk.client != nil {
		_ = tk.client.Close()
	}
	tk.client = nil
	tk.tools = nil
	tk.initialized = false
}

// Tools returns the invocable tools derived from the remote catalog. It
// requires a prior successful Initialize; the returned tools remain bound to
// this toolkit's session and become unusable after Close.
func (tk *Toolkit) Tools() ([]*Tool, error) {
	tk.mu.Lock()
	defer tk.mu.Unlock()

	if !tk.initialized {
		return nil, ErrNotInitialized
	}
	out := make([]*Tool, len(tk.tools))
	copy(out, tk.tools)
	return out, nil
}

// Close tears down the session. The toolkit may be re-initialized afterwards.
func (tk *Toolkit) Close() error {
	tk.mu.Lock()
	defer tk.mu.Unlock()

	var err error
	if tk.client != nil {
		err = tk.client.Close()
	}
	tk.client = nil
	tk.tools = nil
	tk.initialized = false
	return err
}

// call issues one tools/call exchange over this toolkit's session.
func (tk *Toolkit) call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	tk.mu.Lock()
	c := tk.client
	tk.mu.Unlock()

	if c == nil {
		return nil, ErrNotInitialized
	}

	result, err := c.CallTool(ctx, mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	})
	if err != nil {
		return nil, err
	}
	if result.IsError {
		tk.opts.logger.Warn("session %s: tool %s reported an error result", tk.sessionID, name)
	}
	return result, nil
}
