package mcpnode

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workflowkit/mcp-node-go/toolkit"
)

// stubClient satisfies toolkit.Client with a canned catalog.
type stubClient struct {
	tools  []mcp.Tool
	closed bool
}

func (s *stubClient) Initialize(context.Context, mcp.InitializeRequest) (*mcp.InitializeResult, error) {
	return &mcp.InitializeResult{}, nil
}

func (s *stubClient) ListTools(context.Context, mcp.ListToolsRequest) (*mcp.ListToolsResult, error) {
	return &mcp.ListToolsResult{Tools: s.tools}, nil
}

func (s *stubClient) CallTool(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{Content: []mcp.Content{mcp.NewTextContent("ok")}}, nil
}

func (s *stubClient) Close() error {
	s.closed = true
	return nil
}

func stubDial(c toolkit.Client, err error, dials *int) toolkit.DialFunc {
	return func(context.Context, string) (toolkit.Client, error) {
		if dials != nil {
			*dials++
		}
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

func remote(name, description string) mcp.Tool {
	return mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: mcp.ToolInputSchema{Type: "object"},
	}
}

func gatewayData(selected ...string) NodeData {
	data := NodeData{
		Credentials: map[string]string{"zone": "eu1", "token": "tok"},
		Parameters:  map[string]any{},
	}
	if len(selected) > 0 {
		data.Parameters[ParamSelectedTools] = selected
	}
	return data
}

func TestListToolOptionsMissingCredentials(t *testing.T) {
	node := NewToolsNode()

	options := node.ListToolOptions(context.Background(), NodeData{})
	require.Len(t, options, 1)
	assert.Equal(t, SentinelNoCredentials, options[0].Name)
	assert.Empty(t, options[0].Value)
	assert.NotEmpty(t, options[0].Description)
}

func TestMaterializeToolsMissingCredentials(t *testing.T) {
	node := NewToolsNode()

	_, err := node.MaterializeTools(context.Background(), NodeData{})
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestListToolOptionsSortedByName(t *testing.T) {
	stub := &stubClient{tools: []mcp.Tool{
		remote("zeta", "last"),
		remote("alpha", "first"),
		remote("midway", "middle"),
	}}
	node := NewToolsNode(WithDialFunc(stubDial(stub, nil, nil)))

	options := node.ListToolOptions(context.Background(), gatewayData())
	require.Len(t, options, 3)
	assert.Equal(t, "alpha", options[0].Name)
	assert.Equal(t, "midway", options[1].Name)
	assert.Equal(t, "zeta", options[2].Name)
	assert.Equal(t, "alpha", options[0].Value)
	assert.Equal(t, "first", options[0].Description)
}

func TestListToolOptionsDiscoveryErrorBecomesOption(t *testing.T) {
	node := NewToolsNode(WithDialFunc(stubDial(nil, errors.New("gateway unreachable"), nil)))

	options := node.ListToolOptions(context.Background(), gatewayData())
	require.Len(t, options, 1)
	assert.Equal(t, errorOptionName, options[0].Name)
	assert.Empty(t, options[0].Value)
	assert.Contains(t, options[0].Description, "gateway unreachable")
}

func TestListToolOptionsTruncatesLongErrors(t *testing.T) {
	long := strings.Repeat("x", 500)
	node := NewToolsNode(WithDialFunc(stubDial(nil, errors.New(long), nil)))

	options := node.ListToolOptions(context.Background(), gatewayData())
	require.Len(t, options, 1)
	assert.True(t, strings.HasSuffix(options[0].Description, "..."))
	assert.Len(t, options[0].Description, DefaultErrorPreviewLen+3)
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	long := strings.Repeat("é", 200)
	node := NewToolsNode(WithDialFunc(stubDial(nil, errors.New(long), nil)))

	options := node.ListToolOptions(context.Background(), gatewayData())
	require.Len(t, options, 1)
	desc := options[0].Description
	assert.True(t, utf8.ValidString(desc), "truncation must not split a rune: %q", desc)
	assert.True(t, strings.HasSuffix(desc, "..."))
	assert.LessOrEqual(t, len(desc), DefaultErrorPreviewLen+3)
}

func TestListToolOptionsUnknownZone(t *testing.T) {
	node := NewToolsNode()
	data := NodeData{
		Credentials: map[string]string{"zone": "mars1", "token": "tok"},
	}

	// Credentials are present, so the missing-credentials hint would mislead:
	// the user gets the real error instead.
	options := node.ListToolOptions(context.Background(), data)
	require.Len(t, options, 1)
	assert.Equal(t, errorOptionName, options[0].Name)
	assert.NotEqual(t, SentinelNoCredentials, options[0].Name)
	assert.Contains(t, options[0].Description, "mars1")

	_, err := node.MaterializeTools(context.Background(), data)
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestListToolOptionsIncludeExclude(t *testing.T) {
	stub := &stubClient{tools: []mcp.Tool{
		remote("search_records", ""),
		remote("search_users", ""),
		remote("delete_record", ""),
	}}
	node := NewToolsNode(
		WithDialFunc(stubDial(stub, nil, nil)),
		WithIncludeTools("search_*", "delete_*"),
		WithExcludeTools("delete_*"),
	)

	options := node.ListToolOptions(context.Background(), gatewayData())
	require.Len(t, options, 2)
	assert.Equal(t, "search_records", options[0].Name)
	assert.Equal(t, "search_users", options[1].Name)
}

func TestMaterializeToolsSelection(t *testing.T) {
	stub := &stubClient{tools: []mcp.Tool{
		remote("search_records", ""),
		remote("search_users", ""),
		remote("create_record", ""),
	}}
	node := NewToolsNode(WithDialFunc(stubDial(stub, nil, nil)))

	// Exact names and glob patterns both select.
	tools, err := node.MaterializeTools(context.Background(), gatewayData("create_record", "search_u*"))
	require.NoError(t, err)
	require.Len(t, tools, 2)
	names := []string{tools[0].Name(), tools[1].Name()}
	assert.Contains(t, names, "create_record")
	assert.Contains(t, names, "search_users")

	// Nothing selected means nothing materialized.
	tools, err = node.MaterializeTools(context.Background(), gatewayData())
	require.NoError(t, err)
	assert.Empty(t, tools)
}

func TestMaterializeToolsRespectsNodeFilter(t *testing.T) {
	stub := &stubClient{tools: []mcp.Tool{
		remote("search_records", ""),
		remote("delete_record", ""),
	}}
	node := NewToolsNode(
		WithDialFunc(stubDial(stub, nil, nil)),
		WithExcludeTools("delete_*"),
	)

	// An excluded tool stays hidden even when the selection names it.
	tools, err := node.MaterializeTools(context.Background(), gatewayData("delete_record", "search_records"))
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "search_records", tools[0].Name())
}

func TestMaterializeToolsSessionFailure(t *testing.T) {
	node := NewToolsNode(WithDialFunc(stubDial(nil, errors.New("gateway unreachable"), nil)))

	_, err := node.MaterializeTools(context.Background(), gatewayData("anything"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway unreachable")
}

func TestSessionCacheSharedAcrossCalls(t *testing.T) {
	stub := &stubClient{tools: []mcp.Tool{remote("echo", "")}}
	dials := 0
	cache := toolkit.NewSessionCache()
	t.Cleanup(func() { _ = cache.Close() })

	node := NewToolsNode(
		WithDialFunc(stubDial(stub, nil, &dials)),
		WithSessionCache(cache),
	)

	options := node.ListToolOptions(context.Background(), gatewayData())
	require.Len(t, options, 1)
	tools, err := node.MaterializeTools(context.Background(), gatewayData("echo"))
	require.NoError(t, err)
	require.Len(t, tools, 1)

	assert.Equal(t, 1, dials, "cached session should be reused across calls")
	assert.Equal(t, 1, cache.Len())
}

func TestFreshSessionPerCallWithoutCache(t *testing.T) {
	stub := &stubClient{tools: []mcp.Tool{remote("echo", "")}}
	dials := 0
	node := NewToolsNode(WithDialFunc(stubDial(stub, nil, &dials)))

	node.ListToolOptions(context.Background(), gatewayData())
	_, err := node.MaterializeTools(context.Background(), gatewayData("echo"))
	require.NoError(t, err)

	assert.Equal(t, 2, dials)
}

func TestDescriptor(t *testing.T) {
	node := NewToolsNode()
	desc := node.Descriptor()

	assert.Equal(t, NodeName, desc.Name)
	assert.Equal(t, NodeLabel, desc.Label)
	assert.Equal(t, NodeVersion, desc.Version)
	assert.Equal(t, CredentialName, desc.Credential)

	require.Len(t, desc.Inputs, 1)
	input := desc.Inputs[0]
	assert.Equal(t, ParamSelectedTools, input.Name)
	assert.Equal(t, "multiOptions", input.Type)
	assert.Equal(t, LoadMethodListTools, input.LoadMethod)

	// The load method is wired and honors the never-fail contract.
	load, ok := desc.LoadMethods[LoadMethodListTools]
	require.True(t, ok)
	options := load(context.Background(), NodeData{})
	require.Len(t, options, 1)
	assert.Equal(t, SentinelNoCredentials, options[0].Name)
}
