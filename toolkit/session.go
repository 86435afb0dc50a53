package toolkit

import (
	"context"
	"net/http"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
)

// sseDial returns the default DialFunc: an SSE client from the mcp-go SDK,
// started and ready for the protocol handshake.
func sseDial(hc *http.Client) DialFunc {
	return func(ctx context.Context, url string) (Client, error) {
		var opts []transport.ClientOption
		if hc != nil {
			opts = append(opts, transport.WithHTTPClient(hc))
		}
		c, err := mcpclient.NewSSEMCPClient(url, opts...)
		if err != nil {
			return nil, err
		}
		if err := c.Start(ctx); err != nil {
			_ = c.Close()
			return nil, err
		}
		return c, nil
	}
}
