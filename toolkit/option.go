package toolkit

import (
	"net/http"

	"github.com/workflowkit/mcp-node-go/log"
)

// Option configures a Toolkit via the functional options pattern.
type Option func(*options)

type options struct {
	logger        log.Logger
	httpClient    *http.Client
	dial          DialFunc
	clientName    string
	clientVersion string
}

func (o *options) applyDefaults() {
	if o.logger == nil {
		o.logger = log.Default()
	}
	if o.clientName == "" {
		o.clientName = "mcp-toolkit"
	}
	if o.clientVersion == "" {
		o.clientVersion = "0.0.0"
	}
	if o.dial == nil {
		o.dial = sseDial(o.httpClient)
	}
}

func resolveOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	o.applyDefaults()
	return o
}

// WithLogger sets the logger used for session-level messages.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHTTPClient sets the HTTP client backing the SSE transport. Ignored when
// a custom DialFunc is installed.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithDialFunc replaces how the toolkit opens its client connection. Used by
// tests to inject fake clients.
func WithDialFunc(dial DialFunc) Option {
	return func(o *options) { o.dial = dial }
}

// WithClientInfo sets the client identity reported during the MCP handshake.
func WithClientInfo(name, version string) Option {
	return func(o *options) {
		o.clientName = name
		o.clientVersion = version
	}
}
