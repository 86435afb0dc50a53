package mcpnode

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/workflowkit/mcp-node-go/internal/schema"
)

// Zone is a region code selecting which hosted gateway instance to contact.
type Zone string

// Supported gateway zones.
const (
	ZoneUS1 Zone = "us1"
	ZoneEU1 Zone = "eu1"
	ZoneEU2 Zone = "eu2"
	ZoneAU1 Zone = "au1"
	ZoneJP1 Zone = "jp1"
)

var zoneHosts = map[Zone]string{
	ZoneUS1: "us1.gateway.workflowkit.app",
	ZoneEU1: "eu1.gateway.workflowkit.app",
	ZoneEU2: "eu2.gateway.workflowkit.app",
	ZoneAU1: "au1.gateway.workflowkit.app",
	ZoneJP1: "jp1.gateway.workflowkit.app",
}

// Zones returns the supported zones in display order.
func Zones() []Zone {
	return []Zone{ZoneUS1, ZoneEU1, ZoneEU2, ZoneAU1, ZoneJP1}
}

// Host returns the gateway host for the zone, or "" for an unknown zone.
func (z Zone) Host() string {
	return zoneHosts[z]
}

// Valid reports whether z is one of the supported region codes.
func (z Zone) Valid() bool {
	_, ok := zoneHosts[z]
	return ok
}

// Credential selects the gateway instance and authenticates the user. The
// jsonschema tags drive the host-facing descriptor built by
// CredentialDescriptor.
type Credential struct {
	Zone  Zone   `json:"zone" jsonschema:"enum=us1,enum=eu1,enum=eu2,enum=au1,enum=jp1,description=Region code of the gateway instance hosting your account"`
	Token string `json:"token" jsonschema:"description=Personal access token for the gateway's MCP endpoint"`
}

// SSEURL composes the gateway's SSE endpoint from zone and token.
// Returns ErrMissingCredential when either field is empty and ErrUnknownZone
// for an unsupported region code.
func (c Credential) SSEURL() (string, error) {
	if c.Zone == "" || strings.TrimSpace(c.Token) == "" {
		return "", ErrMissingCredential
	}
	if !c.Zone.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownZone, c.Zone)
	}
	return fmt.Sprintf("https://%s/mcp/api/v1/u/%s/sse", c.Zone.Host(), url.PathEscape(c.Token)), nil
}

// CredentialName is the credential type this node consumes, as registered
// with the host's credential store.
const CredentialName = "mcpGatewayApi"

// CredentialFromData extracts and validates the credential fields supplied by
// the host.
func CredentialFromData(data NodeData) (Credential, error) {
	cred := Credential{
		Zone:  Zone(data.Credentials["zone"]),
		Token: data.Credentials["token"],
	}
	if _, err := cred.SSEURL(); err != nil {
		return Credential{}, err
	}
	return cred, nil
}

// CredentialDescriptor returns the declarative field list consumed by the
// host's credential store: a zone selector and a secret token. Pure data, no
// logic. Field shapes are derived from the Credential struct's schema; the
// zone options and the token's secret flag are host-specific overrides.
func CredentialDescriptor() []Property {
	var props []Property
	for _, f := range schema.Fields[Credential]() {
		p := Property{
			DisplayName: titleCase(f.Name),
			Name:        f.Name,
			Type:        "string",
			Description: f.Description,
			Required:    true,
		}
		if len(f.Enum) > 0 {
			p.Type = "options"
			p.Options = make([]OptionItem, 0, len(f.Enum))
			for _, v := range f.Enum {
				p.Options = append(p.Options, OptionItem{Name: v, Value: v})
			}
			p.Default = f.Enum[0]
		}
		if f.Name == "token" {
			p.Secret = true
		}
		props = append(props, p)
	}
	return props
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
