package vtex

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-commerce-vtex/core"
)

// Environment is the VTEX environment every account is addressed in.
const Environment = "vtexcommercestable"

const (
	HeaderAppToken    = "X-VTEX-API-AppToken"
	HeaderAppKey      = "X-VTEX-API-AppKey"
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"

	acceptJSON      = "application/json; charset=utf-8"
	contentTypeJSON = "application/json"
)

// Resolver turns relative VTEX API paths into proxied URLs and builds the
// static header set sent with every call.
type Resolver struct {
	credentials core.Credentials
	apiRoot     core.APIRootResolver
	proxyPath   string
}

func NewResolver(credentials core.Credentials, apiRoot core.APIRootResolver, proxyPath string) *Resolver {
	if apiRoot == nil {
		apiRoot = core.StaticAPIRoot("")
	}
	proxyPath = strings.TrimSpace(proxyPath)
	if proxyPath == "" {
		proxyPath = core.DefaultProxyPath
	}
	return &Resolver{
		credentials: credentials,
		apiRoot:     apiRoot,
		proxyPath:   proxyPath,
	}
}

func (r *Resolver) ExternalHost() string {
	return r.credentials.AccountName + "." + Environment
}

// ExternalURL is the real destination for path, before proxying.
func (r *Resolver) ExternalURL(path string) string {
	return "https://" + r.ExternalHost() + ".com.br/" + strings.TrimPrefix(path, "/")
}

// URL routes path through the host proxy. The API root is looked up on each
// call so host configuration changes apply immediately.
func (r *Resolver) URL(path string) string {
	return r.apiRoot.APIRoot() + r.proxyPath + "?url=" + encodeURIComponent(r.ExternalURL(path))
}

func (r *Resolver) Headers() map[string]string {
	return map[string]string{
		HeaderAppToken:    r.credentials.SecretKey,
		HeaderAppKey:      r.credentials.AccessKey,
		HeaderAccept:      acceptJSON,
		HeaderContentType: contentTypeJSON,
	}
}

var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func encodeURIComponent(value string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(value))
}
