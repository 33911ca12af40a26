package vtex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goliatone/go-commerce-vtex/core"
)

const maxErrorBodySnippet = 512

// client issues the single GET behind every resource operation.
type client struct {
	resolver     *Resolver
	transport    core.TransportAdapter
	maxBodyBytes int64
}

func (c *client) get(ctx context.Context, resource string, path string) ([]byte, error) {
	target := c.resolver.URL(path)
	res, err := c.transport.Do(ctx, core.TransportRequest{
		Method:  http.MethodGet,
		URL:     target,
		Headers: c.resolver.Headers(),
		Metadata: map[string]any{
			"resource": resource,
		},
		MaxResponseBodyBytes: c.maxBodyBytes,
	})
	if err != nil {
		return nil, err
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, core.ExternalError(nil,
			fmt.Sprintf("vtex: %s request failed with status %d", resource, res.StatusCode),
			map[string]any{
				"resource":    resource,
				"status_code": res.StatusCode,
				"body":        snippet(res.Body),
			},
		)
	}
	return res.Body, nil
}

func decodeJSON[T any](body []byte, resource string) (T, error) {
	var out T
	if len(bytes.TrimSpace(body)) == 0 {
		return out, core.DecodingError(nil, resource, "vtex: "+resource+" response body is empty")
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, core.DecodingError(err, resource, "vtex: decode "+resource+" response")
	}
	return out, nil
}

func snippet(body []byte) string {
	if len(body) > maxErrorBodySnippet {
		return string(body[:maxErrorBodySnippet])
	}
	return string(body)
}
