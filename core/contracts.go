package core

import (
	"context"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

type Credentials struct {
	AccountName string `koanf:"account_name" mapstructure:"account_name" validate:"required"`
	SecretKey   string `koanf:"secret_key" mapstructure:"secret_key" validate:"required"`
	AccessKey   string `koanf:"access_key" mapstructure:"access_key" validate:"required"`
}

// Seller is the canonical seller record returned by by-id lookups.
// Handle is a placeholder and is always empty.
type Seller struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Handle   string `json:"handle"`
	IsActive bool   `json:"isActive"`
}

// SellerSummary is the seller listing projection. It carries no handle.
type SellerSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	IsActive bool   `json:"isActive"`
}

// Cluster is the canonical cluster record. ID is the lowercased cluster
// name and Title keeps the original casing.
type Cluster struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

type ClusterSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type TransportRequest struct {
	Method               string
	URL                  string
	Headers              map[string]string
	Body                 []byte
	Metadata             map[string]any
	MaxResponseBodyBytes int64
}

type TransportResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

type TransportAdapter interface {
	Kind() string
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

// APIRootResolver returns the host API root that outbound calls are proxied
// through. It is consulted on every URL build, never cached.
type APIRootResolver interface {
	APIRoot() string
}

type APIRootFunc func() string

func (f APIRootFunc) APIRoot() string {
	if f == nil {
		return ""
	}
	return f()
}

type StaticAPIRoot string

func (r StaticAPIRoot) APIRoot() string {
	return strings.TrimSpace(string(r))
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
