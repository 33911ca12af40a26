package commerce

import (
	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-commerce-vtex/adapters/gocommand"
	"github.com/goliatone/go-commerce-vtex/core"
	"github.com/goliatone/go-commerce-vtex/providers/vtex"
	"github.com/goliatone/go-commerce-vtex/query"
)

// Facade exposes the connection services as go-command queries.
type Facade struct {
	services *vtex.Services
	queries  query.Queries
}

func NewFacade(services *vtex.Services) (*Facade, error) {
	if services == nil {
		return nil, core.ValidationError("commerce: services are required")
	}
	return &Facade{
		services: services,
		queries:  query.NewQueries(services),
	}, nil
}

// Setup builds the services and wraps them in a Facade.
func Setup(cfg Config, opts ...Option) (*Facade, error) {
	services, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFacade(services)
}

func (f *Facade) Services() *vtex.Services {
	if f == nil {
		return nil
	}
	return f.services
}

func (f *Facade) Queries() query.Queries {
	if f == nil {
		return query.NewQueries(nil)
	}
	return f.queries
}

// Subscribe registers the facade queries with the go-command dispatcher.
// Callers release them with gocommand.Unsubscribe.
func (f *Facade) Subscribe(adapter *gocommand.RegistryAdapter) ([]dispatcher.Subscription, error) {
	if f == nil {
		return nil, core.ValidationError("commerce: facade is required")
	}
	return gocommand.RegisterQueries(adapter, f.queries)
}
