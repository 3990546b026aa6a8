// Package provider manages the registry of built-in radio providers.
package provider

import (
	"context"

	"github.com/radiosan-cli/radiosan/provider/tunein"
	"github.com/radiosan-cli/radiosan/source"
)

// Provider represents a registered radio provider.
type Provider struct {
	ID   string
	Name string

	// Available reports whether the host configuration allows this
	// provider to be constructed at all.
	Available func() bool

	// CreateSource builds and starts the provider, ready for capability
	// calls. Fails with the provider's configuration error when required
	// settings are missing.
	CreateSource func(ctx context.Context) (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns all compiled-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   tunein.ID,
			Name: tunein.Name,
			Available: func() bool {
				cfg := tunein.ConfigFromViper()
				_, err := tunein.New(cfg)
				return err == nil
			},
			CreateSource: func(ctx context.Context) (source.Source, error) {
				p, err := tunein.New(tunein.ConfigFromViper())
				if err != nil {
					return nil, err
				}
				if err := p.Start(ctx); err != nil {
					return nil, err
				}
				return p, nil
			},
		},
	}
}

// Get finds a provider by id or name.
func Get(name string) (*Provider, bool) {
	for _, p := range Builtins() {
		if p.ID == name || p.Name == name {
			return p, true
		}
	}
	return nil, false
}
