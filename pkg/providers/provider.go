// Package providers defines the interface implemented by each community data
// source the catalog can be fetched from, plus a small registry used by the
// fetch command.
package providers

import (
	"context"
	"fmt"

	"github.com/mklnz/stashkeep/pkg/catalog"
)

// CatalogProvider fetches the full game catalog from one upstream source.
// Providers are read-only collaborators: they never see progress state.
type CatalogProvider interface {
	Name() string
	FetchCatalog(ctx context.Context) (*catalog.Catalog, error)
}

var registry []CatalogProvider

// Register adds a provider to the registry. Called from provider package
// init() wiring in cmd/fetch.go.
func Register(p CatalogProvider) {
	registry = append(registry, p)
}

// All returns every registered provider.
func All() []CatalogProvider {
	return registry
}

// ByName returns the provider with the given name.
func ByName(name string) (CatalogProvider, error) {
	for _, p := range registry {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown provider: %s", name)
}
