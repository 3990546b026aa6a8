// Package source defines the domain models and interfaces for radio discovery and stream resolution.
package source

import "github.com/samber/mo"

// SearchResults groups provider search matches per media category.
// Categories outside radio exist only for interface symmetry with richer
// providers and stay empty here.
type SearchResults struct {
	Artists   []any    `json:"artists"`
	Albums    []any    `json:"albums"`
	Tracks    []any    `json:"tracks"`
	Playlists []any    `json:"playlists"`
	Radios    []*Radio `json:"radios"`
}

// EmptySearchResults returns the fixed all-empty category structure.
func EmptySearchResults() SearchResults {
	return SearchResults{
		Artists:   []any{},
		Albums:    []any{},
		Tracks:    []any{},
		Playlists: []any{},
		Radios:    []*Radio{},
	}
}

// Source defines the required capabilities of a radio media provider.
//
// Transient remote failures degrade to empty or absent results, never errors.
// Errors signal host-side misuse (provider not started) or cancellation.
type Source interface {
	// Name returns the human-readable provider name.
	Name() string

	// ID returns the fixed provider tag stamped onto every entity.
	ID() string

	// Radios returns the user's preset stations in directory order.
	Radios() ([]*Radio, error)

	// Radio fetches one station's details. Absent when the station is
	// unknown or the response lacks the expected structure.
	Radio(id string) (mo.Option[*Radio], error)

	// StreamDetails resolves a composite stream variant id into playable
	// stream details. Absent when no listed stream matches.
	StreamDetails(streamID string) (mo.Option[StreamDetails], error)

	// Search queries the provider per media category.
	Search(query string) (SearchResults, error)
}
