// Package source defines the domain models and interfaces for radio discovery and stream resolution.
package source

// Declared audio constants for resolved streams. The radio directory does not
// report sample characteristics, so these are fixed provider-level values.
const (
	StreamKindURL = "url"
	SampleRate    = 44100
	BitDepth      = 16
)

// StreamDetails describes a playable stream at resolution time.
type StreamDetails struct {
	Kind        string `json:"kind"`
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	SampleRate  int    `json:"sample_rate"`
	BitDepth    int    `json:"bit_depth"`
}

// NewStreamDetails constructs URL-kind stream details with the declared
// provider audio constants.
func NewStreamDetails(path, contentType string) StreamDetails {
	return StreamDetails{
		Kind:        StreamKindURL,
		Path:        path,
		ContentType: contentType,
		SampleRate:  SampleRate,
		BitDepth:    BitDepth,
	}
}
