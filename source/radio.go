// Package source defines the domain models and interfaces for radio discovery and stream resolution.
package source

import (
	"strings"

	"github.com/samber/mo"
)

// VariantSep joins a station id and an encoding discriminator into a
// composite stream variant id. Splitting on it must recover both parts.
const VariantSep = "--"

// Quality identifies the encoded rendition a stream variant offers.
type Quality string

const (
	LossyMP3 Quality = "lossy_mp3"
	LossyAAC Quality = "lossy_aac"
	LossyOGG Quality = "lossy_ogg"
)

// String returns the canonical identifier of the quality level.
func (q Quality) String() string {
	return string(q)
}

// QualityFromMediaType classifies a raw directory media_type value.
// Anything unrecognized falls back to MP3.
func QualityFromMediaType(mediaType string) Quality {
	switch mediaType {
	case "aac":
		return LossyAAC
	case "ogg":
		return LossyOGG
	default:
		return LossyMP3
	}
}

// VariantID builds the composite id for one encoding of a station.
func VariantID(stationID, mediaType string) string {
	return stationID + VariantSep + mediaType
}

// SplitVariantID recovers the station id and the optional encoding
// discriminator from a composite variant id. A bare station id yields an
// empty discriminator.
func SplitVariantID(id string) (stationID, mediaType string) {
	stationID, mediaType, _ = strings.Cut(id, VariantSep)
	return stationID, mediaType
}

// StreamVariant is one specific encoding of a station's stream.
type StreamVariant struct {
	// Owning provider tag.
	Provider string `json:"provider"`
	// Composite id: "{station id}--{media type}".
	ID string `json:"item_id"`
	// Classified encoding quality.
	Quality Quality `json:"quality"`
	// Raw playable URL.
	URL string `json:"details"`
}

// StationID returns the base station id encoded in the composite id.
func (v *StreamVariant) StationID() string {
	stationID, _ := SplitVariantID(v.ID)
	return stationID
}

// MediaType returns the encoding discriminator encoded in the composite id.
func (v *StreamVariant) MediaType() string {
	_, mediaType := SplitVariantID(v.ID)
	return mediaType
}

// String returns the quality or URL for display.
func (v *StreamVariant) String() string {
	if v.Quality != "" {
		return v.Quality.String()
	}
	return v.URL
}

// MetadataImage is the metadata key holding a station's artwork URL.
const MetadataImage = "image"

// Radio represents one streamable station and its associated metadata.
// Instances are constructed fresh on every fetch and never mutated afterwards.
type Radio struct {
	// Provider-scoped identifier, stable across calls for the same station.
	ID string `json:"item_id"`
	// Owning provider tag.
	Provider string `json:"provider"`
	// Display name.
	Name string `json:"name"`
	// One variant per distinct encoding, in directory response order.
	Variants []StreamVariant `json:"provider_ids"`
	// Auxiliary display data. Keys are simply absent when unknown.
	Metadata map[string]string `json:"metadata"`
}

// String returns the display name of the station.
func (r *Radio) String() string {
	return r.Name
}

// Playable reports whether at least one stream variant was resolved.
// A station can parse successfully yet be unusable for playback when its
// stream listing came back empty.
func (r *Radio) Playable() bool {
	return len(r.Variants) > 0
}

// Image returns the station artwork URL when one was provided.
func (r *Radio) Image() mo.Option[string] {
	if image, ok := r.Metadata[MetadataImage]; ok {
		return mo.Some(image)
	}
	return mo.None[string]()
}
