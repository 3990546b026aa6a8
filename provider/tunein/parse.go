package tunein

import (
	"context"
	"strings"

	"github.com/radiosan-cli/radiosan/log"
	"github.com/radiosan-cli/radiosan/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// parseRadio normalizes one audio catalog item into a Radio entity.
//
// The stream listing is a second, sequential round-trip. A station whose
// listing comes back absent or empty still parses, with zero variants; the
// caller decides how to surface unplayable stations.
func (t *TuneIn) parseRadio(ctx context.Context, it item) (mo.Option[*source.Radio], error) {
	stationID := it.PresetID
	if stationID == "" {
		stationID = it.GuideID
	}
	if stationID == "" {
		// A catalog record without any station id is unusable.
		log.Warnf("tunein: skipping catalog item without id: %q", it.Text)
		return mo.None[*source.Radio](), nil
	}

	radio := &source.Radio{
		ID:       stationID,
		Provider: ID,
		Name:     deriveName(it),
		Metadata: map[string]string{},
	}

	streams, err := t.streamItems(ctx, stationID)
	if err != nil {
		return mo.None[*source.Radio](), err
	}

	radio.Variants = lo.Map(streams, func(stream item, _ int) source.StreamVariant {
		return source.StreamVariant{
			Provider: ID,
			ID:       source.VariantID(stationID, stream.MediaType),
			Quality:  source.QualityFromMediaType(stream.MediaType),
			URL:      stream.URL,
		}
	})

	if image := deriveImage(it); image != "" {
		radio.Metadata[source.MetadataImage] = image
	}

	return mo.Some(radio), nil
}

// deriveName resolves the station display name.
//
// An explicit name field wins verbatim. Otherwise the combined text field is
// used: the segment after the first " | " delimiter, truncated at the first
// " (" to strip trailing descriptive parentheticals such as bitrates.
func deriveName(it item) string {
	if it.Name != "" {
		return it.Name
	}

	name := it.Text
	if _, after, found := strings.Cut(name, " | "); found {
		name = after
	}
	name, _, _ = strings.Cut(name, " (")
	return name
}

// deriveImage prefers the image field and falls back to logo.
// Empty means no artwork: callers must omit the metadata key entirely.
func deriveImage(it item) string {
	if it.Image != "" {
		return it.Image
	}
	return it.Logo
}
