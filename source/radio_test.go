package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQualityFromMediaType(t *testing.T) {
	Convey("Quality classification", t, func() {
		So(QualityFromMediaType("aac"), ShouldEqual, LossyAAC)
		So(QualityFromMediaType("ogg"), ShouldEqual, LossyOGG)
		So(QualityFromMediaType("mp3"), ShouldEqual, LossyMP3)

		Convey("Unrecognized encodings fall back to MP3", func() {
			So(QualityFromMediaType("wma"), ShouldEqual, LossyMP3)
			So(QualityFromMediaType(""), ShouldEqual, LossyMP3)
			So(QualityFromMediaType("flac"), ShouldEqual, LossyMP3)
		})
	})
}

func TestVariantID(t *testing.T) {
	Convey("Composite variant ids", t, func() {
		Convey("Are built with the separator", func() {
			So(VariantID("12345", "aac"), ShouldEqual, "12345--aac")
		})

		Convey("Round-trip through SplitVariantID", func() {
			station, mediaType := SplitVariantID(VariantID("12345", "aac"))
			So(station, ShouldEqual, "12345")
			So(mediaType, ShouldEqual, "aac")
		})

		Convey("A bare station id yields an empty discriminator", func() {
			station, mediaType := SplitVariantID("12345")
			So(station, ShouldEqual, "12345")
			So(mediaType, ShouldBeEmpty)
		})
	})
}

func TestRadio(t *testing.T) {
	Convey("Radio", t, func() {
		radio := &Radio{
			ID:       "12345",
			Provider: "tunein",
			Name:     "Smooth Jazz",
			Metadata: map[string]string{},
		}

		Convey("String representation is the name", func() {
			So(radio.String(), ShouldEqual, "Smooth Jazz")
		})

		Convey("Without variants it is not playable", func() {
			So(radio.Playable(), ShouldBeFalse)
		})

		Convey("With a variant it is playable", func() {
			radio.Variants = append(radio.Variants, StreamVariant{
				Provider: "tunein",
				ID:       VariantID("12345", "mp3"),
				Quality:  LossyMP3,
				URL:      "http://example.com/stream",
			})
			So(radio.Playable(), ShouldBeTrue)
		})

		Convey("Image is absent when the metadata key is missing", func() {
			So(radio.Image().IsAbsent(), ShouldBeTrue)

			radio.Metadata[MetadataImage] = "http://example.com/logo.png"
			So(radio.Image().MustGet(), ShouldEqual, "http://example.com/logo.png")
		})
	})
}

func TestStreamVariant(t *testing.T) {
	Convey("StreamVariant", t, func() {
		v := &StreamVariant{
			Provider: "tunein",
			ID:       VariantID("98765", "ogg"),
			Quality:  LossyOGG,
			URL:      "http://example.com/stream.ogg",
		}

		Convey("Recovers its composite parts", func() {
			So(v.StationID(), ShouldEqual, "98765")
			So(v.MediaType(), ShouldEqual, "ogg")
		})

		Convey("String prefers the quality", func() {
			So(v.String(), ShouldEqual, "lossy_ogg")
			v.Quality = ""
			So(v.String(), ShouldEqual, "http://example.com/stream.ogg")
		})
	})
}

func TestStreamDetails(t *testing.T) {
	Convey("NewStreamDetails", t, func() {
		details := NewStreamDetails("http://example.com/stream.aac", "aac")

		So(details.Kind, ShouldEqual, StreamKindURL)
		So(details.Path, ShouldEqual, "http://example.com/stream.aac")
		So(details.ContentType, ShouldEqual, "aac")
		So(details.SampleRate, ShouldEqual, 44100)
		So(details.BitDepth, ShouldEqual, 16)
	})
}

func TestEmptySearchResults(t *testing.T) {
	Convey("EmptySearchResults", t, func() {
		results := EmptySearchResults()

		Convey("Every category is present and empty", func() {
			So(results.Artists, ShouldBeEmpty)
			So(results.Albums, ShouldBeEmpty)
			So(results.Tracks, ShouldBeEmpty)
			So(results.Playlists, ShouldBeEmpty)
			So(results.Radios, ShouldBeEmpty)
			So(results.Radios, ShouldNotBeNil)
		})
	})
}
