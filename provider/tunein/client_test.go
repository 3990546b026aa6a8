package tunein

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/radiosan-cli/radiosan/filesystem"
	"github.com/radiosan-cli/radiosan/throttle"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Keep cache writes off the real filesystem.
	filesystem.SetMemMapFs()
}

// directoryStub simulates the opml directory with per-endpoint canned bodies.
type directoryStub struct {
	browse   string
	describe string
	tune     map[string]string

	requests atomic.Int64
}

func (d *directoryStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.requests.Add(1)

	switch r.URL.Path {
	case "/Browse.ashx":
		fmt.Fprint(w, d.browse)
	case "/Describe.ashx":
		fmt.Fprint(w, d.describe)
	case "/Tune.ashx":
		fmt.Fprint(w, d.tune[r.URL.Query().Get("id")])
	default:
		http.NotFound(w, r)
	}
}

// newTestProvider builds a started provider wired to the stub server, with a
// throttler loose enough to keep tests fast.
func newTestProvider(stub *directoryStub) (*TuneIn, *httptest.Server) {
	server := httptest.NewServer(stub)

	p, err := New(validConfig())
	if err != nil {
		panic(err)
	}
	p.baseURL = server.URL
	p.client = server.Client()

	if err := p.Start(context.Background()); err != nil {
		panic(err)
	}
	p.throttler.Stop()
	p.throttler = throttle.New(1000, time.Second)

	return p, server
}

func TestRadios(t *testing.T) {
	Convey("Given a preset listing with mixed entry types", t, func() {
		stub := &directoryStub{
			browse: `{"body": [
				{"type": "audio", "preset_id": "s1001", "text": "Jazz FM | Smooth Jazz (128k aac)", "image": "http://img/s1001.png"},
				{"type": "link", "preset_id": "f2000", "text": "My Folder"},
				{"type": "audio", "preset_id": "s1002", "name": "News Talk", "logo": "http://img/s1002.png"},
				{"type": "audio", "preset_id": "s1003", "text": "Silent Station"}
			]}`,
			tune: map[string]string{
				"s1001": `{"body": [
					{"media_type": "aac", "url": "http://stream/s1001.aac"},
					{"media_type": "wma", "url": "http://stream/s1001.wma"}
				]}`,
				"s1002": `{"body": [{"media_type": "mp3", "url": "http://stream/s1002.mp3"}]}`,
				"s1003": `{"body": []}`,
			},
		}

		p, server := newTestProvider(stub)
		defer server.Close()
		defer p.Stop()

		radios, err := p.Radios()
		So(err, ShouldBeNil)

		Convey("Only audio entries survive, in directory order", func() {
			So(radios, ShouldHaveLength, 3)
			So(radios[0].ID, ShouldEqual, "s1001")
			So(radios[1].ID, ShouldEqual, "s1002")
			So(radios[2].ID, ShouldEqual, "s1003")
		})

		Convey("Names follow the derivation policy", func() {
			So(radios[0].Name, ShouldEqual, "Smooth Jazz")
			So(radios[1].Name, ShouldEqual, "News Talk")
		})

		Convey("Every entity carries the provider tag", func() {
			for _, radio := range radios {
				So(radio.Provider, ShouldEqual, "tunein")
			}
		})

		Convey("Variants are enumerated with classified qualities", func() {
			So(radios[0].Variants, ShouldHaveLength, 2)
			So(radios[0].Variants[0].ID, ShouldEqual, "s1001--aac")
			So(radios[0].Variants[0].Quality.String(), ShouldEqual, "lossy_aac")
			So(radios[0].Variants[1].ID, ShouldEqual, "s1001--wma")
			So(radios[0].Variants[1].Quality.String(), ShouldEqual, "lossy_mp3")
		})

		Convey("Image prefers image over logo and is omitted when absent", func() {
			So(radios[0].Metadata["image"], ShouldEqual, "http://img/s1001.png")
			So(radios[1].Metadata["image"], ShouldEqual, "http://img/s1002.png")
			_, hasImage := radios[2].Metadata["image"]
			So(hasImage, ShouldBeFalse)
		})

		Convey("An empty stream listing parses as an unplayable station", func() {
			So(radios[2].Playable(), ShouldBeFalse)
			So(radios[0].Playable(), ShouldBeTrue)
		})
	})

	Convey("An envelope with an error key degrades to an empty listing", t, func() {
		stub := &directoryStub{browse: `{"error": "bad credentials"}`}
		p, server := newTestProvider(stub)
		defer server.Close()
		defer p.Stop()

		radios, err := p.Radios()
		So(err, ShouldBeNil)
		So(radios, ShouldBeEmpty)
	})

	Convey("Malformed JSON degrades to an empty listing", t, func() {
		stub := &directoryStub{browse: `<opml>not json</opml>`}
		p, server := newTestProvider(stub)
		defer server.Close()
		defer p.Stop()

		radios, err := p.Radios()
		So(err, ShouldBeNil)
		So(radios, ShouldBeEmpty)
	})
}

func TestRadio(t *testing.T) {
	Convey("Station detail lookup", t, func() {
		stub := &directoryStub{
			describe: `{"body": [{"children": [
				{"type": "audio", "guide_id": "s2001", "text": "Radio Paradise | Main Mix (320k aac)"}
			]}]}`,
			tune: map[string]string{
				"s2001": `{"body": [{"media_type": "aac", "url": "http://stream/s2001.aac"}]}`,
			},
		}

		p, server := newTestProvider(stub)
		defer server.Close()
		defer p.Stop()

		Convey("Normalizes the first child of the first body element", func() {
			radio, err := p.Radio("s2001")
			So(err, ShouldBeNil)
			So(radio.IsPresent(), ShouldBeTrue)

			got := radio.MustGet()
			So(got.ID, ShouldEqual, "s2001")
			So(got.Name, ShouldEqual, "Main Mix")
			So(got.Variants, ShouldHaveLength, 1)
		})
	})

	Convey("A structurally mismatched envelope reads as absent", t, func() {
		stub := &directoryStub{describe: `{"body": [{"text": "no children here"}]}`}
		p, server := newTestProvider(stub)
		defer server.Close()
		defer p.Stop()

		radio, err := p.Radio("s2002")
		So(err, ShouldBeNil)
		So(radio.IsAbsent(), ShouldBeTrue)
	})
}

func TestStreamDetails(t *testing.T) {
	Convey("Given a station listing aac and ogg streams", t, func() {
		stub := &directoryStub{
			tune: map[string]string{
				"s3001": `{"body": [
					{"media_type": "aac", "url": "http://stream/s3001.aac"},
					{"media_type": "ogg", "url": "http://stream/s3001.ogg"}
				]}`,
			},
		}

		p, server := newTestProvider(stub)
		defer server.Close()
		defer p.Stop()

		Convey("A discriminator selects the matching entry", func() {
			details, err := p.StreamDetails("s3001--ogg")
			So(err, ShouldBeNil)
			So(details.IsPresent(), ShouldBeTrue)

			got := details.MustGet()
			So(got.Path, ShouldEqual, "http://stream/s3001.ogg")
			So(got.ContentType, ShouldEqual, "ogg")
			So(got.Kind, ShouldEqual, "url")
			So(got.SampleRate, ShouldEqual, 44100)
			So(got.BitDepth, ShouldEqual, 16)
		})

		Convey("Without a discriminator the first entry wins", func() {
			details, err := p.StreamDetails("s3001")
			So(err, ShouldBeNil)
			So(details.MustGet().Path, ShouldEqual, "http://stream/s3001.aac")
		})

		Convey("No matching encoding reads as absent", func() {
			details, err := p.StreamDetails("s3001--flac")
			So(err, ShouldBeNil)
			So(details.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Stream listings are served from the cache within the TTL", t, func() {
		stub := &directoryStub{
			tune: map[string]string{
				"s3100": `{"body": [{"media_type": "mp3", "url": "http://stream/s3100.mp3"}]}`,
			},
		}

		p, server := newTestProvider(stub)
		defer server.Close()
		defer p.Stop()

		first, err := p.StreamDetails("s3100--mp3")
		So(err, ShouldBeNil)
		requestsAfterFirst := stub.requests.Load()

		second, err := p.StreamDetails("s3100--mp3")
		So(err, ShouldBeNil)

		Convey("The second call performs zero network requests", func() {
			So(stub.requests.Load(), ShouldEqual, requestsAfterFirst)
		})

		Convey("Both calls return identical results", func() {
			So(second.MustGet(), ShouldResemble, first.MustGet())
		})
	})
}

func TestCallAPIAugmentation(t *testing.T) {
	Convey("Every call carries the fixed protocol fields", t, func() {
		var query map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query()
			fmt.Fprint(w, `{"body": []}`)
		}))
		defer server.Close()

		p, err := New(validConfig())
		So(err, ShouldBeNil)
		p.baseURL = server.URL
		p.client = server.Client()
		So(p.Start(context.Background()), ShouldBeNil)
		defer p.Stop()

		_, err = p.Radios()
		So(err, ShouldBeNil)

		So(query["render"], ShouldResemble, []string{"json"})
		So(query["formats"], ShouldResemble, []string{"ogg,aac,wma,mp3"})
		So(query["username"], ShouldResemble, []string{"listener"})
		So(query["partnerId"], ShouldResemble, []string{"1"})
		So(query["c"], ShouldResemble, []string{"presets"})
	})
}
