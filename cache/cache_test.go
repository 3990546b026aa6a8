package cache

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/radiosan-cli/radiosan/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestKey(t *testing.T) {
	Convey("Key derivation", t, func() {
		params := url.Values{"c": {"presets"}, "render": {"json"}}

		Convey("Is deterministic", func() {
			So(Key("Browse.ashx", params), ShouldEqual, Key("Browse.ashx", params))
		})

		Convey("Ignores parameter insertion order", func() {
			reordered := url.Values{}
			reordered.Set("render", "json")
			reordered.Set("c", "presets")
			So(Key("Browse.ashx", reordered), ShouldEqual, Key("Browse.ashx", params))
		})

		Convey("Distinguishes endpoints and parameters", func() {
			So(Key("Describe.ashx", params), ShouldNotEqual, Key("Browse.ashx", params))
			So(Key("Browse.ashx", url.Values{"c": {"other"}}), ShouldNotEqual, Key("Browse.ashx", params))
		})
	})
}

func TestGetSet(t *testing.T) {
	Convey("Response cache", t, func() {
		value := json.RawMessage(`{"body":[]}`)

		Convey("Round-trips a stored envelope", func() {
			k := Key("Tune.ashx", url.Values{"id": {"roundtrip"}})
			So(Set(k, value, time.Minute), ShouldBeNil)

			got := Get(k)
			So(got.IsPresent(), ShouldBeTrue)
			So(string(got.MustGet()), ShouldEqual, string(value))
		})

		Convey("Reads an unknown key as absent", func() {
			So(Get("missing").IsAbsent(), ShouldBeTrue)
		})

		Convey("Reads an expired entry as absent", func() {
			k := Key("Tune.ashx", url.Values{"id": {"expired"}})
			So(Set(k, value, -time.Second), ShouldBeNil)
			So(Get(k).IsAbsent(), ShouldBeTrue)
		})

		Convey("Garbage collection removes only expired entries", func() {
			live := Key("Tune.ashx", url.Values{"id": {"live"}})
			dead := Key("Tune.ashx", url.Values{"id": {"dead"}})
			So(Set(live, value, time.Hour), ShouldBeNil)
			So(Set(dead, value, -time.Second), ShouldBeNil)

			CollectGarbage()

			So(Get(live).IsPresent(), ShouldBeTrue)
			So(Get(dead).IsAbsent(), ShouldBeTrue)
		})
	})
}
