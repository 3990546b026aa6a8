// Package tunein implements the TuneIn radio directory provider.
//
// The provider follows a two-phase lifecycle: New validates configuration
// without performing any I/O, Start attaches the shared network resources.
// Capability methods called before Start fault loudly instead of degrading.
package tunein

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/radiosan-cli/radiosan/auth"
	"github.com/radiosan-cli/radiosan/key"
	"github.com/radiosan-cli/radiosan/network"
	"github.com/radiosan-cli/radiosan/source"
	"github.com/radiosan-cli/radiosan/throttle"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

const (
	// ID is the fixed provider tag stamped onto every entity.
	ID = "tunein"
	// Name is the human-readable provider name.
	Name = "TuneIn Radio"

	apiBase = "https://opml.radiotime.com"

	// The directory tolerates at most one call per second per account.
	requestRate   = 1
	requestPeriod = time.Second
)

var (
	// ErrNotConfigured is returned by New when the provider is disabled or
	// credentials are missing. No partially usable provider is ever built.
	ErrNotConfigured = errors.New("tunein: provider is disabled or credentials are missing")

	// ErrNotStarted is returned when a capability method runs before Start.
	// This is a host programming error, not a degradable condition.
	ErrNotStarted = errors.New("tunein: provider used before Start")
)

// Config carries the static account settings consumed from the host configuration.
type Config struct {
	Enabled  bool
	Username string
	Password string
}

// ConfigFromViper assembles the provider configuration from global settings.
// The password is preferred from the system keyring, with the plain config
// value as a fallback for headless setups.
func ConfigFromViper() Config {
	password := viper.GetString(key.TuneInPassword)
	if stored, err := auth.GetPassword(); err == nil && stored != "" {
		password = stored
	}

	return Config{
		Enabled:  viper.GetBool(key.TuneInEnabled),
		Username: viper.GetString(key.TuneInUsername),
		Password: password,
	}
}

// TuneIn is the provider implementation backing the tunein source.
type TuneIn struct {
	cfg     Config
	baseURL string

	client    *http.Client
	throttler *throttle.Throttler
	started   atomic.Bool
}

// New validates the configuration and constructs an unstarted provider.
// It performs no I/O and fails only on missing configuration.
func New(cfg Config) (*TuneIn, error) {
	if !cfg.Enabled || cfg.Username == "" || cfg.Password == "" {
		return nil, ErrNotConfigured
	}

	return &TuneIn{cfg: cfg, baseURL: apiBase}, nil
}

// Start attaches the shared HTTP session and the admission throttler.
// It must complete before any capability method is invoked.
func (t *TuneIn) Start(_ context.Context) error {
	if t.client == nil {
		t.client = network.Client
	}
	t.throttler = throttle.New(requestRate, requestPeriod)
	t.started.Store(true)
	return nil
}

// Stop releases the throttler. The shared HTTP session is owned by the host
// and is deliberately left untouched.
func (t *TuneIn) Stop() {
	if t.started.CompareAndSwap(true, false) {
		t.throttler.Stop()
	}
}

// Name returns the human-readable provider name.
func (t *TuneIn) Name() string {
	return Name
}

// ID returns the fixed provider tag.
func (t *TuneIn) ID() string {
	return ID
}

// Radios returns the user's preset stations in directory order.
// Presets change frequently, so the listing call always bypasses the cache.
// Folder entries are not expanded.
func (t *TuneIn) Radios() ([]*source.Radio, error) {
	ctx := context.Background()

	env, err := t.callAPI(ctx, "Browse.ashx", params{"c": "presets"}, ignoreCache)
	if err != nil {
		return nil, err
	}

	items := []*source.Radio{}
	envelope, ok := env.Get()
	if !ok {
		return items, nil
	}

	for _, it := range envelope.Body {
		if it.Type != "audio" {
			continue
		}

		radio, err := t.parseRadio(ctx, it)
		if err != nil {
			return nil, err
		}
		if parsed, ok := radio.Get(); ok {
			items = append(items, parsed)
		}
	}

	return items, nil
}

// Radio fetches one station's details, bypassing the cache.
// Absent when the response lacks the expected nested structure.
func (t *TuneIn) Radio(id string) (mo.Option[*source.Radio], error) {
	ctx := context.Background()

	env, err := t.callAPI(ctx, "Describe.ashx", params{
		"c":      "composite",
		"detail": "listing",
		"id":     id,
	}, ignoreCache)
	if err != nil {
		return mo.None[*source.Radio](), err
	}

	envelope, ok := env.Get()
	if !ok || len(envelope.Body) == 0 || len(envelope.Body[0].Children) == 0 {
		return mo.None[*source.Radio](), nil
	}

	return t.parseRadio(ctx, envelope.Body[0].Children[0])
}

// StreamDetails resolves a composite stream variant id into playable details.
// The stream listing is cache-eligible. Without an encoding discriminator the
// first listed entry wins unconditionally.
func (t *TuneIn) StreamDetails(streamID string) (mo.Option[source.StreamDetails], error) {
	ctx := context.Background()
	stationID, mediaType := source.SplitVariantID(streamID)

	streams, err := t.streamItems(ctx, stationID)
	if err != nil {
		return mo.None[source.StreamDetails](), err
	}

	for _, stream := range streams {
		if stream.MediaType == mediaType || mediaType == "" {
			return mo.Some(source.NewStreamDetails(stream.URL, stream.MediaType)), nil
		}
	}

	return mo.None[source.StreamDetails](), nil
}

// Search always returns the fixed empty result set: the directory offers no
// usable search endpoint for account presets.
func (t *TuneIn) Search(_ string) (source.SearchResults, error) {
	if !t.started.Load() {
		return source.SearchResults{}, ErrNotStarted
	}
	return source.EmptySearchResults(), nil
}
