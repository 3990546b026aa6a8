package tunein

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/radiosan-cli/radiosan/cache"
	"github.com/radiosan-cli/radiosan/constant"
	"github.com/radiosan-cli/radiosan/log"
	"github.com/radiosan-cli/radiosan/source"
	"github.com/samber/mo"
)

// params holds endpoint-specific query parameters before protocol augmentation.
type params map[string]string

// Cache intent markers for callAPI call sites.
const (
	ignoreCache = true
	useCache    = false
)

// envelope is the top-level JSON object returned by the directory API.
type envelope struct {
	Body []item `json:"body"`
}

// item is one element of an envelope body. The directory reuses a single
// record shape across browse, describe, and tune endpoints, so every field
// is optional and read with an explicit absence policy.
type item struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	Name      string `json:"name"`
	PresetID  string `json:"preset_id"`
	GuideID   string `json:"guide_id"`
	Image     string `json:"image"`
	Logo      string `json:"logo"`
	MediaType string `json:"media_type"`
	URL       string `json:"url"`
	Children  []item `json:"children"`
}

// callAPI performs one logical directory call.
//
// Unless the caller opts out, the response cache is consulted first; a hit
// returns without touching the throttler or the network. Transient remote
// failures (network errors, non-2xx, malformed JSON, an API error field) are
// absorbed: they log the offending request and read as absent, never as an
// error. Errors signal host misuse or context cancellation only.
func (t *TuneIn) callAPI(ctx context.Context, endpoint string, p params, skipCache bool) (mo.Option[envelope], error) {
	if !t.started.Load() {
		return mo.None[envelope](), ErrNotStarted
	}

	query := url.Values{}
	for name, value := range p {
		query.Set(name, value)
	}

	// Fixed protocol fields carried by every call.
	query.Set("render", "json")
	query.Set("formats", "ogg,aac,wma,mp3")
	query.Set("username", t.cfg.Username)
	query.Set("partnerId", "1")

	cacheKey := cache.Key(endpoint, query)
	if !skipCache {
		if raw, ok := cache.Get(cacheKey).Get(); ok {
			var env envelope
			if err := json.Unmarshal(raw, &env); err == nil {
				return mo.Some(env), nil
			}
		}
	}

	if err := t.throttler.Acquire(ctx); err != nil {
		return mo.None[envelope](), err
	}

	requestURL := fmt.Sprintf("%s/%s?%s", t.baseURL, endpoint, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return mo.None[envelope](), err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		log.Errorf("tunein: request failed: %s params=%v: %v", requestURL, p, err)
		return mo.None[envelope](), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("tunein: unexpected status %d: %s params=%v", resp.StatusCode, requestURL, p)
		return mo.None[envelope](), nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("tunein: read body: %s params=%v: %v", requestURL, p, err)
		return mo.None[envelope](), nil
	}

	// Probe as a generic object first: an "error" key marks the whole
	// response invalid regardless of the rest of its shape.
	var probe map[string]json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &probe) != nil {
		log.Errorf("tunein: malformed response: %s params=%v", requestURL, p)
		return mo.None[envelope](), nil
	}
	if _, found := probe["error"]; found {
		log.Errorf("tunein: api reported error: %s params=%v", requestURL, p)
		return mo.None[envelope](), nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Errorf("tunein: decode envelope: %s params=%v: %v", requestURL, p, err)
		return mo.None[envelope](), nil
	}

	if !skipCache {
		if err := cache.Set(cacheKey, raw, cache.TTL()); err != nil {
			log.Warnf("tunein: cache write failed: %v", err)
		}
	}

	return mo.Some(env), nil
}

// streamItems fetches the stream listing for a station. Cache-eligible with
// the default TTL. An absent or empty listing yields an empty slice.
func (t *TuneIn) streamItems(ctx context.Context, stationID string) ([]item, error) {
	env, err := t.callAPI(ctx, "Tune.ashx", params{"id": stationID}, useCache)
	if err != nil {
		return nil, err
	}

	envelope, ok := env.Get()
	if !ok {
		return nil, nil
	}
	return envelope.Body, nil
}

// Compile-time check that TuneIn satisfies the provider capability contract.
var _ source.Source = (*TuneIn)(nil)
