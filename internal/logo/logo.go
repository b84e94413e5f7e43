// Package logo fetches remote SVG team logos and rasterizes them to PNG.
package logo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
	"github.com/preston-bernstein/nhl-edge-service/internal/metrics"
)

const (
	DefaultSize        = 28
	MaxSize            = 512
	defaultHTTPTimeout = 5 * time.Second
	maxSVGBytes        = 1 << 20
)

// Outcome names how a fetch ended. Only OutcomeRendered carries an image.
type Outcome string

const (
	OutcomeRendered     Outcome = "rendered"
	OutcomeNoURL        Outcome = "no_url"
	OutcomeBadStatus    Outcome = "bad_status"
	OutcomeFetchFailed  Outcome = "fetch_failed"
	OutcomeDecodeFailed Outcome = "decode_failed"
)

// Key identifies one rendering: the same URL at two sizes is two keys.
type Key struct {
	URL  string
	Size int
}

// Result is the outcome of fetching Key. PNG is nil unless Outcome is OutcomeRendered.
type Result struct {
	Key     Key
	Outcome Outcome
	PNG     []byte
}

// OK reports whether an image was produced.
func (r Result) OK() bool {
	return r.Outcome == OutcomeRendered && len(r.PNG) > 0
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls the logo fetcher.
type Config struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Fetcher downloads and rasterizes logos. Failures never surface as errors; they are
// reported through Result.Outcome.
type Fetcher struct {
	client  httpDoer
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewFetcher constructs a Fetcher.
func NewFetcher(cfg Config) *Fetcher {
	var client httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Fetcher{client: client, logger: cfg.Logger, metrics: cfg.Metrics}
}

// ClampSize bounds a requested pixel size to [1, MaxSize], defaulting non-positive values.
func ClampSize(size int) int {
	if size <= 0 {
		return DefaultSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// Fetch retrieves key.URL and renders it at key.Size.
func (f *Fetcher) Fetch(ctx context.Context, key Key) Result {
	start := time.Now()
	key.Size = ClampSize(key.Size)
	res := f.fetch(ctx, key)
	f.metrics.RecordLogoFetch(string(res.Outcome), time.Since(start))
	if res.Outcome != OutcomeRendered {
		logging.Warn(logging.FromContext(ctx, f.logger), "logo unavailable",
			logging.FieldURL, key.URL,
			logging.FieldOutcome, string(res.Outcome),
		)
	}
	return res
}

func (f *Fetcher) fetch(ctx context.Context, key Key) Result {
	res := Result{Key: key}
	if strings.TrimSpace(key.URL) == "" {
		res.Outcome = OutcomeNoURL
		return res
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, key.URL, nil)
	if err != nil {
		res.Outcome = OutcomeFetchFailed
		return res
	}
	req.Header.Set("Accept", "image/svg+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		res.Outcome = OutcomeFetchFailed
		return res
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		res.Outcome = OutcomeBadStatus
		return res
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSVGBytes))
	if err != nil {
		res.Outcome = OutcomeFetchFailed
		return res
	}

	img, err := Rasterize(body, key.Size)
	if err != nil {
		res.Outcome = OutcomeDecodeFailed
		return res
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		res.Outcome = OutcomeDecodeFailed
		return res
	}

	res.Outcome = OutcomeRendered
	res.PNG = buf.Bytes()
	return res
}

// Rasterize draws svg centered into a size x size RGBA image, preserving aspect ratio.
func Rasterize(svg []byte, size int) (img *image.RGBA, err error) {
	size = ClampSize(size)
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	if len(icon.SVGPaths) == 0 {
		return nil, errors.New("parse svg: no drawable paths")
	}

	w, h := float64(size), float64(size)
	if vbW, vbH := icon.ViewBox.W, icon.ViewBox.H; vbW > 0 && vbH > 0 {
		scale := min(float64(size)/vbW, float64(size)/vbH)
		w, h = vbW*scale, vbH*scale
	}
	icon.SetTarget((float64(size)-w)/2, (float64(size)-h)/2, w, h)

	img = image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)

	// The rasterizer panics on some malformed path data.
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("render svg: %v", r)
		}
	}()
	icon.Draw(dasher, 1.0)
	return img, nil
}
