package logo

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nhl-edge-service/internal/metrics"
)

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<rect x="0" y="0" width="100" height="100" fill="#c8102e"/>
</svg>`

const wideSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100">
<rect x="0" y="0" width="200" height="100" fill="#0038a8"/>
</svg>`

func svgServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/square.svg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write([]byte(squareSVG))
	})
	mux.HandleFunc("/broken.svg", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not an svg"))
	})
	mux.HandleFunc("/missing.svg", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRasterizeProducesSquareImage(t *testing.T) {
	img, err := Rasterize([]byte(squareSVG), 28)
	require.NoError(t, err)
	assert.Equal(t, 28, img.Bounds().Dx())
	assert.Equal(t, 28, img.Bounds().Dy())

	_, _, _, a := img.At(14, 14).RGBA()
	assert.NotZero(t, a, "center pixel should be painted")
}

func TestRasterizeKeepsAspectRatio(t *testing.T) {
	img, err := Rasterize([]byte(wideSVG), 40)
	require.NoError(t, err)

	_, _, _, top := img.At(20, 2).RGBA()
	_, _, _, middle := img.At(20, 20).RGBA()
	assert.Zero(t, top, "letterbox area should stay transparent")
	assert.NotZero(t, middle)
}

func TestRasterizeRejectsGarbage(t *testing.T) {
	_, err := Rasterize([]byte("definitely not svg"), 28)
	assert.Error(t, err)
}

func TestClampSize(t *testing.T) {
	assert.Equal(t, DefaultSize, ClampSize(0))
	assert.Equal(t, DefaultSize, ClampSize(-3))
	assert.Equal(t, 64, ClampSize(64))
	assert.Equal(t, MaxSize, ClampSize(5000))
}

func TestFetchRendersPNG(t *testing.T) {
	srv := svgServer(t)
	rec := metrics.NewRecorder()
	f := NewFetcher(Config{HTTPClient: srv.Client(), Metrics: rec})

	res := f.Fetch(context.Background(), Key{URL: srv.URL + "/square.svg", Size: 32})

	require.True(t, res.OK())
	assert.Equal(t, OutcomeRendered, res.Outcome)
	decoded, err := png.Decode(bytes.NewReader(res.PNG))
	require.NoError(t, err)
	assert.Equal(t, 32, decoded.Bounds().Dx())
	assert.Equal(t, 1, rec.LogoFetches(string(OutcomeRendered)))
}

func TestFetchOutcomes(t *testing.T) {
	srv := svgServer(t)
	f := NewFetcher(Config{HTTPClient: srv.Client()})

	cases := []struct {
		name string
		url  string
		want Outcome
	}{
		{"empty url", "", OutcomeNoURL},
		{"not found", srv.URL + "/missing.svg", OutcomeBadStatus},
		{"not svg", srv.URL + "/broken.svg", OutcomeDecodeFailed},
		{"unreachable", "http://127.0.0.1:1/logo.svg", OutcomeFetchFailed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := f.Fetch(context.Background(), Key{URL: c.url})
			assert.Equal(t, c.want, res.Outcome)
			assert.Nil(t, res.PNG)
			assert.False(t, res.OK())
			assert.Equal(t, DefaultSize, res.Key.Size)
		})
	}
}
