package wallpaper_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mytab/internal/infrastructure/wallpaper"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPreloader(t *testing.T) {
	pic := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(pic)
		case "/redirect":
			http.Redirect(w, r, "/ok.png", http.StatusFound)
		case "/text":
			_, _ = w.Write([]byte("<html>nope</html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	p := wallpaper.NewPreloader(srv.Client(), time.Second)
	ctx := context.Background()

	got, err := p.Preload(ctx, srv.URL+"/ok.png")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/ok.png", got)

	got, err = p.Preload(ctx, srv.URL+"/redirect?t=1")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/redirect?t=1", got, "original URL is returned")

	_, err = p.Preload(ctx, srv.URL+"/missing.jpg")
	assert.ErrorContains(t, err, "status 404")

	_, err = p.Preload(ctx, srv.URL+"/text")
	assert.ErrorContains(t, err, "failed to decode image")
}

func TestBingClient_FetchImages(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"images":[
			{"url":"/th?id=OHR.One_1920x1080.jpg","title":"One","copyright":"(c) A"},
			{"url":"","title":"skipped"},
			{"url":"https://cdn.example/two.jpg","title":"Two"}
		]}`))
	}))
	t.Cleanup(srv.Close)

	c := wallpaper.NewBingClient(srv.Client(), wallpaper.BingConfig{
		ArchiveURL: "https://www.bing.com/HPImageArchive.aspx?format=js",
		BaseURL:    "https://www.bing.com/",
		CORSRelay:  srv.URL + "/relay?",
	})

	images, err := c.FetchImages(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://www.bing.com/HPImageArchive.aspx?format=js", gotQuery)
	require.Len(t, images, 2)
	assert.Equal(t, "https://www.bing.com/th?id=OHR.One_1920x1080.jpg", images[0].URL)
	assert.Equal(t, "One", images[0].Title)
	assert.Equal(t, "https://cdn.example/two.jpg", images[1].URL)
}

func TestBingClient_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bad-json":
			_, _ = w.Write([]byte(`{"images":`))
		case "/slow":
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	t.Cleanup(srv.Close)

	_, err := wallpaper.NewBingClient(srv.Client(), wallpaper.BingConfig{ArchiveURL: srv.URL + "/down"}).
		FetchImages(context.Background())
	assert.ErrorContains(t, err, "status 502")

	_, err = wallpaper.NewBingClient(srv.Client(), wallpaper.BingConfig{ArchiveURL: srv.URL + "/bad-json"}).
		FetchImages(context.Background())
	assert.ErrorContains(t, err, "failed to decode bing archive")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = wallpaper.NewBingClient(srv.Client(), wallpaper.BingConfig{ArchiveURL: srv.URL + "/slow"}).FetchImages(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
