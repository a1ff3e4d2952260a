package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tessellate/mosaic/pkg/cache"
	"github.com/tessellate/mosaic/pkg/manifest"
	"github.com/tessellate/mosaic/pkg/masonry"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	m := &manifest.Manifest{
		Name: "test",
		Items: []masonry.Item{
			{ID: "a", Kind: masonry.KindImage, NaturalWidth: 400, NaturalHeight: 300},
			{ID: "b", Kind: masonry.KindImage, NaturalWidth: 400, NaturalHeight: 800},
			{ID: "c", Kind: masonry.KindVideo, NaturalWidth: 1920, NaturalHeight: 1080},
		},
	}
	s := &server{
		cli:      New(io.Discard, log.InfoLevel),
		manifest: m,
		cfg:      masonry.DefaultConfig(),
		store:    cache.NewMemoryCache(),
		keyer:    manifestKeyer(m),
	}
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	t.Cleanup(func() { s.store.Close() })
	return ts
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestServeHealthz(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]any
	if status := getJSON(t, ts.URL+"/healthz", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["items"] != float64(3) {
		t.Errorf("items field = %v", body["items"])
	}
}

func TestServeLayout(t *testing.T) {
	ts := newTestServer(t)

	var res masonry.Result
	if status := getJSON(t, ts.URL+"/layout?width=1000", &res); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if len(res.Positions) != 3 {
		t.Errorf("positions = %d, want 3", len(res.Positions))
	}
	if res.ColumnCount < 1 {
		t.Errorf("columnCount = %d", res.ColumnCount)
	}
	if res.TotalHeight <= 0 {
		t.Errorf("totalHeight = %v", res.TotalHeight)
	}
}

func TestServeLayoutExplicitColumns(t *testing.T) {
	ts := newTestServer(t)

	var res masonry.Result
	if status := getJSON(t, ts.URL+"/layout?width=1000&columns=2", &res); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if res.ColumnCount != 2 {
		t.Errorf("columnCount = %d, want 2", res.ColumnCount)
	}
}

func TestServeWindow(t *testing.T) {
	ts := newTestServer(t)

	var body windowOutput
	if status := getJSON(t, ts.URL+"/window?width=1000&scroll=0&height=800&buffer=0", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if len(body.Visible) == 0 {
		t.Error("expected visible items at scroll 0")
	}
	for _, it := range body.Visible {
		if it.Position.Height <= 0 {
			t.Errorf("item %s has no position", it.ID)
		}
	}

	// A viewport far past the content sees nothing.
	if status := getJSON(t, ts.URL+"/window?width=1000&scroll=100000&height=800&buffer=0", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if len(body.Visible) != 0 {
		t.Errorf("expected empty window past content, got %d items", len(body.Visible))
	}
}

func TestServeWindowBadRequest(t *testing.T) {
	ts := newTestServer(t)

	tests := []string{
		"/window?height=0",
		"/window?height=abc",
		"/window?scroll=abc",
		"/layout?width=abc",
		"/layout?columns=abc",
	}
	for _, path := range tests {
		var body map[string]string
		if status := getJSON(t, ts.URL+path, &body); status != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", path, status)
		}
	}
}
