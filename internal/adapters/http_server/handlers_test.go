package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	httpserver "hotel_builder/internal/adapters/http_server"
	"hotel_builder/internal/app"
	"hotel_builder/internal/clone"
	"hotel_builder/internal/domain"
)

// ---- fakes ----

type fakeRepo struct{ hotel domain.Hotel }

func (f *fakeRepo) UpsertHotel(ctx context.Context, h domain.Hotel) (int64, error) { return 42, nil }
func (f *fakeRepo) GetHotelByID(ctx context.Context, id int64) (domain.Hotel, error) {
	if f.hotel.Name == "" {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return f.hotel, nil
}
func (f *fakeRepo) GetHotelByName(ctx context.Context, name string) (domain.Hotel, error) {
	return f.GetHotelByID(ctx, 0)
}
func (f *fakeRepo) ListHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	return nil, nil
}
func (f *fakeRepo) RecordBuild(ctx context.Context, hotelID int64, art domain.SiteArtifact) error {
	return nil
}

type nopCache struct{}

func (nopCache) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (nopCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	return nil
}
func (nopCache) Del(ctx context.Context, key string) error { return nil }

type fakeTemplates struct{}

func (fakeTemplates) Get(name string) (string, error) {
	if name != "default" && name != "" {
		return "", domain.ErrNotFound
	}
	return `<html><body><h1 id="hotel-name"></h1></body></html>`, nil
}
func (fakeTemplates) List() ([]string, error) { return []string{"default"}, nil }

type fakeFetcher struct{ pages map[string][]byte }

func (f *fakeFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	if b, ok := f.pages[url]; ok {
		return b, nil
	}
	return nil, errors.New("remote 404")
}

func newTestMux(t *testing.T, repo *fakeRepo, pages map[string][]byte) http.Handler {
	t.Helper()
	sitesDir := t.TempDir()
	engine := clone.NewEngine(&fakeFetcher{pages: pages}, sitesDir, 2, zerolog.Nop())
	svc := app.NewBuildService(engine, fakeTemplates{}, repo, repo, nopCache{}, sitesDir, 10*time.Minute, zerolog.Nop())

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{B: svc, SitesDir: sitesDir})
	return srv.Mux()
}

func postJSON(t *testing.T, mux http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func hotelBody() map[string]any {
	return map[string]any{
		"hotelName": "Grand Istanbul Hotel",
		"phone":     "+90 212 555 0123",
		"email":     "info@grandistanbul.example",
		"address":   "Taksim Square 1, Istanbul",
	}
}

// ---- tests ----

func TestHealthz(t *testing.T) {
	mux := newTestMux(t, &fakeRepo{}, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
}

func TestBuildSite(t *testing.T) {
	mux := newTestMux(t, &fakeRepo{}, nil)

	rr := postJSON(t, mux, "/v1/sites/build", map[string]any{
		"template": "default",
		"hotel":    hotelBody(),
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: %d body: %s", rr.Code, rr.Body.String())
	}
	var art domain.SiteArtifact
	if err := json.Unmarshal(rr.Body.Bytes(), &art); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if art.Slug != "grand-istanbul-hotel" || art.Strategy != domain.StrategyTemplate {
		t.Fatalf("artifact: %+v", art)
	}
}

func TestBuildSite_UnknownTemplate(t *testing.T) {
	mux := newTestMux(t, &fakeRepo{}, nil)

	rr := postJSON(t, mux, "/v1/sites/build", map[string]any{
		"template": "nope",
		"hotel":    hotelBody(),
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type: %s", ct)
	}
}

func TestCloneSite(t *testing.T) {
	page := []byte(`<html><head><title>Old Hotel</title></head><body><h1>Old Hotel welcome</h1><p>body text</p></body></html>`)
	mux := newTestMux(t, &fakeRepo{}, map[string][]byte{"http://old.example/": page})

	rr := postJSON(t, mux, "/v1/sites/clone", map[string]any{
		"sourceUrl": "http://old.example/",
		"persist":   true,
		"hotel":     hotelBody(),
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: %d body: %s", rr.Code, rr.Body.String())
	}
}

func TestCloneSite_ByHotelID(t *testing.T) {
	page := []byte(`<html><head><title>Old Hotel</title></head><body><h1>Old Hotel welcome</h1><p>body text</p></body></html>`)
	repo := &fakeRepo{hotel: domain.Hotel{
		ID: 7, Name: "Grand Istanbul Hotel", Phone: "+90 212 555 0123",
		Email: "info@grandistanbul.example", Address: "Taksim Square 1, Istanbul",
	}}
	mux := newTestMux(t, repo, map[string][]byte{"http://old.example/": page})

	rr := postJSON(t, mux, "/v1/sites/clone", map[string]any{
		"sourceUrl": "http://old.example/",
		"hotelId":   7,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: %d body: %s", rr.Code, rr.Body.String())
	}
}

func TestCloneSite_UnknownHotelID(t *testing.T) {
	mux := newTestMux(t, &fakeRepo{}, nil)

	rr := postJSON(t, mux, "/v1/sites/clone", map[string]any{
		"sourceUrl": "http://old.example/",
		"hotelId":   7,
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: %d body: %s", rr.Code, rr.Body.String())
	}
}

func TestCloneSite_MissingFields(t *testing.T) {
	mux := newTestMux(t, &fakeRepo{}, nil)

	rr := postJSON(t, mux, "/v1/sites/clone", map[string]any{
		"sourceUrl": "http://old.example/",
		"hotel":     map[string]any{"hotelName": "X"},
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", rr.Code)
	}
}

func TestCloneSite_BadSourceURL(t *testing.T) {
	mux := newTestMux(t, &fakeRepo{}, nil)

	rr := postJSON(t, mux, "/v1/sites/clone", map[string]any{
		"sourceUrl": "ftp://x/",
		"hotel":     hotelBody(),
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: %d body: %s", rr.Code, rr.Body.String())
	}
}

func TestListTemplates(t *testing.T) {
	mux := newTestMux(t, &fakeRepo{}, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/templates", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	var out map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(out["templates"]) != 1 {
		t.Fatalf("templates: %v", out)
	}
}

func TestGetHotel_ETag(t *testing.T) {
	repo := &fakeRepo{hotel: domain.Hotel{ID: 1, Name: "Grand Istanbul Hotel"}}
	mux := newTestMux(t, repo, nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/hotels/1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	etag := rr.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/hotels/1", nil)
	req.Header.Set("If-None-Match", etag)
	rr2 := httptest.NewRecorder()
	mux.ServeHTTP(rr2, req)
	if rr2.Code != http.StatusNotModified {
		t.Fatalf("status: %d, want 304", rr2.Code)
	}
}

func TestGetHotel_BadID(t *testing.T) {
	mux := newTestMux(t, &fakeRepo{}, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/hotels/abc", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", rr.Code)
	}
}

func TestSearchHotel_RequiresName(t *testing.T) {
	mux := newTestMux(t, &fakeRepo{}, nil)
	rr := postJSON(t, mux, "/v1/hotels/search", map[string]any{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", rr.Code)
	}
}
