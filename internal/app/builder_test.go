package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"hotel_builder/internal/app"
	"hotel_builder/internal/clone"
	"hotel_builder/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	upserts int
	hotel   domain.Hotel
}

func (f *fakeRepo) UpsertHotel(ctx context.Context, h domain.Hotel) (int64, error) {
	f.upserts++
	return 42, nil
}
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
	return []domain.Hotel{f.hotel}, nil
}

type fakeSites struct {
	builds []domain.SiteArtifact
}

func (f *fakeSites) RecordBuild(ctx context.Context, hotelID int64, art domain.SiteArtifact) error {
	f.builds = append(f.builds, art)
	return nil
}

type fakeCache struct {
	store map[string]domain.Hotel
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*domain.Hotel); ok {
		*d = v
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]domain.Hotel{}
	}
	if h, ok := v.(domain.Hotel); ok {
		c.store[key] = h
	}
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

type fakeTemplates struct{ tpl string }

func (f *fakeTemplates) Get(name string) (string, error) {
	if name == "missing" {
		return "", domain.ErrNotFound
	}
	return f.tpl, nil
}
func (f *fakeTemplates) List() ([]string, error) { return []string{"default"}, nil }

type fakeFetcher struct{ pages map[string][]byte }

func (f *fakeFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	if b, ok := f.pages[url]; ok {
		return b, nil
	}
	return nil, errors.New("remote 404")
}

// ---- helpers ----

func testHotel() domain.Hotel {
	return domain.Hotel{
		Name:    "Grand Istanbul Hotel",
		Phone:   "+90 212 555 0123",
		Email:   "info@grandistanbul.example",
		Address: "Taksim Square 1, Istanbul",
	}
}

func newService(t *testing.T, repo *fakeRepo, sites *fakeSites, cache *fakeCache, pages map[string][]byte) (*app.BuildService, string) {
	t.Helper()
	sitesDir := t.TempDir()
	engine := clone.NewEngine(&fakeFetcher{pages: pages}, sitesDir, 2, zerolog.Nop())
	templates := &fakeTemplates{tpl: `<html><body><h1 id="hotel-name">{{HOTEL_NAME}}</h1></body></html>`}
	svc := app.NewBuildService(engine, templates, repo, sites, cache, sitesDir, 10*time.Minute, zerolog.Nop())
	return svc, sitesDir
}

// ---- tests ----

func TestBuildFromTemplate(t *testing.T) {
	sites := &fakeSites{}
	svc, sitesDir := newService(t, &fakeRepo{}, sites, &fakeCache{}, nil)

	art, err := svc.BuildFromTemplate(context.Background(), "default", testHotel())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if art.Strategy != domain.StrategyTemplate || !art.Success {
		t.Fatalf("artifact: %+v", art)
	}
	b, err := os.ReadFile(filepath.Join(sitesDir, art.Slug, "index.html"))
	if err != nil {
		t.Fatalf("index.html: %v", err)
	}
	if !strings.Contains(string(b), "Grand Istanbul Hotel") {
		t.Fatalf("rendered page missing hotel name: %s", b)
	}
}

func TestBuildFromTemplate_UnknownTemplate(t *testing.T) {
	svc, _ := newService(t, &fakeRepo{}, &fakeSites{}, &fakeCache{}, nil)

	_, err := svc.BuildFromTemplate(context.Background(), "missing", testHotel())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCloneSiteWithRecord(t *testing.T) {
	page := []byte(`<html><head><title>Old Hotel</title></head><body><h1>Old Hotel welcome</h1><p>text here</p></body></html>`)
	repo := &fakeRepo{}
	sites := &fakeSites{}
	svc, _ := newService(t, repo, sites, &fakeCache{}, map[string][]byte{
		"http://old.example/": page,
	})

	art, err := svc.CloneSiteWithRecord(context.Background(), "http://old.example/", testHotel())
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	if repo.upserts != 1 {
		t.Fatalf("hotel not persisted")
	}
	if len(sites.builds) != 1 || sites.builds[0].Slug != art.Slug {
		t.Fatalf("build not recorded: %+v", sites.builds)
	}
}

func TestCloneSiteByID(t *testing.T) {
	page := []byte(`<html><head><title>Old Hotel</title></head><body><h1>Old Hotel welcome</h1><p>text here</p></body></html>`)
	repo := &fakeRepo{hotel: testHotel()}
	sites := &fakeSites{}
	svc, _ := newService(t, repo, sites, &fakeCache{}, map[string][]byte{
		"http://old.example/": page,
	})

	art, err := svc.CloneSiteByID(context.Background(), "http://old.example/", 7)
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	if art.Slug != "grand-istanbul-hotel" {
		t.Fatalf("slug = %q", art.Slug)
	}
	if len(sites.builds) != 1 {
		t.Fatalf("build not recorded: %+v", sites.builds)
	}
}

func TestCloneSiteByID_UnknownHotel(t *testing.T) {
	svc, _ := newService(t, &fakeRepo{}, &fakeSites{}, &fakeCache{}, nil)

	_, err := svc.CloneSiteByID(context.Background(), "http://old.example/", 7)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetHotel_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{hotel: testHotel()}
	cache := &fakeCache{}
	svc, _ := newService(t, repo, &fakeSites{}, cache, nil)

	h, err := svc.GetHotel(context.Background(), 1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.Name != "Grand Istanbul Hotel" {
		t.Fatalf("unexpected hotel: %+v", h)
	}

	// Mutate repo to prove the second read comes from cache.
	repo.hotel.Name = "SHOULD NOT SEE THIS"
	h2, err := svc.GetHotel(context.Background(), 1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h2.Name != "Grand Istanbul Hotel" {
		t.Fatalf("expected cached value, got %+v", h2)
	}
}

func TestSaveHotel_InvalidatesCache(t *testing.T) {
	cache := &fakeCache{store: map[string]domain.Hotel{"hotel:42": testHotel()}}
	svc, _ := newService(t, &fakeRepo{}, &fakeSites{}, cache, nil)

	id, err := svc.SaveHotel(context.Background(), testHotel())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id != 42 {
		t.Fatalf("id = %d", id)
	}
	found := false
	for _, k := range cache.dels {
		if k == "hotel:42" {
			found = true
		}
	}
	if !found {
		t.Fatalf("cache not invalidated, dels: %v", cache.dels)
	}
}
