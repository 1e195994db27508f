package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"hotel_builder/internal/adapters/observability"
	"hotel_builder/internal/clone"
	"hotel_builder/internal/domain"
	"hotel_builder/internal/template"
)

// BuildService fronts both generation strategies and the hotel store. Reads
// are cache-aside; writes invalidate.
type BuildService struct {
	engine    *clone.Engine
	templates domain.TemplateStore
	repo      domain.HotelRepository
	sites     domain.SiteRepository
	cache     domain.Cache
	sitesDir  string
	cacheTTL  time.Duration
	log       zerolog.Logger
}

func NewBuildService(
	engine *clone.Engine,
	templates domain.TemplateStore,
	repo domain.HotelRepository,
	sites domain.SiteRepository,
	cache domain.Cache,
	sitesDir string,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *BuildService {
	return &BuildService{
		engine: engine, templates: templates, repo: repo, sites: sites,
		cache: cache, sitesDir: sitesDir, cacheTTL: cacheTTL, log: log,
	}
}

// CloneSite runs the clone pipeline without touching the database.
func (s *BuildService) CloneSite(ctx context.Context, sourceURL string, h domain.Hotel) (domain.SiteArtifact, error) {
	start := time.Now()
	art, err := s.engine.Clone(ctx, sourceURL, h)
	observability.ObserveBuild(domain.StrategyClone, err, time.Since(start))
	if err != nil {
		return domain.SiteArtifact{}, err
	}
	return art, nil
}

// CloneSiteByID clones with a hotel already in the store; the persisted id
// lets the build land on the audit trail.
func (s *BuildService) CloneSiteByID(ctx context.Context, sourceURL string, hotelID int64) (domain.SiteArtifact, error) {
	h, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return domain.SiteArtifact{}, fmt.Errorf("load hotel %d: %w", hotelID, err)
	}
	art, err := s.CloneSite(ctx, sourceURL, h)
	if err != nil {
		return domain.SiteArtifact{}, err
	}
	if s.sites != nil {
		if rerr := s.sites.RecordBuild(ctx, hotelID, art); rerr != nil {
			s.log.Warn().Err(rerr).Int64("hotel_id", hotelID).Msg("record build failed")
		}
	}
	return art, nil
}

// BuildFromTemplateByID renders a stored design against a hotel loaded from
// the store.
func (s *BuildService) BuildFromTemplateByID(ctx context.Context, templateName string, hotelID int64) (domain.SiteArtifact, error) {
	h, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return domain.SiteArtifact{}, fmt.Errorf("load hotel %d: %w", hotelID, err)
	}
	return s.BuildFromTemplate(ctx, templateName, h)
}

// CloneSiteWithRecord persists the hotel, clones, and appends the build to
// the audit trail. The persisted id is used for cache invalidation.
func (s *BuildService) CloneSiteWithRecord(ctx context.Context, sourceURL string, h domain.Hotel) (domain.SiteArtifact, error) {
	id, err := s.repo.UpsertHotel(ctx, h)
	if err != nil {
		return domain.SiteArtifact{}, fmt.Errorf("persist hotel: %w", err)
	}
	h.ID = id
	s.invalidateHotel(ctx, h)

	art, err := s.CloneSite(ctx, sourceURL, h)
	if err != nil {
		return domain.SiteArtifact{}, err
	}
	if err := s.sites.RecordBuild(ctx, id, art); err != nil {
		// The site is already on disk; a lost audit row is not a failed build.
		s.log.Warn().Err(err).Int64("hotel_id", id).Msg("record build failed")
	}
	return art, nil
}

// BuildFromTemplate renders a stored design against the hotel record and
// materializes the result.
func (s *BuildService) BuildFromTemplate(ctx context.Context, templateName string, h domain.Hotel) (domain.SiteArtifact, error) {
	start := time.Now()
	art, err := s.buildFromTemplate(h, templateName)
	observability.ObserveBuild(domain.StrategyTemplate, err, time.Since(start))
	if err != nil {
		return domain.SiteArtifact{}, err
	}
	if s.sites != nil && h.ID != 0 {
		if rerr := s.sites.RecordBuild(ctx, h.ID, art); rerr != nil {
			s.log.Warn().Err(rerr).Int64("hotel_id", h.ID).Msg("record build failed")
		}
	}
	return art, nil
}

func (s *BuildService) buildFromTemplate(h domain.Hotel, name string) (domain.SiteArtifact, error) {
	if h.Name == "" {
		return domain.SiteArtifact{}, fmt.Errorf("hotel name is required")
	}
	tpl, err := s.templates.Get(name)
	if err != nil {
		return domain.SiteArtifact{}, err
	}
	out, err := template.Render(tpl, h)
	if err != nil {
		return domain.SiteArtifact{}, err
	}
	return clone.Materialize(s.sitesDir, h, out, domain.StrategyTemplate)
}

func (s *BuildService) ListTemplates() ([]string, error) {
	return s.templates.List()
}

// SaveHotel upserts the record and drops any cached reads for it.
func (s *BuildService) SaveHotel(ctx context.Context, h domain.Hotel) (int64, error) {
	id, err := s.repo.UpsertHotel(ctx, h)
	if err != nil {
		return 0, err
	}
	h.ID = id
	s.invalidateHotel(ctx, h)
	return id, nil
}

func (s *BuildService) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	key := fmt.Sprintf("hotel:%d", id)
	var h domain.Hotel
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &h); ok {
			return h, nil
		}
	}
	h, err := s.repo.GetHotelByID(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	}
	return h, nil
}

func (s *BuildService) SearchHotel(ctx context.Context, name string) (domain.Hotel, error) {
	key := "hotel:name:" + clone.Slug(name)
	var h domain.Hotel
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &h); ok {
			return h, nil
		}
	}
	h, err := s.repo.GetHotelByName(ctx, name)
	if err != nil {
		return domain.Hotel{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	}
	return h, nil
}

func (s *BuildService) ListHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	return s.repo.ListHotels(ctx, limit)
}

func (s *BuildService) invalidateHotel(ctx context.Context, h domain.Hotel) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, fmt.Sprintf("hotel:%d", h.ID))
	_ = s.cache.Del(ctx, "hotel:name:"+clone.Slug(h.Name))
}
