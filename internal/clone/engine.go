package clone

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"hotel_builder/internal/adapters/observability"
	"hotel_builder/internal/domain"
)

// Engine runs the full clone pipeline: fetch, locate, rewrite, localize,
// materialize. One Engine is safe for concurrent use; every run owns its own
// parsed document.
type Engine struct {
	fetcher  domain.Fetcher
	sitesDir string
	workers  int
	log      zerolog.Logger
}

func NewEngine(fetcher domain.Fetcher, sitesDir string, assetWorkers int, log zerolog.Logger) *Engine {
	return &Engine{fetcher: fetcher, sitesDir: sitesDir, workers: assetWorkers, log: log}
}

// Clone fetches sourceURL, transplants the hotel's identity onto the page
// and materializes the result under the sites directory. The source page is
// read once; its brand vocabulary is captured from the <title> before any
// rewriting so leftover brand mentions can be swept afterwards.
func (e *Engine) Clone(ctx context.Context, sourceURL string, h domain.Hotel) (domain.SiteArtifact, error) {
	if err := validateSourceURL(sourceURL); err != nil {
		return domain.SiteArtifact{}, err
	}
	if !h.Usable() {
		return domain.SiteArtifact{}, fmt.Errorf("hotel record missing name, phone, email or address")
	}

	start := time.Now()
	body, err := e.fetcher.Get(ctx, sourceURL)
	observability.ObserveFetch("page", err, time.Since(start))
	if err != nil {
		return domain.SiteArtifact{}, fmt.Errorf("fetch source page: %w", err)
	}
	doc, err := Parse(string(body))
	if err != nil {
		return domain.SiteArtifact{}, fmt.Errorf("%w: %v", domain.ErrBadSource, err)
	}
	if doc.Find("body").Length() == 0 || strings.TrimSpace(doc.Find("body").Text()) == "" {
		return domain.SiteArtifact{}, fmt.Errorf("%w: page has no usable body", domain.ErrBadSource)
	}

	terms := brandTerms(doc)

	matches := LocateSlots(doc, h.Language)
	e.log.Debug().Str("url", sourceURL).Int("slots", len(matches)).Msg("slots located")
	ApplyHotel(doc, matches, h)
	ReplaceWholeWord(doc, h.Name, terms)

	_, dir := SiteDir(e.sitesDir, h.Name)
	report, err := LocalizeAssets(ctx, doc, sourceURL, dir, e.fetcher, e.workers, e.log)
	if err != nil {
		return domain.SiteArtifact{}, fmt.Errorf("localize assets: %w", err)
	}
	observability.ObserveAssets(report.Downloaded, report.Failed)
	e.log.Info().Str("hotel", h.Name).
		Int("assets_ok", report.Downloaded).Int("assets_failed", report.Failed).
		Msg("assets localized")

	out, err := Render(doc)
	if err != nil {
		return domain.SiteArtifact{}, err
	}
	art, err := Materialize(e.sitesDir, h, out, domain.StrategyClone)
	if err != nil {
		return art, err
	}
	if report.Failed > 0 {
		art.Message = fmt.Sprintf("site generated, %d asset(s) kept remote", report.Failed)
	}
	return art, nil
}

func validateSourceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: invalid source url %q", domain.ErrBadSource, raw)
	}
	return nil
}

// brandTerms extracts the source site's brand vocabulary from its title: the
// full title, the segment before the first separator, and every distinctive
// word. Generic hospitality words stay out so "Hotel" is never treated as a
// brand on its own.
func brandTerms(doc *goquery.Document) []string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return nil
	}
	terms := []string{title}
	for _, sep := range []string{"|", "–", " - "} {
		if i := strings.Index(title, sep); i > 0 {
			terms = append(terms, strings.TrimSpace(title[:i]))
			break
		}
	}
	for _, w := range strings.Fields(title) {
		w = strings.Trim(w, ".,|-–:;")
		if len([]rune(w)) < 4 || genericBrandWord(w) {
			continue
		}
		terms = append(terms, w)
	}
	return terms
}

func genericBrandWord(w string) bool {
	w = strings.ToLower(w)
	for _, kws := range hotelKeywords {
		for _, kw := range kws {
			if w == kw {
				return true
			}
		}
	}
	switch w {
	case "the", "and", "best", "official", "website", "site", "home", "page":
		return true
	}
	return false
}
