package clone

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"hotel_builder/internal/adapters/observability"
	"hotel_builder/internal/domain"
)

// Asset classes; each maps to a subdirectory of <site>/assets/.
const (
	assetCSS    = "css"
	assetJS     = "js"
	assetImages = "images"
	assetFonts  = "fonts"
	assetIcons  = "icons"
)

var fontExts = map[string]bool{
	".woff": true, ".woff2": true, ".ttf": true, ".otf": true, ".eot": true,
}

type assetRef struct {
	node  *html.Node
	attr  string
	raw   string
	class string
}

// AssetReport counts the outcome of one localization pass.
type AssetReport struct {
	Downloaded int
	Failed     int
}

// LocalizeAssets mirrors every stylesheet, script, image, font and icon the
// document references into outputDir/assets/<class>/ and rewrites the
// referencing attributes to relative ./assets/ paths. A failed download is
// logged and the original absolute URL is kept in place, so the cloned page
// still renders from the source host.
//
// Downloads run concurrently up to workers; the document itself is only
// touched from this goroutine, after every download has settled.
func LocalizeAssets(ctx context.Context, doc *goquery.Document, pageURL, outputDir string, fetcher domain.Fetcher, workers int, log zerolog.Logger) (AssetReport, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return AssetReport{}, err
	}

	refs := collectAssetRefs(doc)
	if len(refs) == 0 {
		return AssetReport{}, nil
	}

	// Resolve and dedupe up front; one URL downloads once however many
	// nodes reference it.
	type job struct {
		abs   string
		class string
		local string // relative ./assets/... path
	}
	jobs := map[string]job{}
	localByRaw := map[string]string{}
	seenNames := map[string]bool{}
	for _, r := range refs {
		abs, ok := resolveAssetURL(base, r.raw)
		if !ok {
			continue
		}
		if existing, dup := jobs[abs]; dup {
			localByRaw[r.raw] = existing.local
			continue
		}
		name := assetFilename(abs, seenNames)
		local := "./assets/" + r.class + "/" + name
		jobs[abs] = job{abs: abs, class: r.class, local: local}
		localByRaw[r.raw] = local
	}

	for _, class := range []string{assetCSS, assetJS, assetImages, assetFonts, assetIcons} {
		if err := os.MkdirAll(filepath.Join(outputDir, "assets", class), 0o755); err != nil {
			return AssetReport{}, err
		}
	}

	if workers < 1 {
		workers = 1
	}
	var (
		mu     sync.Mutex
		failed = map[string]bool{} // keyed by absolute URL
		report AssetReport
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			start := time.Now()
			body, err := fetcher.Get(gctx, j.abs)
			observability.ObserveFetch("asset", err, time.Since(start))
			if err == nil {
				dst := filepath.Join(outputDir, "assets", j.class, path.Base(j.local))
				err = os.WriteFile(dst, body, 0o644)
			}
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn().Str("url", j.abs).Err(err).Msg("asset download failed, keeping original url")
				failed[j.abs] = true
				report.Failed++
				return nil
			}
			report.Downloaded++
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	// Rewrite pass, single writer. Failed downloads point at the absolute
	// source URL so the page keeps rendering from the original host.
	for _, r := range refs {
		abs, ok := resolveAssetURL(base, r.raw)
		if !ok {
			continue
		}
		if failed[abs] {
			setAttr(r.node, r.attr, abs)
			continue
		}
		if local, ok := localByRaw[r.raw]; ok {
			setAttr(r.node, r.attr, local)
		}
	}
	return report, nil
}

func collectAssetRefs(doc *goquery.Document) []assetRef {
	var refs []assetRef
	add := func(s *goquery.Selection, attr, class string) {
		n := s.Get(0)
		raw := strings.TrimSpace(attrVal(n, attr))
		if raw == "" {
			return
		}
		if fontExts[strings.ToLower(path.Ext(stripQuery(raw)))] {
			class = assetFonts
		}
		refs = append(refs, assetRef{node: n, attr: attr, raw: raw, class: class})
	}
	doc.Find(`link[rel="stylesheet"][href]`).Each(func(_ int, s *goquery.Selection) { add(s, "href", assetCSS) })
	doc.Find(`link[rel="preload"][as="font"][href]`).Each(func(_ int, s *goquery.Selection) { add(s, "href", assetFonts) })
	doc.Find(`link[rel*="icon"][href]`).Each(func(_ int, s *goquery.Selection) { add(s, "href", assetIcons) })
	doc.Find(`script[src]`).Each(func(_ int, s *goquery.Selection) { add(s, "src", assetJS) })
	doc.Find(`img[src]`).Each(func(_ int, s *goquery.Selection) { add(s, "src", assetImages) })
	doc.Find(`source[src]`).Each(func(_ int, s *goquery.Selection) { add(s, "src", assetImages) })
	return refs
}

// resolveAssetURL turns a page-relative reference into an absolute http(s)
// URL. Data URIs, fragments and javascript: pseudo-links are skipped.
func resolveAssetURL(base *url.URL, raw string) (string, bool) {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(raw, "#") {
		return "", false
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	abs := base.ResolveReference(ref)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return "", false
	}
	abs.Fragment = ""
	return abs.String(), true
}

// assetFilename derives a safe local filename from the URL path, prefixing a
// short content-free hash when two distinct URLs share a basename.
func assetFilename(absURL string, seen map[string]bool) string {
	u, _ := url.Parse(absURL)
	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		name = "asset"
	}
	name = sanitizeFilename(name)
	if seen[name] {
		sum := sha1.Sum([]byte(absURL))
		name = hex.EncodeToString(sum[:4]) + "-" + name
	}
	seen[name] = true
	return name
}

func sanitizeFilename(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('-')
		}
	}
	return sb.String()
}

func stripQuery(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		return raw[:i]
	}
	return raw
}
