package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_builder/internal/app"
	"hotel_builder/internal/domain"
)

type Handlers struct {
	B        *app.BuildService
	SitesDir string
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Post("/v1/sites/clone", h.cloneSite)
	s.mux.Post("/v1/sites/build", h.buildSite)
	s.mux.Get("/v1/templates", h.listTemplates)

	s.mux.Get("/v1/hotels/{id}", h.getHotel)
	s.mux.Post("/v1/hotels", h.saveHotel)
	s.mux.Post("/v1/hotels/search", h.searchHotel)

	// Generated sites are plain static files.
	s.mux.Handle("/sites/*", http.StripPrefix("/sites/", http.FileServer(http.Dir(h.SitesDir))))
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

type cloneRequest struct {
	SourceURL string              `json:"sourceUrl"`
	Persist   bool                `json:"persist"`
	HotelID   int64               `json:"hotelId,omitempty"`
	Hotel     app.SimpleHotelData `json:"hotel"`
}

// cloneSite accepts the hotel either inline or as an id of a stored record.
func (h *Handlers) cloneSite(w http.ResponseWriter, r *http.Request) {
	var req cloneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}

	var (
		art domain.SiteArtifact
		err error
	)
	switch {
	case req.HotelID != 0:
		art, err = h.B.CloneSiteByID(r.Context(), req.SourceURL, req.HotelID)
	default:
		hotel := req.Hotel.ToHotel()
		if !hotel.Usable() {
			writeProblem(w, http.StatusBadRequest, "Invalid Hotel",
				"hotelName, phone, email and address are required")
			return
		}
		if req.Persist {
			art, err = h.B.CloneSiteWithRecord(r.Context(), req.SourceURL, hotel)
		} else {
			art, err = h.B.CloneSite(r.Context(), req.SourceURL, hotel)
		}
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
			return
		}
		if errors.Is(err, domain.ErrBadSource) {
			writeProblem(w, http.StatusUnprocessableEntity, "Bad Source", err.Error())
			return
		}
		writeProblem(w, http.StatusBadGateway, "Clone Failed", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, art)
}

type buildRequest struct {
	Template string              `json:"template"`
	HotelID  int64               `json:"hotelId,omitempty"`
	Hotel    app.SimpleHotelData `json:"hotel"`
}

// buildSite accepts the hotel either inline or as an id of a stored record.
func (h *Handlers) buildSite(w http.ResponseWriter, r *http.Request) {
	var req buildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}

	var (
		art domain.SiteArtifact
		err error
	)
	switch {
	case req.HotelID != 0:
		art, err = h.B.BuildFromTemplateByID(r.Context(), req.Template, req.HotelID)
	default:
		hotel := req.Hotel.ToHotel()
		if hotel.Name == "" {
			writeProblem(w, http.StatusBadRequest, "Invalid Hotel", "hotelName is required")
			return
		}
		art, err = h.B.BuildFromTemplate(r.Context(), req.Template, hotel)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Build Failed", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, art)
}

func (h *Handlers) listTemplates(w http.ResponseWriter, r *http.Request) {
	names, err := h.B.ListTemplates()
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "List Failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": names})
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	resp, err := h.B.GetHotel(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}

	etag, body := calcETagAndBody(resp)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getHotel body")
	}
}

func (h *Handlers) saveHotel(w http.ResponseWriter, r *http.Request) {
	var req app.SimpleHotelData
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}
	hotel := req.ToHotel()
	if hotel.Name == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Hotel", "hotelName is required")
		return
	}
	id, err := h.B.SaveHotel(r.Context(), hotel)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Save Failed", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

type searchRequest struct {
	Name string `json:"name"`
}

func (h *Handlers) searchHotel(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "name is required")
		return
	}
	resp, err := h.B.SearchHotel(r.Context(), req.Name)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
