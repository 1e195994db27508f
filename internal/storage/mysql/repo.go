package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"hotel_builder/internal/domain"
)

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func mustJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// UpsertHotel inserts or refreshes the row keyed by the unique hotel name
// and returns the row id either way.
func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) (int64, error) {
	res, err := r.db.ExecContext(ctx, upsertHotelSQL,
		h.Name, h.Phone, h.Email, h.Address, h.Website, h.LogoURL, h.Description,
		h.CheckInTime, h.CheckOutTime, h.StarRating, h.Currency, h.Language,
		mustJSON(h.GalleryImages), mustJSON(h.SliderImages), mustJSON(h.Amenities),
		mustJSON(h.Rooms), mustJSON(h.Facilities), mustJSON(h.Social), mustJSON(h.Meta),
		valF64(h.Lat), valF64(h.Lon),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) GetHotelByID(ctx context.Context, id int64) (domain.Hotel, error) {
	return scanHotel(r.db.QueryRowContext(ctx, getHotelByIDSQL, id))
}

// GetHotelByName does a case-insensitive partial match, preferring an exact
// name hit.
func (r *Repo) GetHotelByName(ctx context.Context, name string) (domain.Hotel, error) {
	return scanHotel(r.db.QueryRowContext(ctx, getHotelByNameSQL, "%"+name+"%", name))
}

func (r *Repo) ListHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx, listHotelsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// RecordBuild appends one row to the build audit trail.
func (r *Repo) RecordBuild(ctx context.Context, hotelID int64, art domain.SiteArtifact) error {
	_, err := r.db.ExecContext(ctx, insertSiteBuildSQL,
		hotelID, art.Slug, art.Strategy, art.SiteURL, art.Success, art.Message)
	return err
}

type rowScanner interface{ Scan(dest ...any) error }

func scanHotel(row rowScanner) (domain.Hotel, error) {
	var (
		h          domain.Hotel
		desc       sql.NullString
		lat, lon   sql.NullFloat64
		gallery    []byte
		sliders    []byte
		amenities  []byte
		rooms      []byte
		facilities []byte
		social     []byte
		meta       []byte
	)
	err := row.Scan(
		&h.ID, &h.Name, &h.Phone, &h.Email, &h.Address, &h.Website, &h.LogoURL, &desc,
		&h.CheckInTime, &h.CheckOutTime, &h.StarRating, &h.Currency, &h.Language,
		&gallery, &sliders, &amenities, &rooms, &facilities, &social, &meta,
		&lat, &lon,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}
	if desc.Valid {
		h.Description = desc.String
	}
	if lat.Valid {
		v := lat.Float64
		h.Lat = &v
	}
	if lon.Valid {
		v := lon.Float64
		h.Lon = &v
	}
	_ = json.Unmarshal(gallery, &h.GalleryImages)
	_ = json.Unmarshal(sliders, &h.SliderImages)
	_ = json.Unmarshal(amenities, &h.Amenities)
	_ = json.Unmarshal(rooms, &h.Rooms)
	_ = json.Unmarshal(facilities, &h.Facilities)
	_ = json.Unmarshal(social, &h.Social)
	_ = json.Unmarshal(meta, &h.Meta)
	return h, nil
}
