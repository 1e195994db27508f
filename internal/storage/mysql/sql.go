package mysql

// Hotels upsert by unique name; LAST_INSERT_ID(id) makes the existing row's
// id come back on the duplicate path.
const upsertHotelSQL = `
INSERT INTO hotels
  (name, phone, email, address, website, logo_url, description,
   check_in, check_out, stars, currency, lang,
   gallery, sliders, amenities, rooms, facilities, social, meta, lat, lon)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  id          = LAST_INSERT_ID(id),
  phone       = VALUES(phone),
  email       = VALUES(email),
  address     = VALUES(address),
  website     = VALUES(website),
  logo_url    = VALUES(logo_url),
  description = VALUES(description),
  check_in    = VALUES(check_in),
  check_out   = VALUES(check_out),
  stars       = VALUES(stars),
  currency    = VALUES(currency),
  lang        = VALUES(lang),
  gallery     = VALUES(gallery),
  sliders     = VALUES(sliders),
  amenities   = VALUES(amenities),
  rooms       = VALUES(rooms),
  facilities  = VALUES(facilities),
  social      = VALUES(social),
  meta        = VALUES(meta),
  lat         = VALUES(lat),
  lon         = VALUES(lon),
  updated_at  = CURRENT_TIMESTAMP
`

const hotelColumns = `
  id, name, phone, email, address, website, logo_url, description,
  check_in, check_out, stars, currency, lang,
  gallery, sliders, amenities, rooms, facilities, social, meta, lat, lon
`

const getHotelByIDSQL = `SELECT` + hotelColumns + `FROM hotels WHERE id = ?`

// Case-insensitive partial match; exact matches order first.
const getHotelByNameSQL = `
SELECT` + hotelColumns + `
FROM hotels
WHERE LOWER(name) LIKE LOWER(?)
ORDER BY (LOWER(name) = LOWER(?)) DESC, id
LIMIT 1
`

const listHotelsSQL = `SELECT` + hotelColumns + `FROM hotels ORDER BY id LIMIT ?`

const insertSiteBuildSQL = `
INSERT INTO site_builds (hotel_id, slug, strategy, site_url, success, message)
VALUES (?, ?, ?, ?, ?, ?)
`

// Schema is applied by the integration tests and by deploy tooling.
const Schema = `
CREATE TABLE IF NOT EXISTS hotels (
  id          BIGINT       NOT NULL AUTO_INCREMENT,
  name        VARCHAR(255) NOT NULL,
  phone       VARCHAR(64)  NOT NULL DEFAULT '',
  email       VARCHAR(255) NOT NULL DEFAULT '',
  address     VARCHAR(512) NOT NULL DEFAULT '',
  website     VARCHAR(512) NOT NULL DEFAULT '',
  logo_url    VARCHAR(512) NOT NULL DEFAULT '',
  description TEXT,
  check_in    VARCHAR(8)   NOT NULL DEFAULT '',
  check_out   VARCHAR(8)   NOT NULL DEFAULT '',
  stars       INT          NOT NULL DEFAULT 0,
  currency    VARCHAR(8)   NOT NULL DEFAULT '',
  lang        VARCHAR(8)   NOT NULL DEFAULT '',
  gallery     JSON,
  sliders     JSON,
  amenities   JSON,
  rooms       JSON,
  facilities  JSON,
  social      JSON,
  meta        JSON,
  lat         DOUBLE NULL,
  lon         DOUBLE NULL,
  created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  PRIMARY KEY (id),
  UNIQUE KEY uq_hotels_name (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS site_builds (
  id         BIGINT       NOT NULL AUTO_INCREMENT,
  hotel_id   BIGINT       NOT NULL,
  slug       VARCHAR(255) NOT NULL,
  strategy   VARCHAR(16)  NOT NULL,
  site_url   VARCHAR(512) NOT NULL,
  success    TINYINT(1)   NOT NULL,
  message    VARCHAR(512) NOT NULL DEFAULT '',
  created_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (id),
  KEY idx_site_builds_hotel (hotel_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`
