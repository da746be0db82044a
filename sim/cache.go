package sim

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/eteq/halotools/catalog"
)

// ErrCacheMiss is returned by CatalogCache.Get when no catalog is stored
// under the requested simname and redshift.
var ErrCacheMiss = errors.New("no cached catalog")

// CatalogCache stores processed halo catalogs in a local sqlite database,
// keyed by simulation name and redshift. Regenerating a FakeSim catalog is
// cheap; the cache mirrors the workflow used with real snapshots, where
// the processed table is worth keeping.
type CatalogCache struct {
	db *sql.DB
}

// OpenCatalogCache opens (creating if needed) the cache database at path.
func OpenCatalogCache(path string) (*CatalogCache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog cache: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS catalogs (
	id         TEXT PRIMARY KEY,
	simname    TEXT NOT NULL,
	redshift   REAL NOT NULL,
	created_at TIMESTAMP NOT NULL,
	payload    BLOB NOT NULL,
	UNIQUE (simname, redshift)
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize catalog cache: %w", err)
	}
	return &CatalogCache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *CatalogCache) Close() error { return c.db.Close() }

// Put stores a halo catalog, replacing any existing entry for the same
// simname and redshift.
func (c *CatalogCache) Put(simname string, redshift float64, halos *catalog.Table) error {
	payload, err := encodeTable(halos)
	if err != nil {
		return fmt.Errorf("failed to encode catalog %q: %w", simname, err)
	}

	_, err = c.db.Exec(`
INSERT INTO catalogs (id, simname, redshift, created_at, payload)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (simname, redshift) DO UPDATE SET
	id = excluded.id,
	created_at = excluded.created_at,
	payload = excluded.payload`,
		uuid.NewString(), simname, redshift, time.Now().UTC(), payload)
	if err != nil {
		return fmt.Errorf("failed to store catalog %q: %w", simname, err)
	}
	return nil
}

// Get loads the halo catalog stored under simname and redshift.
func (c *CatalogCache) Get(simname string, redshift float64) (*catalog.Table, error) {
	var payload []byte
	err := c.db.QueryRow(
		`SELECT payload FROM catalogs WHERE simname = ? AND redshift = ?`,
		simname, redshift).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: simname %q redshift %g", ErrCacheMiss, simname, redshift)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %q: %w", simname, err)
	}
	return decodeTable(payload)
}

// Entries lists the (simname, redshift) pairs currently cached.
func (c *CatalogCache) Entries() ([]CacheEntry, error) {
	rows, err := c.db.Query(
		`SELECT simname, redshift, created_at FROM catalogs ORDER BY simname, redshift`)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog cache: %w", err)
	}
	defer rows.Close()

	var entries []CacheEntry
	for rows.Next() {
		var e CacheEntry
		if err := rows.Scan(&e.Simname, &e.Redshift, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CacheEntry describes one cached catalog.
type CacheEntry struct {
	Simname   string
	Redshift  float64
	CreatedAt time.Time
}

type columnPayload struct {
	Name     string    `json:"name"`
	Dtype    string    `json:"dtype"`
	Float64s []float64 `json:"float64s,omitempty"`
	Int64s   []int64   `json:"int64s,omitempty"`
	Bools    []bool    `json:"bools,omitempty"`
	Strings  []string  `json:"strings,omitempty"`
}

type tablePayload struct {
	Length  int             `json:"length"`
	Columns []columnPayload `json:"columns"`
}

func encodeTable(tbl *catalog.Table) ([]byte, error) {
	payload := tablePayload{Length: tbl.Len()}
	for _, name := range tbl.ColumnNames() {
		col := columnPayload{Name: name}
		if vals, err := tbl.Float64s(name); err == nil {
			col.Dtype = "float64"
			col.Float64s = vals
		} else if vals, err := tbl.Int64s(name); err == nil {
			col.Dtype = "int64"
			col.Int64s = vals
		} else if vals, err := tbl.Bools(name); err == nil {
			col.Dtype = "bool"
			col.Bools = vals
		} else if vals, err := tbl.Strings(name); err == nil {
			col.Dtype = "string"
			col.Strings = vals
		} else {
			return nil, fmt.Errorf("column %q has an unencodable dtype", name)
		}
		payload.Columns = append(payload.Columns, col)
	}
	return json.Marshal(payload)
}

func decodeTable(data []byte) (*catalog.Table, error) {
	var payload tablePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode cached catalog: %w", err)
	}

	tbl := catalog.New(payload.Length)
	for _, col := range payload.Columns {
		var err error
		switch col.Dtype {
		case "float64":
			err = tbl.AddFloat64(col.Name, col.Float64s)
		case "int64":
			err = tbl.AddInt64(col.Name, col.Int64s)
		case "bool":
			err = tbl.AddBool(col.Name, col.Bools)
		case "string":
			err = tbl.AddString(col.Name, col.Strings)
		default:
			err = fmt.Errorf("unknown dtype %q for column %q", col.Dtype, col.Name)
		}
		if err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
