// Package cache wraps the driver's transpile with a persistent,
// SHA-256-keyed SQLite lookup so unchanged source files skip
// retranspilation. It operates file-by-file only; it never performs
// cross-file analysis.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/GlassBricks/TypeScriptToLua/pkg/driver"
	"github.com/GlassBricks/TypeScriptToLua/pkg/errors"
	"github.com/GlassBricks/TypeScriptToLua/pkg/log"
	"github.com/GlassBricks/TypeScriptToLua/pkg/transpile"
)

// Cache stores emitted TL text keyed by the SHA-256 digest of the SL
// source it came from.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite-backed cache at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCacheUnavailable, "opening %s: %v", path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, errors.Wrapf(errors.ErrCacheUnavailable, "enabling WAL on %s: %v", path, err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS transpiled (
			digest    TEXT PRIMARY KEY,
			output    TEXT NOT NULL,
			emitted_at INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, errors.Wrapf(errors.ErrCacheUnavailable, "creating schema in %s: %v", path, err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

func digest(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Transpile returns the cached TL text for source if present;
// otherwise it calls driver.Transpile, stores the result keyed by the
// source's digest, and returns it. The emittedAt clock value is
// supplied by the caller (plain code, not this package, decides what
// "now" means) so this package stays free of wall-clock reads.
func (c *Cache) Transpile(source string, emittedAt int64, opts ...transpile.Option) (driver.Result, bool, error) {
	key := digest(source)

	var output string
	err := c.db.QueryRow("SELECT output FROM transpiled WHERE digest = ?", key).Scan(&output)
	switch {
	case err == nil:
		log.Logger.Debug("cache hit", zap.String("digest", key))
		return driver.Result{Output: output, Bytes: len(output)}, true, nil
	case err != sql.ErrNoRows:
		return driver.Result{}, false, errors.Wrapf(errors.ErrCacheUnavailable, "querying digest %s: %v", key, err)
	}

	result, err := driver.Transpile(source, opts...)
	if err != nil {
		return driver.Result{}, false, err
	}

	if _, err := c.db.Exec(
		"INSERT OR REPLACE INTO transpiled (digest, output, emitted_at) VALUES (?, ?, ?)",
		key, result.Output, emittedAt,
	); err != nil {
		log.Logger.Warn("failed to populate cache", zap.String("digest", key), zap.Error(err))
	}

	return result, false, nil
}
