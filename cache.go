package rgb332

import (
	"database/sql"
	"fmt"

	frame "github.com/bodgit/rgb332/image"
	_ "github.com/mattn/go-sqlite3"
)

// Cache stores converted frames keyed by the SHA1 of the source file, the
// output format and the resampling filter. A nil *Cache never hits.
type Cache struct {
	db *sql.DB
}

// NewCache opens or creates the SQLite cache database in file.
func NewCache(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, format INTEGER NOT NULL, filter TEXT NOT NULL, data BLOB NOT NULL, UNIQUE(sha1, format, filter))"); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

// Find returns the cached frame or nil if there isn't one. A stored frame of
// the wrong size for f counts as a miss.
func (c *Cache) Find(sha1 string, f frame.Format, filter Filter) ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var data []byte
	switch err := c.db.QueryRow("SELECT data FROM conversion WHERE sha1 = ? AND format = ? AND filter = ?", sha1, int(f), string(filter)).Scan(&data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		if len(data) != f.Size(frame.Width*frame.Height) {
			return nil, nil
		}
		return data, nil
	default:
		return nil, err
	}
}

// Store saves the frame, replacing any previous entry for the same key.
func (c *Cache) Store(sha1 string, f frame.Format, filter Filter, data []byte) error {
	if c == nil {
		return nil
	}

	if _, err := c.db.Exec("INSERT OR REPLACE INTO conversion (sha1, format, filter, data) VALUES (?, ?, ?, ?)", sha1, int(f), string(filter), data); err != nil {
		return err
	}
	return nil
}
