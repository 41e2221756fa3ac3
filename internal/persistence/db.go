// Package persistence provides the SQLite state store: per-player JSON
// snapshots and the shared debris ledger.
package persistence

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pierrec/lz4/v4"
	"lukechampine.com/blake3"
	_ "modernc.org/sqlite"

	"github.com/avray/starforge/internal/galaxy"
)

// ErrNotFound is returned when a requested player snapshot does not exist.
var ErrNotFound = errors.New("persistence: not found")

// ErrCorrupt is returned when a stored snapshot fails its checksum.
var ErrCorrupt = errors.New("persistence: snapshot checksum mismatch")

// DB wraps a SQLite connection. Snapshots are written last-write-wins; the
// debris table is the serialization point for cross-player writes to the
// same coordinate.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		snapshot BLOB NOT NULL,
		checksum BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS debris (
		coord TEXT PRIMARY KEY,
		metal INTEGER NOT NULL,
		crystal INTEGER NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SavePlayerSnapshot stores a player's JSON aggregate, LZ4-compressed and
// checksummed over the raw bytes.
func (db *DB) SavePlayerSnapshot(playerID string, snapshot []byte) error {
	sum := blake3.Sum256(snapshot)

	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(snapshot); err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}

	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO players (id, snapshot, checksum, updated_at) VALUES (?, ?, ?, ?)",
		playerID, buf.Bytes(), sum[:], time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save player %s: %w", playerID, err)
	}
	return nil
}

// LoadPlayerSnapshot returns the raw JSON aggregate for a player, verifying
// the stored checksum after decompression.
func (db *DB) LoadPlayerSnapshot(playerID string) ([]byte, error) {
	var row struct {
		Snapshot []byte `db:"snapshot"`
		Checksum []byte `db:"checksum"`
	}
	err := db.conn.Get(&row, "SELECT snapshot, checksum FROM players WHERE id = ?", playerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load player %s: %w", playerID, err)
	}

	raw, err := io.ReadAll(lz4.NewReader(bytes.NewReader(row.Snapshot)))
	if err != nil {
		return nil, fmt.Errorf("decompress player %s: %w", playerID, err)
	}
	sum := blake3.Sum256(raw)
	if !bytes.Equal(sum[:], row.Checksum) {
		return nil, ErrCorrupt
	}
	return raw, nil
}

// ListPlayerIDs returns every stored player id.
func (db *DB) ListPlayerIDs() ([]string, error) {
	var ids []string
	err := db.conn.Select(&ids, "SELECT id FROM players ORDER BY id")
	return ids, err
}

// GetDebris reports the debris field at a coordinate, zero-valued when
// empty.
func (db *DB) GetDebris(coord galaxy.Coord) (galaxy.Debris, error) {
	var d galaxy.Debris
	err := db.conn.Get(&d, "SELECT metal, crystal FROM debris WHERE coord = ?", coord.String())
	if errors.Is(err, sql.ErrNoRows) {
		return galaxy.Debris{}, nil
	}
	if err != nil {
		return galaxy.Debris{}, fmt.Errorf("get debris %s: %w", coord, err)
	}
	return d, nil
}

// AddDebris merges additional debris into the field at a coordinate.
func (db *DB) AddDebris(coord galaxy.Coord, d galaxy.Debris) error {
	_, err := db.conn.Exec(`INSERT INTO debris (coord, metal, crystal) VALUES (?, ?, ?)
		ON CONFLICT(coord) DO UPDATE SET metal = metal + excluded.metal, crystal = crystal + excluded.crystal`,
		coord.String(), d.Metal, d.Crystal,
	)
	if err != nil {
		return fmt.Errorf("add debris %s: %w", coord, err)
	}
	return nil
}

// HarvestDebris removes and returns up to capacity units from the field,
// metal first. The read and the decrement run in one transaction so
// concurrent recyclers never double-harvest.
func (db *DB) HarvestDebris(coord galaxy.Coord, capacity int) (galaxy.Debris, error) {
	tx, err := db.conn.Beginx()
	if err != nil {
		return galaxy.Debris{}, err
	}
	defer tx.Rollback()

	var field galaxy.Debris
	err = tx.Get(&field, "SELECT metal, crystal FROM debris WHERE coord = ?", coord.String())
	if errors.Is(err, sql.ErrNoRows) {
		return galaxy.Debris{}, nil
	}
	if err != nil {
		return galaxy.Debris{}, fmt.Errorf("harvest debris %s: %w", coord, err)
	}

	var out galaxy.Debris
	out.Metal = min(field.Metal, capacity)
	out.Crystal = min(field.Crystal, capacity-out.Metal)

	if _, err := tx.Exec("UPDATE debris SET metal = metal - ?, crystal = crystal - ? WHERE coord = ?",
		out.Metal, out.Crystal, coord.String()); err != nil {
		return galaxy.Debris{}, fmt.Errorf("harvest debris %s: %w", coord, err)
	}
	if err := tx.Commit(); err != nil {
		return galaxy.Debris{}, err
	}
	return out, nil
}
