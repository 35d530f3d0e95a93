// Package catalog persists generated-asset records and editor settings in a
// SQLite file, matching the schema the desktop editor ships.
package catalog

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound reports a missing asset or setting.
var ErrNotFound = errors.New("catalog: not found")

const schema = `
CREATE TABLE IF NOT EXISTS assets (
    id TEXT PRIMARY KEY,
    asset_type TEXT NOT NULL,
    name TEXT NOT NULL,
    config TEXT,
    metadata TEXT,
    file_path TEXT,
    file_size INTEGER,
    quality_score INTEGER,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

// Asset is one catalog row. Config and Metadata hold the JSON the generator
// produced for the asset.
type Asset struct {
	ID           string          `json:"id"`
	AssetType    string          `json:"asset_type"`
	Name         string          `json:"name"`
	Config       json.RawMessage `json:"config,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	FilePath     string          `json:"file_path,omitempty"`
	FileSize     int64           `json:"file_size,omitempty"`
	QualityScore int             `json:"quality_score,omitempty"`
	CreatedAt    string          `json:"created_at,omitempty"`
	UpdatedAt    string          `json:"updated_at,omitempty"`
}

// Filters narrows ListAssets.
type Filters struct {
	Type   string
	Search string
	Limit  int
}

// Store is a SQLite-backed asset catalog.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the catalog at path and ensures the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveAsset upserts one asset, assigning an ID and timestamps when absent,
// and returns the stored ID.
func (s *Store) SaveAsset(ctx context.Context, a Asset) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(a.AssetType) == "" {
		return "", fmt.Errorf("asset type is required")
	}
	if strings.TrimSpace(a.Name) == "" {
		return "", fmt.Errorf("asset name is required")
	}
	if a.ID == "" {
		a.ID = newID()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if a.CreatedAt == "" {
		a.CreatedAt = now
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT OR REPLACE INTO assets
 (id, asset_type, name, config, metadata, file_path, file_size, quality_score, created_at, updated_at)
 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.AssetType, a.Name, nullStr(string(a.Config)), nullStr(string(a.Metadata)),
		nullStr(a.FilePath), a.FileSize, a.QualityScore, a.CreatedAt, now)
	if err != nil {
		return "", fmt.Errorf("save asset: %w", err)
	}
	return a.ID, nil
}

// ListAssets returns assets matching the filters, newest first.
func (s *Store) ListAssets(ctx context.Context, f Filters) ([]Asset, error) {
	query := `SELECT id, asset_type, name, config, metadata, file_path, file_size, quality_score, created_at, updated_at FROM assets`
	var conds []string
	var args []interface{}
	if f.Type != "" {
		conds = append(conds, "asset_type = ?")
		args = append(args, f.Type)
	}
	if f.Search != "" {
		conds = append(conds, "name LIKE ?")
		args = append(args, "%"+f.Search+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY updated_at DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var out []Asset
	for rows.Next() {
		var a Asset
		var config, metadata, filePath sql.NullString
		var fileSize sql.NullInt64
		var quality sql.NullInt64
		if err := rows.Scan(&a.ID, &a.AssetType, &a.Name, &config, &metadata,
			&filePath, &fileSize, &quality, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		if config.Valid {
			a.Config = json.RawMessage(config.String)
		}
		if metadata.Valid {
			a.Metadata = json.RawMessage(metadata.String)
		}
		a.FilePath = filePath.String
		a.FileSize = fileSize.Int64
		a.QualityScore = int(quality.Int64)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assets: %w", err)
	}
	return out, nil
}

// DeleteAsset removes one asset by ID.
func (s *Store) DeleteAsset(ctx context.Context, id string) error {
	res, err := s.sqlDB.ExecContext(ctx, "DELETE FROM assets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("asset %q: %w", id, ErrNotFound)
	}
	return nil
}

// GetSetting reads one settings value.
func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.sqlDB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("setting %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting upserts one settings value.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.sqlDB.ExecContext(ctx,
		"INSERT OR REPLACE INTO settings (key, value, updated_at) VALUES (?, ?, ?)",
		key, value, now)
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

func newID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand only fails when the platform entropy source is broken;
		// fall back to a time-derived id rather than aborting a save.
		return fmt.Sprintf("t-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

func nullStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
