// Package storage provides SQLite-based persistence for scores, level
// progress and achievements. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/maze-chase/internal/progress"
)

// Store manages the SQLite database connection. It implements progress.Sink.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

var _ progress.Sink = (*Store)(nil)

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	Mode      string
	Score     int
	Level     int // Last level reached
	CreatedAt time.Time
}

// LevelProgress is the best result recorded for one level.
type LevelProgress struct {
	Mode      string
	Level     int
	BestScore int
	BestStars int
	BestTime  time.Duration
	Clears    int
	MaxCombo  int
	UpdatedAt time.Time
}

// UnlockEntry is a stored achievement.
type UnlockEntry struct {
	ID         progress.AchievementID
	Level      int
	UnlockedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode, score DESC);

		CREATE TABLE IF NOT EXISTS level_progress (
			mode TEXT NOT NULL,
			level INTEGER NOT NULL,
			best_score INTEGER NOT NULL DEFAULT 0,
			best_stars INTEGER NOT NULL DEFAULT 0,
			best_time_ms INTEGER NOT NULL DEFAULT 0,
			clears INTEGER NOT NULL DEFAULT 0,
			max_combo INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (mode, level)
		);

		CREATE TABLE IF NOT EXISTS unlocks (
			id TEXT PRIMARY KEY,
			level INTEGER NOT NULL DEFAULT 0,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveScore(mode string, score, level int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec(
		"INSERT INTO scores (mode, score, level) VALUES (?, ?, ?)",
		mode, score, level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given mode.
// Results are ordered by score descending.
func (s *Store) TopScores(mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, level, created_at
		 FROM scores
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no scores exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE mode = ?",
		mode,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given mode.
func (s *Store) ClearScores(mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM scores WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// RecordLevel stores a level clear, keeping the best score, stars, time
// and combo seen for that level.
func (s *Store) RecordLevel(r progress.LevelResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO level_progress (mode, level, best_score, best_stars, best_time_ms, clears, max_combo)
		 VALUES (?, ?, ?, ?, ?, 1, ?)
		 ON CONFLICT(mode, level) DO UPDATE SET
			best_score = MAX(best_score, excluded.best_score),
			best_stars = MAX(best_stars, excluded.best_stars),
			best_time_ms = CASE
				WHEN best_time_ms = 0 OR excluded.best_time_ms < best_time_ms THEN excluded.best_time_ms
				ELSE best_time_ms
			END,
			clears = clears + 1,
			max_combo = MAX(max_combo, excluded.max_combo),
			updated_at = CURRENT_TIMESTAMP`,
		r.Mode, r.Level, r.Score, r.Stars, r.Elapsed.Milliseconds(), r.MaxCombo,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record level %d: %w", r.Level, err)
	}
	return nil
}

// RecordUnlock stores an achievement. Unlocking an achievement twice keeps
// the first record.
func (s *Store) RecordUnlock(u progress.Unlock) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO unlocks (id, level) VALUES (?, ?)",
		string(u.ID), u.Level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record unlock %s: %w", u.ID, err)
	}
	return nil
}

// Level returns the stored progress for one level. ok is false when the
// level has never been cleared.
func (s *Store) Level(mode string, level int) (lp LevelProgress, ok bool, err error) {
	var updatedAt any
	var bestMs int64
	err = s.db.QueryRow(
		`SELECT mode, level, best_score, best_stars, best_time_ms, clears, max_combo, updated_at
		 FROM level_progress
		 WHERE mode = ? AND level = ?`,
		mode, level,
	).Scan(&lp.Mode, &lp.Level, &lp.BestScore, &lp.BestStars, &bestMs, &lp.Clears, &lp.MaxCombo, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return LevelProgress{}, false, nil
	}
	if err != nil {
		return LevelProgress{}, false, fmt.Errorf("storage: cannot query level progress: %w", err)
	}
	lp.BestTime = time.Duration(bestMs) * time.Millisecond
	lp.UpdatedAt = parseTime(updatedAt)
	return lp, true, nil
}

// Levels returns the progress for every cleared level of a mode, by level.
func (s *Store) Levels(mode string) ([]LevelProgress, error) {
	rows, err := s.db.Query(
		`SELECT mode, level, best_score, best_stars, best_time_ms, clears, max_combo, updated_at
		 FROM level_progress
		 WHERE mode = ?
		 ORDER BY level ASC`,
		mode,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level progress: %w", err)
	}
	defer rows.Close()

	var out []LevelProgress
	for rows.Next() {
		var lp LevelProgress
		var updatedAt any
		var bestMs int64
		if err := rows.Scan(&lp.Mode, &lp.Level, &lp.BestScore, &lp.BestStars, &bestMs, &lp.Clears, &lp.MaxCombo, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		lp.BestTime = time.Duration(bestMs) * time.Millisecond
		lp.UpdatedAt = parseTime(updatedAt)
		out = append(out, lp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Unlocks returns every stored achievement, oldest first.
func (s *Store) Unlocks() ([]UnlockEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, level, unlocked_at FROM unlocks ORDER BY unlocked_at ASC, rowid ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query unlocks: %w", err)
	}
	defer rows.Close()

	var out []UnlockEntry
	for rows.Next() {
		var u UnlockEntry
		var id string
		var at any
		if err := rows.Scan(&id, &u.Level, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		u.ID = progress.AchievementID(id)
		u.UnlockedAt = parseTime(at)
		out = append(out, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// UnlockedIDs returns the IDs of every stored achievement.
func (s *Store) UnlockedIDs() ([]progress.AchievementID, error) {
	entries, err := s.Unlocks()
	if err != nil {
		return nil, err
	}
	ids := make([]progress.AchievementID, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids, nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode       string
	GamesCount int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a mode.
func (s *Store) Stats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(MAX(level), 0), MAX(created_at)
		 FROM scores WHERE mode = ?`,
		mode,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.BestLevel, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime reads a DATETIME column, which the driver returns either as
// time.Time or as text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
