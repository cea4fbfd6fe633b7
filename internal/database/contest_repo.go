package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/contract"
	"github.com/sstlounge/contest-bot/internal/domain/entity"
)

type contestRepo struct {
	db dbConn
}

func newContestRepo(db dbConn) contract.ContestRepo {
	return &contestRepo{db: db}
}

// Upsert is keyed by (platform, source_id): a refresh carrying an already
// cached contest updates the row in place instead of duplicating it.
func (r *contestRepo) Upsert(contest *entity.Contest) error {
	query := `
		INSERT INTO contests (platform, source_id, name, start_time, end_time, duration_seconds, url, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(platform, source_id) DO UPDATE SET
			name = excluded.name,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			duration_seconds = excluded.duration_seconds,
			url = excluded.url,
			fetched_at = excluded.fetched_at,
			updated_at = CURRENT_TIMESTAMP
	`

	// Times are stored in UTC so that string comparisons in SQLite order
	// correctly regardless of the driver's timezone suffix.
	_, err := r.db.Exec(query,
		contest.Platform,
		contest.SourceID,
		contest.Name,
		contest.StartTime.UTC(),
		contest.EndTime.UTC(),
		int64(contest.Duration().Seconds()),
		contest.URL,
		contest.FetchedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert contest: %w", err)
	}

	return nil
}

func (r *contestRepo) QueryWindow(start, end time.Time, platform domain.Platform, limit int) ([]*entity.Contest, error) {
	query := `
		SELECT id, platform, source_id, name, start_time, end_time, url,
			fetched_at, created_at, updated_at
		FROM contests
		WHERE start_time >= ? AND start_time < ?
	`
	args := []interface{}{start.UTC(), end.UTC()}

	if platform != "" {
		query += " AND platform = ?"
		args = append(args, platform)
	}

	// Ties on start_time break by platform then source id so repeated
	// calls on unchanged data return the same order.
	query += " ORDER BY start_time ASC, platform ASC, source_id ASC"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contests: %w", err)
	}
	defer rows.Close()

	var contests []*entity.Contest
	for rows.Next() {
		contest := &entity.Contest{}
		err := rows.Scan(
			&contest.ID,
			&contest.Platform,
			&contest.SourceID,
			&contest.Name,
			&contest.StartTime,
			&contest.EndTime,
			&contest.URL,
			&contest.FetchedAt,
			&contest.CreatedAt,
			&contest.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contest: %w", err)
		}
		contests = append(contests, contest)
	}

	return contests, nil
}

func (r *contestRepo) DeleteEndedBefore(t time.Time) (int64, error) {
	query := `DELETE FROM contests WHERE end_time < ?`

	result, err := r.db.Exec(query, t.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune contests: %w", err)
	}

	pruned, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get pruned row count: %w", err)
	}

	return pruned, nil
}

func (r *contestRepo) LatestFetchTime() (time.Time, error) {
	// Selecting the column keeps its declared TIMESTAMP type, which an
	// aggregate like MAX() would lose; the driver then scans a string.
	query := `SELECT fetched_at FROM contests ORDER BY fetched_at DESC LIMIT 1`

	var fetchedAt time.Time
	err := r.db.QueryRow(query).Scan(&fetchedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get latest fetch time: %w", err)
	}

	return fetchedAt, nil
}
