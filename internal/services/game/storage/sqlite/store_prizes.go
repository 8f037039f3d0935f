package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
	"github.com/louisbranch/andaria/internal/services/game/core/filter"
	"github.com/louisbranch/andaria/internal/services/game/domain/prize"
	"github.com/louisbranch/andaria/internal/services/game/storage"
)

// prizeFormatVersion tags the payload encoding written by this build.
const prizeFormatVersion = 1

const prizeColumns = "id, source, format_version, payload, created_at, updated_at"

var _ storage.PrizeStore = (*Store)(nil)

// PutPrize inserts or replaces a prize. Replacing keeps the original CreatedAt.
func (s *Store) PutPrize(ctx context.Context, record storage.PrizeRecord) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	id := strings.TrimSpace(record.ID)
	if id == "" {
		return fmt.Errorf("prize id is required")
	}
	if err := record.Prize.Validate(); err != nil {
		return fmt.Errorf("prize %s: %w", id, err)
	}
	payload, err := record.Prize.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode prize %s: %w", id, err)
	}

	now := s.now().UTC()
	createdAt, updatedAt := record.CreatedAt, record.UpdatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = now
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO prizes (id, source, format_version, payload, gold, experience, effect_count, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    source = excluded.source,
    format_version = excluded.format_version,
    payload = excluded.payload,
    gold = excluded.gold,
    experience = excluded.experience,
    effect_count = excluded.effect_count,
    updated_at = excluded.updated_at`,
		id,
		strings.TrimSpace(record.Source),
		prizeFormatVersion,
		payload,
		int64(record.Prize.Gold()),
		int64(record.Prize.Experience()),
		int64(len(record.Prize.Effects())),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("put prize %s: %w", id, err)
	}
	return nil
}

// GetPrize loads a prize by id.
func (s *Store) GetPrize(ctx context.Context, id string) (storage.PrizeRecord, error) {
	if err := s.ready(ctx); err != nil {
		return storage.PrizeRecord{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.PrizeRecord{}, fmt.Errorf("prize id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, "SELECT "+prizeColumns+" FROM prizes WHERE id = ?", id)
	record, err := scanPrize(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.PrizeRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.PrizeRecord{}, fmt.Errorf("get prize %s: %w", id, err)
	}
	return record, nil
}

// ListPrizes returns prizes with id greater than pageToken, ordered by id and
// narrowed by an AIP-160 filter over id, source, gold, experience and
// effect_count.
func (s *Store) ListPrizes(ctx context.Context, pageSize int, pageToken string, filterExpr string) (storage.PrizeRecordPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.PrizeRecordPage{}, err
	}
	if pageSize <= 0 {
		return storage.PrizeRecordPage{}, fmt.Errorf("page size must be greater than zero")
	}
	cond, err := filter.ParsePrizeFilter(filterExpr)
	if err != nil {
		return storage.PrizeRecordPage{}, err
	}

	plan := buildListPrizesPlan(pageSize, pageToken, cond)
	rows, err := s.sqlDB.QueryContext(ctx, plan.query, plan.params...)
	if err != nil {
		return storage.PrizeRecordPage{}, fmt.Errorf("list prizes: %w", err)
	}
	defer rows.Close()

	page := storage.PrizeRecordPage{
		Prizes: make([]storage.PrizeRecord, 0, pageSize),
	}
	for rows.Next() {
		if len(page.Prizes) == pageSize {
			page.NextPageToken = page.Prizes[pageSize-1].ID
			break
		}
		record, err := scanPrize(rows)
		if err != nil {
			return storage.PrizeRecordPage{}, fmt.Errorf("list prizes: %w", err)
		}
		page.Prizes = append(page.Prizes, record)
	}
	if err := rows.Err(); err != nil {
		return storage.PrizeRecordPage{}, fmt.Errorf("list prizes: %w", err)
	}
	return page, nil
}

// DeletePrize removes a prize by id.
func (s *Store) DeletePrize(ctx context.Context, id string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("prize id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, "DELETE FROM prizes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete prize %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete prize %s: %w", id, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type listPrizesPlan struct {
	query  string
	params []any
}

func buildListPrizesPlan(pageSize int, pageToken string, cond filter.SQLCondition) listPrizesPlan {
	var where []string
	var params []any
	if pageToken != "" {
		where = append(where, "id > ?")
		params = append(params, pageToken)
	}
	if !cond.Empty() {
		where = append(where, cond.Clause)
		params = append(params, cond.Params...)
	}

	query := "SELECT " + prizeColumns + " FROM prizes"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY id ASC LIMIT %d", pageSize+1)
	return listPrizesPlan{query: query, params: params}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrize(row rowScanner) (storage.PrizeRecord, error) {
	var (
		record    storage.PrizeRecord
		version   int64
		payload   []byte
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&record.ID, &record.Source, &version, &payload, &createdAt, &updatedAt); err != nil {
		return storage.PrizeRecord{}, err
	}
	if version != prizeFormatVersion {
		return storage.PrizeRecord{}, apperrors.WithMetadata(
			apperrors.CodeWireUnsupportedVersion,
			fmt.Sprintf("prize %s: unsupported format version %d", record.ID, version),
			map[string]string{"PrizeID": record.ID, "Version": fmt.Sprint(version)},
		)
	}
	var p prize.Prize
	if err := p.UnmarshalBinary(payload); err != nil {
		return storage.PrizeRecord{}, fmt.Errorf("decode prize %s: %w", record.ID, err)
	}
	record.Prize = p
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
