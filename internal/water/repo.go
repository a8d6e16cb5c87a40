package water

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWaterNotFound = errors.New("water record not found")

const (
	MaxListSize = 100

	waterColumns = `id, user_id, amount, date, COALESCE(time, ''), COALESCE(notes, ''), created_at, updated_at`
)

// Changes is a validated update, ready to be stored.
type Changes struct {
	Amount *float64
	Date   *time.Time
	Time   *string
	Notes  *string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, record *Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !ValidAmount(record.Amount) {
		return nil, ErrInvalidAmount
	}
	userID, err := pkg.CanonicalID(record.UserID)
	if err != nil {
		return nil, err
	}
	record.UserID = userID
	record.ID = pkg.NewID()
	span.SetAttributes(attribute.String("water.id", record.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO water_record (id, user_id, amount, date, time, notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		record.ID, record.UserID, record.Amount, record.Date, record.Time, record.Notes,
		record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert water record: %w", err)
	}

	return record, nil
}

func (r *Repo) Get(ctx context.Context, userID, id string) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, id, err = ownedIDs(userID, id)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("water.id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+waterColumns+` FROM water_record WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	return scanRecord(row)
}

func (r *Repo) List(ctx context.Context, userID string, dateRange pkg.DateRange) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err = pkg.CanonicalID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+waterColumns+`
			FROM water_record
			WHERE user_id = $1
				AND ($2::timestamptz IS NULL OR date >= $2)
				AND ($3::timestamptz IS NULL OR date <= $3)
			ORDER BY date DESC, created_at DESC
			LIMIT $4;`,
		userID, dateRange.From, dateRange.To, MaxListSize,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("water.count", len(records)))
	return records, nil
}

// Summarize sums every record in the range, without the list cap.
func (r *Repo) Summarize(ctx context.Context, userID string, dateRange pkg.DateRange) (_ Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.summarize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err = pkg.CanonicalID(userID)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	err = r.db.QueryRow(
		ctx,
		`
			SELECT COALESCE(SUM(amount), 0), COUNT(*)
			FROM water_record
			WHERE user_id = $1
				AND ($2::timestamptz IS NULL OR date >= $2)
				AND ($3::timestamptz IS NULL OR date <= $3);`,
		userID, dateRange.From, dateRange.To,
	).Scan(&summary.Total, &summary.Count)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize water: %w", err)
	}
	return summary, nil
}

func (r *Repo) Update(ctx context.Context, userID, id string, changes Changes, updatedAt time.Time) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if changes.Amount != nil && !ValidAmount(*changes.Amount) {
		return nil, ErrInvalidAmount
	}
	userID, id, err = ownedIDs(userID, id)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("water.id", id))

	row := r.db.QueryRow(
		ctx,
		`UPDATE water_record SET
				amount = COALESCE($3::double precision, amount),
				date = COALESCE($4::timestamptz, date),
				time = COALESCE($5::varchar, time),
				notes = COALESCE($6::text, notes),
				updated_at = $7
			WHERE id = $1 AND user_id = $2
			RETURNING `+waterColumns+`;`,
		id, userID, changes.Amount, changes.Date, changes.Time, changes.Notes, updatedAt,
	)
	return scanRecord(row)
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, id, err = ownedIDs(userID, id)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("water.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM water_record WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWaterNotFound
	}
	return nil
}

// DeleteBetween removes the user's records dated in [from, to) and returns how many went.
func (r *Repo) DeleteBetween(ctx context.Context, userID string, from, to time.Time) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.deleteBetween")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err = pkg.CanonicalID(userID)
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM water_record WHERE user_id = $1 AND date >= $2 AND date < $3;`,
		userID, from, to,
	)
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("water.deleted", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

func ownedIDs(userID, id string) (string, string, error) {
	userID, err := pkg.CanonicalID(userID)
	if err != nil {
		return "", "", err
	}
	id, err = pkg.CanonicalID(id)
	if err != nil {
		return "", "", ErrWaterNotFound
	}
	return userID, id, nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Amount, &rec.Date, &rec.Time, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWaterNotFound
		}
		return nil, fmt.Errorf("scan water record: %w", err)
	}
	return &rec, nil
}
