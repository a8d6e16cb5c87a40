package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

const (
	MaxListSize = 100

	workoutColumns = `id, user_id, title, type, exercises, duration, calories_burned, notes, date, created_at`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout *Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := pkg.CanonicalID(workout.UserID)
	if err != nil {
		return nil, err
	}
	workout.UserID = userID
	workout.ID = pkg.NewID()
	if workout.Exercises == nil {
		workout.Exercises = []Exercise{}
	}
	span.SetAttributes(attribute.String("workout.id", workout.ID))

	exercisesJson, err := json.Marshal(workout.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout (`+workoutColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		workout.ID, workout.UserID, workout.Title, workout.Type, exercisesJson,
		workout.Duration, workout.CaloriesBurned, workout.Notes, workout.Date, workout.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	return workout, nil
}

func (r *Repo) Get(ctx context.Context, userID, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, id, err = ownedIDs(userID, id)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("workout.id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+workoutColumns+` FROM workout WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	return scanWorkout(row)
}

// List returns the user's newest workouts first, at most MaxListSize of them.
func (r *Repo) List(ctx context.Context, userID string, dateRange pkg.DateRange) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
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
			SELECT `+workoutColumns+`
			FROM workout
			WHERE user_id = $1
				AND ($2::timestamptz IS NULL OR date >= $2)
				AND ($3::timestamptz IS NULL OR date <= $3)
			ORDER BY date DESC
			LIMIT $4;`,
		userID, dateRange.From, dateRange.To, MaxListSize,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, nil
}

func (r *Repo) Update(ctx context.Context, userID, id string, update Update) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, id, err = ownedIDs(userID, id)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("workout.id", id))

	var exercisesJson []byte
	if update.Exercises != nil {
		exercises := *update.Exercises
		if exercises == nil {
			exercises = []Exercise{}
		}
		if exercisesJson, err = json.Marshal(exercises); err != nil {
			return nil, fmt.Errorf("marshal exercises: %w", err)
		}
	}

	row := r.db.QueryRow(
		ctx,
		`UPDATE workout SET
				title = COALESCE($3::varchar, title),
				type = COALESCE($4::varchar, type),
				exercises = COALESCE($5::jsonb, exercises),
				duration = COALESCE($6::integer, duration),
				calories_burned = COALESCE($7::integer, calories_burned),
				notes = COALESCE($8::text, notes)
			WHERE id = $1 AND user_id = $2
			RETURNING `+workoutColumns+`;`,
		id, userID, update.Title, update.Type, exercisesJson,
		update.Duration, update.CaloriesBurned, update.Notes,
	)
	return scanWorkout(row)
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, id, err = ownedIDs(userID, id)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// ownedIDs canonicalizes both ids; a malformed record id cannot match any row.
func ownedIDs(userID, id string) (string, string, error) {
	userID, err := pkg.CanonicalID(userID)
	if err != nil {
		return "", "", err
	}
	id, err = pkg.CanonicalID(id)
	if err != nil {
		return "", "", ErrWorkoutNotFound
	}
	return userID, id, nil
}

func scanWorkout(row pgx.Row) (*Workout, error) {
	var w Workout
	var exercisesJson []byte
	err := row.Scan(
		&w.ID, &w.UserID, &w.Title, &w.Type, &exercisesJson,
		&w.Duration, &w.CaloriesBurned, &w.Notes, &w.Date, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("scan workout: %w", err)
	}

	if err := json.Unmarshal(exercisesJson, &w.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises: %w", err)
	}
	if w.Exercises == nil {
		w.Exercises = []Exercise{}
	}
	return &w, nil
}
