package stats

import (
	"context"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	workoutsAggregateQuery = `
		SELECT COUNT(*), COALESCE(SUM(calories_burned), 0)::double precision
		FROM workout
		WHERE user_id = $1
			AND ($2::timestamptz IS NULL OR date >= $2)
			AND ($3::timestamptz IS NULL OR date < $3);`

	mealsAggregateQuery = `
		SELECT COUNT(*), COALESCE(SUM(total_calories), 0)::double precision
		FROM meal
		WHERE user_id = $1
			AND ($2::timestamptz IS NULL OR date >= $2)
			AND ($3::timestamptz IS NULL OR date < $3);`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Workouts(ctx context.Context, userID string, window Window) (_ Aggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	return r.aggregate(ctx, workoutsAggregateQuery, userID, window)
}

func (r *Repo) Meals(ctx context.Context, userID string, window Window) (_ Aggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.meals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	return r.aggregate(ctx, mealsAggregateQuery, userID, window)
}

func (r *Repo) aggregate(ctx context.Context, query, userID string, window Window) (Aggregate, error) {
	userID, err := pkg.CanonicalID(userID)
	if err != nil {
		return Aggregate{}, err
	}

	var agg Aggregate
	if err := r.db.QueryRow(ctx, query, userID, window.From, window.To).Scan(&agg.Count, &agg.Calories); err != nil {
		return Aggregate{}, fmt.Errorf("aggregate: %w", err)
	}
	return agg, nil
}
