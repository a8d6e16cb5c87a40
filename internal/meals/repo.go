package meals

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

var ErrMealNotFound = errors.New("meal not found")

const (
	MaxListSize = 100

	mealColumns = `id, user_id, type, foods, notes, date, created_at, total_calories, total_protein, total_carbs, total_fats`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the meal with totals recomputed from its foods.
func (r *Repo) Add(ctx context.Context, meal *Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := pkg.CanonicalID(meal.UserID)
	if err != nil {
		return nil, err
	}
	meal.UserID = userID
	meal.ID = pkg.NewID()
	if meal.Foods == nil {
		meal.Foods = []Food{}
	}
	meal.RecomputeTotals()
	span.SetAttributes(attribute.String("meal.id", meal.ID))

	foodsJson, err := json.Marshal(meal.Foods)
	if err != nil {
		return nil, fmt.Errorf("marshal foods: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO meal (`+mealColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		meal.ID, meal.UserID, meal.Type, foodsJson, meal.Notes, meal.Date, meal.CreatedAt,
		meal.TotalCalories, meal.TotalProtein, meal.TotalCarbs, meal.TotalFats,
	)
	if err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}

	return meal, nil
}

func (r *Repo) Get(ctx context.Context, userID, id string) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, id, err = ownedIDs(userID, id)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("meal.id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+mealColumns+` FROM meal WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	return scanMeal(row)
}

func (r *Repo) List(ctx context.Context, userID string, dateRange pkg.DateRange) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.list")
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
			SELECT `+mealColumns+`
			FROM meal
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

	meals := []Meal{}
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		meals = append(meals, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("meals.count", len(meals)))
	return meals, nil
}

// Update applies the sent fields; new foods always come with fresh totals.
func (r *Repo) Update(ctx context.Context, userID, id string, update Update) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, id, err = ownedIDs(userID, id)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("meal.id", id))

	var foodsJson []byte
	var totals *Totals
	if update.Foods != nil {
		foods := *update.Foods
		if foods == nil {
			foods = []Food{}
		}
		if foodsJson, err = json.Marshal(foods); err != nil {
			return nil, fmt.Errorf("marshal foods: %w", err)
		}
		t := SumFoods(foods)
		totals = &t
	}

	var totalCalories, totalProtein, totalCarbs, totalFats *float64
	if totals != nil {
		totalCalories, totalProtein, totalCarbs, totalFats = &totals.Calories, &totals.Protein, &totals.Carbs, &totals.Fats
	}

	row := r.db.QueryRow(
		ctx,
		`UPDATE meal SET
				type = COALESCE($3::varchar, type),
				foods = COALESCE($4::jsonb, foods),
				notes = COALESCE($5::text, notes),
				total_calories = COALESCE($6::double precision, total_calories),
				total_protein = COALESCE($7::double precision, total_protein),
				total_carbs = COALESCE($8::double precision, total_carbs),
				total_fats = COALESCE($9::double precision, total_fats)
			WHERE id = $1 AND user_id = $2
			RETURNING `+mealColumns+`;`,
		id, userID, update.Type, foodsJson, update.Notes,
		totalCalories, totalProtein, totalCarbs, totalFats,
	)
	return scanMeal(row)
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, id, err = ownedIDs(userID, id)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("meal.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM meal WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealNotFound
	}
	return nil
}

func ownedIDs(userID, id string) (string, string, error) {
	userID, err := pkg.CanonicalID(userID)
	if err != nil {
		return "", "", err
	}
	id, err = pkg.CanonicalID(id)
	if err != nil {
		return "", "", ErrMealNotFound
	}
	return userID, id, nil
}

func scanMeal(row pgx.Row) (*Meal, error) {
	var m Meal
	var foodsJson []byte
	err := row.Scan(
		&m.ID, &m.UserID, &m.Type, &foodsJson, &m.Notes, &m.Date, &m.CreatedAt,
		&m.TotalCalories, &m.TotalProtein, &m.TotalCarbs, &m.TotalFats,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMealNotFound
		}
		return nil, fmt.Errorf("scan meal: %w", err)
	}

	if err := json.Unmarshal(foodsJson, &m.Foods); err != nil {
		return nil, fmt.Errorf("unmarshal foods: %w", err)
	}
	if m.Foods == nil {
		m.Foods = []Food{}
	}
	return &m, nil
}
