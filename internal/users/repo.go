package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

const userColumns = `id, name, email, password_hash, age, gender, height, weight, activity_level, goal, bio, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, user *User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if user.ID == "" {
		user.ID = pkg.NewID()
	}
	id, err := pkg.CanonicalID(user.ID)
	if err != nil {
		return nil, err
	}
	user.ID = id
	user.Email = NormalizeEmail(user.Email)
	span.SetAttributes(attribute.String("user.id", user.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO users (`+userColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Age, user.Gender, user.Height, user.Weight,
		user.ActivityLevel, user.Goal, user.Bio, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err = pkg.CanonicalID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	span.SetAttributes(attribute.String("user.id", id))

	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, id)
	return scanUser(row)
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, NormalizeEmail(email))
	return scanUser(row)
}

// Update applies the non-nil fields of the update and returns the stored user.
func (r *Repo) Update(ctx context.Context, id string, update ProfileUpdate) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err = pkg.CanonicalID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	span.SetAttributes(attribute.String("user.id", id))

	row := r.db.QueryRow(
		ctx,
		`UPDATE users SET
				name = COALESCE($2::varchar, name),
				age = COALESCE($3::integer, age),
				gender = COALESCE($4::varchar, gender),
				height = COALESCE($5::double precision, height),
				weight = COALESCE($6::double precision, weight),
				activity_level = COALESCE($7::varchar, activity_level),
				goal = COALESCE($8::varchar, goal),
				bio = COALESCE($9::text, bio),
				updated_at = now()
			WHERE id = $1
			RETURNING `+userColumns+`;`,
		id, update.Name, update.Age, update.Gender, update.Height, update.Weight,
		update.ActivityLevel, update.Goal, update.Bio,
	)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Age, &u.Gender, &u.Height, &u.Weight,
		&u.ActivityLevel, &u.Goal, &u.Bio, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
