package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString(t *testing.T) {
	assert.Equal(t,
		"postgres://postgres@localhost:5432/fittrack",
		ConnString(NewDBPoolParams{DBHost: "localhost", DBPort: "5432", DBName: "fittrack"}),
	)
	assert.Equal(t,
		"postgres://fit:p%40ss@db:6543/fittrack",
		ConnString(NewDBPoolParams{DBHost: "db", DBPort: "6543", DBName: "fittrack", DBUser: "fit", DBPassword: "p@ss"}),
	)
}

type execerStub struct {
	sql string
	err error
}

func (e *execerStub) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	e.sql = sql
	return pgconn.CommandTag{}, e.err
}

func TestMigrate(t *testing.T) {
	stub := &execerStub{}
	require.NoError(t, Migrate(context.Background(), stub))
	assert.Equal(t, Schema, stub.sql)
	for _, table := range []string{"users", "workout", "meal", "water_record", "social_post"} {
		assert.True(t, strings.Contains(Schema, "CREATE TABLE IF NOT EXISTS "+table), table)
	}

	stub.err = errors.New("permission denied")
	assert.ErrorContains(t, Migrate(context.Background(), stub), "apply schema: permission denied")
}
