package database

import (
	"errors"
	"fmt"
	"testing"

	"restaurant-ops/pkg/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConstraintViolations(t *testing.T) {
	unique := fmt.Errorf("create table A1: %w", &pgconn.PgError{Code: "23505"})
	foreignKey := fmt.Errorf("create order items: %w", &pgconn.PgError{Code: "23503"})

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))

	assert.True(t, IsForeignKeyViolation(foreignKey))
	assert.False(t, IsUniqueViolation(foreignKey))

	assert.False(t, IsUniqueViolation(errors.New("23505")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestConnString(t *testing.T) {
	got := ConnString(utils.DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		Name:     "restaurants",
		User:     "ops",
		Password: "secret",
		SSLMode:  "disable",
	})
	assert.Equal(t, "host=db port=5433 user=ops password=secret dbname=restaurants sslmode=disable", got)
}
