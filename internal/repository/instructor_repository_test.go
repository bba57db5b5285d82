package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instructorRows(id, email string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "title", "bio", "image", "active", "last_login", "created_at", "updated_at"}).
		AddRow(id, email, "hash", "Ahmad Hassan", "Senior Instructor", "", "", true, nil, now, now)
}

func TestInstructorRepositoryFindActiveByEmail(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewInstructorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM instructors WHERE email = $1 AND active = TRUE")).
		WithArgs("ahmad@example.com").
		WillReturnRows(instructorRows("instr-1", "ahmad@example.com"))

	instructor, err := repo.FindActiveByEmail(context.Background(), "ahmad@example.com")
	require.NoError(t, err)
	assert.Equal(t, "instr-1", instructor.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositoryFindActiveByEmailInactive(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewInstructorRepository(db)

	// The query itself filters on active, so an inactive account surfaces
	// as no rows.
	mock.ExpectQuery(regexp.QuoteMeta("FROM instructors WHERE email = $1 AND active = TRUE")).
		WithArgs("inactive@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindActiveByEmail(context.Background(), "inactive@example.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestInstructorRepositoryUpdateLastLogin(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewInstructorRepository(db)

	ts := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE instructors SET last_login = $2, updated_at = $3 WHERE id = $1")).
		WithArgs("instr-1", ts, ts).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateLastLogin(context.Background(), "instr-1", ts))
	assert.NoError(t, mock.ExpectationsWereMet())
}
