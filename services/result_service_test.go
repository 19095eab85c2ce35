package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitResultDefaultsToAnonymous(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewResultService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "results"`).
		WithArgs(3, "Anonymous", nil, 8, 10, 10, 80.0,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(21)))
	mock.ExpectCommit()

	result, err := svc.SubmitResult(&SubmitResultRequest{
		TestID:         3,
		Score:          8,
		TotalQuestions: 10,
		MaxScore:       10,
		Percentage:     80,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(21), result.ID)
	assert.Equal(t, "Anonymous", result.UserName)
	assert.False(t, result.CompletedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitResultKeepsUserName(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewResultService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "results"`).
		WithArgs(3, "bob", nil, 5, 10, 10, 50.0,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(22)))
	mock.ExpectCommit()

	result, err := svc.SubmitResult(&SubmitResultRequest{
		TestID:         3,
		UserName:       "bob",
		Score:          5,
		TotalQuestions: 10,
		MaxScore:       10,
		Percentage:     50,
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", result.UserName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListResultsByTestOrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewResultService(db)

	mock.ExpectQuery(`SELECT .* FROM "results" WHERE test_id = .+ ORDER BY completed_at DESC`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "test_id", "user_name", "score"}).
			AddRow(2, 3, "bob", 9).
			AddRow(1, 3, "alice", 7))

	results, err := svc.ListResultsByTest(3)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, uint(2), results[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
