package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, averageRating(nil))
	assert.Equal(t, 4.0, averageRating([]int{4}))
	assert.Equal(t, 4.5, averageRating([]int{4, 5}))
	// 11/3 = 3.666... rounds to one decimal place
	assert.Equal(t, 3.7, averageRating([]int{3, 4, 4}))
	assert.Equal(t, 3.3, averageRating([]int{3, 3, 4}))
}

func TestAddReviewRecomputesTestRating(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewReviewService(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WithArgs(5, nil, "alice", 5, "great test", true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(31)))
	mock.ExpectQuery(`SELECT "rating" FROM "reviews"`).
		WithArgs(5, true).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(4).AddRow(5))
	mock.ExpectExec(`UPDATE "tests" SET`).
		WithArgs(4.5, 2, sqlmock.AnyArg(), 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	review, err := svc.AddReview(&AddReviewRequest{
		TestID:   5,
		UserName: "alice",
		Rating:   5,
		Comment:  "great test",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(31), review.ID)
	assert.True(t, review.IsApproved)
	assert.Nil(t, review.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddReviewInvalidatesTestListCache(t *testing.T) {
	db, mock := newMockDB(t)
	cache, hook := newRecordedCache()
	svc := NewReviewService(db, cache)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(32)))
	mock.ExpectQuery(`SELECT "rating" FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(4))
	mock.ExpectExec(`UPDATE "tests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := svc.AddReview(&AddReviewRequest{TestID: 5, Rating: 4})
	require.NoError(t, err)

	// the cached enriched lists carry average_rating/review_count, so a new
	// review must drop both keys
	dels := hook.commandsNamed("del")
	require.Len(t, dels, 1)
	assert.Equal(t, []interface{}{"del", cacheKeyTestsAll, cacheKeyTestsPublished}, dels[0].Args())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddReviewInsertFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewReviewService(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.AddReview(&AddReviewRequest{TestID: 5, Rating: 3})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
