package repositories

import (
	"context"
	"testing"
	"time"

	"expense-tracker/internal/database"
	"expense-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestRecordRepository(t *testing.T) {
	suite.Run(t, new(RecordRepositorySuite))
}

type RecordRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo RecordRepositoryInterface
	ctx  context.Context
}

func (s *RecordRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewRecordRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *RecordRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *RecordRepositorySuite) newRecord(userID uuid.UUID, date time.Time) *models.Record {
	return &models.Record{
		UserID:   userID,
		Text:     gofakeit.Sentence(3),
		Category: gofakeit.RandomString([]string{"Food", "Transport", "Utilities", "Shopping"}),
		Amount:   decimal.NewFromFloat(gofakeit.Float64Range(1, 5000)).Round(2),
		Date:     date,
	}
}

func (s *RecordRepositorySuite) TestCreate() {
	record := s.newRecord(uuid.New(), time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	err := s.repo.Create(s.ctx, record)
	s.NoError(err)
	s.NotEqual(uuid.Nil, record.ID)
	s.NotZero(record.CreatedAt)
}

func (s *RecordRepositorySuite) TestCreate_NilRecord() {
	err := s.repo.Create(s.ctx, nil)
	s.Error(err)
}

func (s *RecordRepositorySuite) TestCreate_RejectsInvalidRecords() {
	userID := uuid.New()

	noOwner := s.newRecord(uuid.Nil, time.Now().UTC())
	s.ErrorIs(s.repo.Create(s.ctx, noOwner), models.ErrRecordOwnerRequired)

	negative := s.newRecord(userID, time.Now().UTC())
	negative.Amount = decimal.NewFromInt(-5)
	s.ErrorIs(s.repo.Create(s.ctx, negative), models.ErrNegativeAmount)

	undated := s.newRecord(userID, time.Time{})
	s.ErrorIs(s.repo.Create(s.ctx, undated), models.ErrMissingRecordDate)
}

func (s *RecordRepositorySuite) TestGetByID() {
	record := s.newRecord(uuid.New(), time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	s.Require().NoError(s.repo.Create(s.ctx, record))

	found, err := s.repo.GetByID(s.ctx, record.ID)
	s.NoError(err)
	s.Equal(record.ID, found.ID)
	s.Equal(record.UserID, found.UserID)
	s.Equal(record.Text, found.Text)
	s.True(record.Amount.Equal(found.Amount))

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *RecordRepositorySuite) TestGetByUserID_ScopedAndNewestFirst() {
	userID := uuid.New()
	otherUserID := uuid.New()

	dates := []time.Time{
		time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	for _, date := range dates {
		s.Require().NoError(s.repo.Create(s.ctx, s.newRecord(userID, date)))
	}
	s.Require().NoError(s.repo.Create(s.ctx, s.newRecord(otherUserID, dates[1])))

	records, err := s.repo.GetByUserID(s.ctx, userID)
	s.NoError(err)
	s.Len(records, 3)
	for _, record := range records {
		s.Equal(userID, record.UserID)
	}
	s.True(records[0].Date.Equal(dates[1]))
	s.True(records[1].Date.Equal(dates[2]))
	s.True(records[2].Date.Equal(dates[0]))
}

func (s *RecordRepositorySuite) TestGetByUserID_NoRecords() {
	records, err := s.repo.GetByUserID(s.ctx, uuid.New())
	s.NoError(err)
	s.NotNil(records)
	s.Empty(records)
}

func (s *RecordRepositorySuite) TestGetByUserIDAndDateRange() {
	userID := uuid.New()
	inside := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	before := time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)
	after := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	for _, date := range []time.Time{inside, before, after} {
		s.Require().NoError(s.repo.Create(s.ctx, s.newRecord(userID, date)))
	}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	records, err := s.repo.GetByUserIDAndDateRange(s.ctx, userID, start, end)
	s.NoError(err)
	s.Require().Len(records, 1)
	s.True(records[0].Date.Equal(inside))
}

func (s *RecordRepositorySuite) TestDelete() {
	userID := uuid.New()
	record := s.newRecord(userID, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	s.Require().NoError(s.repo.Create(s.ctx, record))

	err := s.repo.Delete(s.ctx, uuid.New(), record.ID)
	s.ErrorIs(err, ErrRecordNotFound)

	err = s.repo.Delete(s.ctx, userID, record.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(s.ctx, record.ID)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *RecordRepositorySuite) TestDeleteByUserID() {
	userID := uuid.New()
	otherUserID := uuid.New()
	date := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		s.Require().NoError(s.repo.Create(s.ctx, s.newRecord(userID, date)))
	}
	s.Require().NoError(s.repo.Create(s.ctx, s.newRecord(otherUserID, date)))

	deleted, err := s.repo.DeleteByUserID(s.ctx, userID)
	s.NoError(err)
	s.Equal(int64(3), deleted)

	remaining, err := s.repo.GetByUserID(s.ctx, otherUserID)
	s.NoError(err)
	s.Len(remaining, 1)

	deleted, err = s.repo.DeleteByUserID(s.ctx, userID)
	s.NoError(err)
	s.Zero(deleted)
}

func (s *RecordRepositorySuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.repo.GetByUserID(ctx, uuid.New())
	s.Error(err)
}
