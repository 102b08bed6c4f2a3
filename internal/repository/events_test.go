package repository_test

import (
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/jbnu-feel/feelgeo/internal/models"
	"github.com/jbnu-feel/feelgeo/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventColumns = []string{"event_id", "date_start", "date_end", "title_ko", "title_en"}

func TestListEvents(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	query := regexp.QuoteMeta(`WHERE date_start <= $2 AND date_end >= $1`)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("error - query", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(query).
			WithArgs(start, end).
			WillReturnError(assert.AnError)

		events, err := repo.ListEvents(ctx, start, end)

		require.Nil(t, events)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to query events")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - scan event", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(query).
			WithArgs(start, end).
			WillReturnRows(
				pgxmock.NewRows(eventColumns).
					AddRow("invalid_id", start, end, "개강총회", "Opening Assembly"),
			)

		events, err := repo.ListEvents(ctx, start, end)

		require.Nil(t, events)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to scan event")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - overlapping events", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(query).
			WithArgs(start, end).
			WillReturnRows(
				pgxmock.NewRows(eventColumns).
					AddRow(1, start, start.AddDate(0, 0, 2), "개강총회", "Opening Assembly").
					AddRow(2, start.AddDate(0, 0, 10), start.AddDate(0, 0, 12), "중간고사 간식 행사", "Midterm Snack Event"),
			)

		events, err := repo.ListEvents(ctx, start, end)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, 1, events[0].ID)
		assert.Equal(t, "개강총회", events[0].TitleKorean)
		assert.Equal(t, "Midterm Snack Event", events[1].TitleEnglish)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAllEvents(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()

	t.Run("error - query", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT event_id`)).WillReturnError(assert.AnError)

		events, err := repo.AllEvents(ctx)

		require.Nil(t, events)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to query all events")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)
		day := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT event_id`)).
			WillReturnRows(
				pgxmock.NewRows(eventColumns).
					AddRow(3, day, day.AddDate(0, 0, 1), "대동제", "Festival"),
			)

		events, err := repo.AllEvents(ctx)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "대동제", events[0].TitleKorean)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetEvent(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	query := regexp.QuoteMeta(`WHERE event_id = $1`)

	t.Run("error - not found", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(query).
			WithArgs(42).
			WillReturnRows(pgxmock.NewRows(eventColumns))

		_, err = repo.GetEvent(ctx, 42)

		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)
		day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(query).
			WithArgs(42).
			WillReturnRows(
				pgxmock.NewRows(eventColumns).
					AddRow(42, day, day, "개강일", "First Day of Classes"),
			)

		event, err := repo.GetEvent(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, 42, event.ID)
		assert.Equal(t, "개강일", event.TitleKorean)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateEvent(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	query := regexp.QuoteMeta(`INSERT INTO public.events`)
	event := models.Event{
		DateStart:    time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		DateEnd:      time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC),
		TitleKorean:  "가을 축제",
		TitleEnglish: "Autumn Festival",
	}

	t.Run("error - insert", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(query).
			WithArgs(event.DateStart, event.DateEnd, event.TitleKorean, event.TitleEnglish).
			WillReturnError(assert.AnError)

		id, err := repo.CreateEvent(ctx, event)

		assert.Zero(t, id)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to create event")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(query).
			WithArgs(event.DateStart, event.DateEnd, event.TitleKorean, event.TitleEnglish).
			WillReturnRows(pgxmock.NewRows([]string{"event_id"}).AddRow(55))

		id, err := repo.CreateEvent(ctx, event)

		require.NoError(t, err)
		assert.Equal(t, 55, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateEvent(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	query := regexp.QuoteMeta(`SET date_start = $1, date_end = $2, title_ko = $3, title_en = $4`)
	event := models.Event{
		ID:           7,
		DateStart:    time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		DateEnd:      time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC),
		TitleKorean:  "가을 축제",
		TitleEnglish: "Autumn Festival",
	}

	t.Run("error - not found", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(query).
			WithArgs(event.DateStart, event.DateEnd, event.TitleKorean, event.TitleEnglish, event.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err = repo.UpdateEvent(ctx, event)

		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(query).
			WithArgs(event.DateStart, event.DateEnd, event.TitleKorean, event.TitleEnglish, event.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err = repo.UpdateEvent(ctx, event)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	query := regexp.QuoteMeta(`DELETE FROM public.events WHERE event_id = $1;`)

	t.Run("error - not found", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(query).
			WithArgs(42).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err = repo.DeleteEvent(ctx, 42)

		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(query).
			WithArgs(42).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err = repo.DeleteEvent(ctx, 42)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
