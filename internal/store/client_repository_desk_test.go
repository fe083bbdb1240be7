package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/models"
)

func newTestLocalDeskRepo(t *testing.T) (*localDeskRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &localDeskRepository{
		db:     &ClientDB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func localDeskColumns() []string {
	return []string{"desk_id", "user_id", "name", "slug", "position", "created_at", "updated_at"}
}

func TestLocalDeskRepository_ReplaceDesks(t *testing.T) {
	repo, mock, db := newTestLocalDeskRepo(t)
	defer db.Close()

	now := time.Now()
	desks := []models.Desk{
		{DeskID: "desk-1", Name: "ENC:reading", Slug: "reading", Position: 0, CreatedAt: now, UpdatedAt: now},
		{DeskID: "desk-2", Name: "ENC:work", Slug: "work", Position: 1, CreatedAt: now, UpdatedAt: now},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM desks").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO desks").
		WithArgs("desk-1", int64(7), "ENC:reading", "reading", 0, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO desks").
		WithArgs("desk-2", int64(7), "ENC:work", "work", 1, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.ReplaceDesks(context.Background(), 7, desks...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLocalDeskRepository_ReplaceDesks_RollbackOnError(t *testing.T) {
	repo, mock, db := newTestLocalDeskRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM desks").
		WithArgs(int64(7)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.ReplaceDesks(context.Background(), 7)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestLocalDeskRepository_GetDesks(t *testing.T) {
	repo, mock, db := newTestLocalDeskRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(localDeskColumns()).
		AddRow("desk-1", int64(7), "ENC:reading", "reading", 0, now, now).
		AddRow("desk-2", int64(7), "ENC:work", "work", 1, now, now)

	mock.ExpectQuery("SELECT (.+) FROM desks").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	desks, err := repo.GetDesks(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(desks) != 2 {
		t.Fatalf("expected 2 desks, got %d", len(desks))
	}
	if desks[1].Slug != "work" {
		t.Errorf("expected second desk slug 'work', got %q", desks[1].Slug)
	}
}

func TestLocalDeskRepository_GetDesk_NotFound(t *testing.T) {
	repo, mock, db := newTestLocalDeskRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM desks").
		WithArgs("missing", int64(7)).
		WillReturnRows(sqlmock.NewRows(localDeskColumns()))

	_, err := repo.GetDesk(context.Background(), "missing", 7)
	if !errors.Is(err, ErrDeskNotFound) {
		t.Fatalf("expected ErrDeskNotFound, got %v", err)
	}
}

func TestLocalDeskRepository_SaveDesk_Upsert(t *testing.T) {
	repo, mock, db := newTestLocalDeskRepo(t)
	defer db.Close()

	now := time.Now()
	desk := models.Desk{DeskID: "desk-1", UserID: 7, Name: "ENC:renamed", Slug: "reading", Position: 0, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO desks").
		WithArgs("desk-1", int64(7), "ENC:renamed", "reading", 0, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveDesk(context.Background(), desk); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalDeskRepository_DeleteDesk(t *testing.T) {
	repo, mock, db := newTestLocalDeskRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM desks").
		WithArgs("desk-1", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteDesk(context.Background(), "desk-1", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
