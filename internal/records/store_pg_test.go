package records

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGStoreList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{"data"}).
		AddRow([]byte(`{"subject":"Math","score":45,"maxScore":50}`)).
		AddRow([]byte(`{"subject":"Art","score":90,"isPercentage":true}`))
	mock.ExpectQuery("SELECT data\\s+FROM student_records").
		WithArgs("student-1", "academic").
		WillReturnRows(rows)

	store := &PGStore{DB: db}
	recs, err := store.List(context.Background(), "student-1", Academic)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0]["score"] != float64(45) || recs[1]["isPercentage"] != true {
		t.Fatalf("unexpected decoded records: %v", recs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGStorePut(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("INSERT INTO student_records").
		WithArgs(
			sqlmock.AnyArg(), // id
			"student-1",
			"journal",
			[]byte(`{"mood":"happy"}`),
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := &PGStore{DB: db}
	if err := store.Put(context.Background(), "student-1", Journal, Record{"mood": "happy"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
