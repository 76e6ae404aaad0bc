package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mohamedlefliti/projetennaciria/internal/database/dbtest"
	"github.com/mohamedlefliti/projetennaciria/internal/models"
)

var fixedNow = time.Date(2024, time.March, 9, 15, 4, 5, 0, time.UTC)

func newTestRepo(t *testing.T) *TransactionRepository {
	t.Helper()
	return New(dbtest.Open(t), WithClock(func() time.Time { return fixedNow }))
}

func bookPurchase() models.Input {
	return models.Input{Description: "Book purchase", Amount: 49.99, Type: "Expense", Category: "Supplies"}
}

func TestInsert_AssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	var last uint
	for i := 0; i < 3; i++ {
		before, _ := repo.Count(ctx)
		tx, err := repo.Insert(ctx, bookPurchase())
		if err != nil {
			t.Fatalf("Insert #%d error = %v", i+1, err)
		}
		after, _ := repo.Count(ctx)
		if after != before+1 {
			t.Errorf("count after insert = %d, want %d", after, before+1)
		}
		if tx.ID <= last {
			t.Errorf("id %d not greater than previous %d", tx.ID, last)
		}
		last = tx.ID
	}
}

func TestInsert_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	first, _ := repo.Insert(ctx, bookPurchase())
	second, _ := repo.Insert(ctx, bookPurchase())
	if err := repo.Delete(ctx, second.ID); err != nil {
		t.Fatalf("Delete error = %v", err)
	}

	third, err := repo.Insert(ctx, bookPurchase())
	if err != nil {
		t.Fatalf("Insert error = %v", err)
	}
	if third.ID <= second.ID || third.ID <= first.ID {
		t.Errorf("third id = %d, want > %d", third.ID, second.ID)
	}
}

func TestInsert_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	in := bookPurchase()
	tx, err := repo.Insert(ctx, in)
	if err != nil {
		t.Fatalf("Insert error = %v", err)
	}

	rows, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	got := rows[0]
	want := models.Transaction{
		ID:          tx.ID,
		Date:        "2024-03-09",
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
	}
	if got != want {
		t.Errorf("row = %+v, want %+v", got, want)
	}
}

func TestListAll_OrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, d := range []string{"a", "b", "c"} {
		in := bookPurchase()
		in.Description = d
		if _, err := repo.Insert(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll error = %v", err)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].ID <= rows[i-1].ID {
			t.Errorf("rows not in id order: %+v", rows)
		}
	}
	if rows[0].Description != "a" || rows[2].Description != "c" {
		t.Errorf("rows = %+v, want insertion order", rows)
	}
}

func TestListAll_Empty(t *testing.T) {
	rows, err := newTestRepo(t).ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}

func TestUpdate_KeepsIDAndDate(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := New(db, WithClock(func() time.Time { return fixedNow }))

	tx, _ := repo.Insert(ctx, bookPurchase())
	other, _ := repo.Insert(ctx, models.Input{Description: "Salary", Amount: 1000, Type: "Income", Category: "Payroll"})

	// a later clock must not leak into the date on update
	repo = New(db, WithClock(func() time.Time { return fixedNow.AddDate(0, 1, 0) }))

	in := models.Input{Description: "Book purchase", Amount: 39.99, Type: "Expense", Category: "Books"}
	if err := repo.Update(ctx, tx.ID, in); err != nil {
		t.Fatalf("Update error = %v", err)
	}

	got, err := repo.Get(ctx, tx.ID)
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if got.ID != tx.ID || got.Date != tx.Date {
		t.Errorf("id/date changed: got %+v, was %+v", got, tx)
	}
	if got.Amount != 39.99 || got.Category != "Books" {
		t.Errorf("fields not updated: %+v", got)
	}

	untouched, _ := repo.Get(ctx, other.ID)
	if untouched != other {
		t.Errorf("other row changed: %+v, want %+v", untouched, other)
	}
	if n, _ := repo.Count(ctx); n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestUpdate_SameValuesStillFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	tx, _ := repo.Insert(ctx, bookPurchase())
	if err := repo.Update(ctx, tx.ID, bookPurchase()); err != nil {
		t.Errorf("Update with unchanged values error = %v, want nil", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	err := repo.Update(ctx, 42, bookPurchase())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(42) error = %v, want ErrNotFound", err)
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	keep, _ := repo.Insert(ctx, bookPurchase())
	gone, _ := repo.Insert(ctx, bookPurchase())

	if err := repo.Delete(ctx, gone.ID); err != nil {
		t.Fatalf("Delete error = %v", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
	if _, err := repo.Get(ctx, gone.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrNotFound", err)
	}
	if _, err := repo.Get(ctx, keep.ID); err != nil {
		t.Errorf("Get(kept) error = %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	err := newTestRepo(t).Delete(context.Background(), 7)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(7) error = %v, want ErrNotFound", err)
	}
}

func TestStorageErrorSurfaced(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := New(db)

	if err := db.Exec("DROP TABLE transactions").Error; err != nil {
		t.Fatal(err)
	}

	if _, err := repo.Insert(ctx, bookPurchase()); err == nil {
		t.Error("Insert() without table error = nil, want error")
	}
	if _, err := repo.ListAll(ctx); err == nil {
		t.Error("ListAll() without table error = nil, want error")
	}
	if err := repo.Update(ctx, 1, bookPurchase()); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Update() without table error = %v, want storage error", err)
	}
}
