package storage

import (
	"context"
	"testing"
	"time"
)

type noteID int64

type note struct {
	ID    noteID `db:"id"`
	Title string `db:"title"`

	Audit
}

func (n *note) TableName() string { return "notes" }

func (n *note) EntityID() noteID { return n.ID }

func (n *note) SetEntityID(id noteID) { n.ID = id }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCommitStampsAuditFieldsOnInsert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uow := NewUnitOfWork(NewMemoryBackend(), WithClock(fixedClock(now)))

	repo := RepositoryFor[*note, noteID](uow)
	n := &note{Title: "first"}
	repo.Add(n)

	if _, err := uow.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if n.ID == 0 {
		t.Fatal("expected generated id after commit")
	}
	got, err := repo.GetByID(ctx, n.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.CreatedDate.Equal(now) {
		t.Errorf("CreatedDate = %v, want %v", got.CreatedDate, now)
	}
	if !got.ModifiedDate.Equal(now) {
		t.Errorf("ModifiedDate = %v, want %v", got.ModifiedDate, now)
	}
}

func TestCommitStampsModifiedDateOnUpdate(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uow := NewUnitOfWork(backend, WithClock(fixedClock(created)))
	repo := RepositoryFor[*note, noteID](uow)
	n := &note{Title: "first"}
	repo.Add(n)
	if _, err := uow.Commit(ctx); err != nil {
		t.Fatalf("insert: %v", err)
	}

	modified := created.Add(2 * time.Hour)
	uow2 := NewUnitOfWork(backend, WithClock(fixedClock(modified)))
	repo2 := RepositoryFor[*note, noteID](uow2)
	got, err := repo2.GetByID(ctx, n.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Title = "renamed"
	repo2.Update(got)
	if _, err := uow2.Commit(ctx); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err = repo2.GetByID(ctx, n.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.CreatedDate.Equal(created) {
		t.Errorf("CreatedDate = %v, want unchanged %v", got.CreatedDate, created)
	}
	if !got.ModifiedDate.Equal(modified) {
		t.Errorf("ModifiedDate = %v, want %v", got.ModifiedDate, modified)
	}
}

func TestSoftDeleteFlagIsSticky(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	uow := NewUnitOfWork(backend)
	repo := RepositoryFor[*note, noteID](uow)
	n := &note{Title: "doomed"}
	repo.Add(n)
	if _, err := uow.Commit(ctx); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n.IsDeleted = true
	repo.Update(n)
	if _, err := uow.Commit(ctx); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	// An update that tries to clear the flag must not resurrect the row.
	uow2 := NewUnitOfWork(backend)
	repo2 := RepositoryFor[*note, noteID](uow2)
	got, err := repo2.GetByID(ctx, n.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.IsDeleted = false
	got.Title = "resurrected"
	repo2.Update(got)
	if _, err := uow2.Commit(ctx); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err = repo2.GetByID(ctx, n.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.IsDeleted {
		t.Error("IsDeleted was cleared by an update, want it to stay true")
	}
}

func TestRepositoryIsCachedPerSession(t *testing.T) {
	uow := NewUnitOfWork(NewMemoryBackend())

	first := RepositoryFor[*note, noteID](uow)
	second := RepositoryFor[*note, noteID](uow)
	if first != second {
		t.Error("expected the same repository instance for repeated lookups")
	}
}

func TestGetAllAppliesPredicate(t *testing.T) {
	ctx := context.Background()
	uow := NewUnitOfWork(NewMemoryBackend())
	repo := RepositoryFor[*note, noteID](uow)

	repo.Add(&note{Title: "keep"})
	repo.Add(&note{Title: "drop"})
	repo.Add(&note{Title: "keep"})
	if _, err := uow.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}

	kept, err := repo.GetAll(ctx, func(n *note) bool { return n.Title == "keep" })
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(kept) != 2 {
		t.Errorf("got %d notes, want 2", len(kept))
	}
}

func TestCommitReportsRowsAndClearsStaged(t *testing.T) {
	ctx := context.Background()
	uow := NewUnitOfWork(NewMemoryBackend())
	repo := RepositoryFor[*note, noteID](uow)

	repo.Add(&note{Title: "a"})
	repo.Add(&note{Title: "b"})
	if got := uow.Pending(); got != 2 {
		t.Fatalf("Pending = %d, want 2", got)
	}

	n, err := uow.Commit(ctx)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if n != 2 {
		t.Errorf("Commit rows = %d, want 2", n)
	}
	if got := uow.Pending(); got != 0 {
		t.Errorf("Pending after commit = %d, want 0", got)
	}

	// An empty commit is a no-op.
	n, err = uow.Commit(ctx)
	if err != nil || n != 0 {
		t.Errorf("empty commit = (%d, %v), want (0, nil)", n, err)
	}
}

func TestFailedCommitKeepsStagedChanges(t *testing.T) {
	ctx := context.Background()
	uow := NewUnitOfWork(NewMemoryBackend())
	repo := RepositoryFor[*note, noteID](uow)

	repo.Update(&note{ID: 999, Title: "missing"})
	if _, err := uow.Commit(ctx); err == nil {
		t.Fatal("expected commit of a missing row to fail")
	}
	if got := uow.Pending(); got != 1 {
		t.Errorf("Pending after failed commit = %d, want 1", got)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	uow := NewUnitOfWork(NewMemoryBackend())
	repo := RepositoryFor[*note, noteID](uow)

	_, err := repo.GetByID(ctx, 42)
	if err == nil {
		t.Fatal("expected an error for a missing row")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	ctx := context.Background()
	uow := NewUnitOfWork(NewMemoryBackend())
	repo := RepositoryFor[*note, noteID](uow)

	n := &note{Title: "gone"}
	repo.Add(n)
	if _, err := uow.Commit(ctx); err != nil {
		t.Fatalf("insert: %v", err)
	}

	repo.Delete(n)
	if _, err := uow.Commit(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.GetByID(ctx, n.ID); !IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestSeedPreservesExplicitIDs(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	backend.Seed(&note{ID: 7, Title: "seeded"})

	uow := NewUnitOfWork(backend)
	repo := RepositoryFor[*note, noteID](uow)
	got, err := repo.GetByID(ctx, 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "seeded" {
		t.Errorf("Title = %q, want %q", got.Title, "seeded")
	}

	// Inserts after seeding must not reuse the seeded id.
	n := &note{Title: "next"}
	repo.Add(n)
	if _, err := uow.Commit(ctx); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if n.ID <= 7 {
		t.Errorf("generated id %d collides with seeded range", n.ID)
	}
}
