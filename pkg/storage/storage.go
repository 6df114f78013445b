// Package storage implements the generic repository / unit-of-work data access
// layer. Repositories stage changes on their owning unit of work; nothing
// reaches the backing store until Commit, which also stamps audit fields.
package storage

import (
	"context"
	"time"
)

// Audit carries the timestamps and soft-delete flag maintained centrally at
// commit time. Every persisted entity embeds it.
type Audit struct {
	CreatedDate  time.Time `db:"created_date" json:"created_date"`
	ModifiedDate time.Time `db:"modified_date" json:"modified_date"`
	IsDeleted    bool      `db:"is_deleted" json:"is_deleted"`
}

// AuditFields lets embedding entities satisfy the Entity contract without
// boilerplate.
func (a *Audit) AuditFields() *Audit { return a }

// ID constrains entity identifier types to int64-based keys.
type ID interface {
	~int64
}

// Entity is the contract persisted types satisfy.
type Entity[I ID] interface {
	// TableName must be callable on a nil receiver.
	TableName() string
	EntityID() I
	SetEntityID(I)
	AuditFields() *Audit
}

// Repository provides data access for one entity type, bound to the unit of
// work that created it. Add, Update and Delete stage changes only.
type Repository[E Entity[I], I ID] interface {
	// GetByID returns the entity or a NOT_FOUND error.
	GetByID(ctx context.Context, id I) (E, error)

	// GetAll returns entities matching pred, or all when pred is nil.
	// The predicate is applied in memory; result order is unspecified.
	GetAll(ctx context.Context, pred func(E) bool) ([]E, error)

	// Add stages an insert.
	Add(e E)

	// Update stages a replace-by-id.
	Update(e E)

	// Delete stages a physical removal.
	Delete(e E)
}

// Op identifies a staged change kind.
type Op int

const (
	OpInsert Op = iota
	OpUpdate
	OpDelete
)

// Change is one staged mutation, handed to the backend at commit.
type Change struct {
	Op     Op
	Table  string
	Entity any // pointer to the entity struct, db-tagged
	ID     int64
	Assign func(int64) // set the generated key after insert
	Audit  *Audit
}

// Backend executes reads and applies staged changes. Implementations must
// apply all changes of one call atomically and must never clear a stored
// is_deleted flag on update.
type Backend interface {
	// Get loads the row with the given id into dest (a pointer to an entity
	// struct), returning a NOT_FOUND error when absent.
	Get(ctx context.Context, table string, dest any, id int64) error

	// Select loads every row of the table into dest (a pointer to a slice of
	// entity pointers).
	Select(ctx context.Context, table string, dest any) error

	// Apply executes the staged changes in one transaction and returns the
	// number of rows affected.
	Apply(ctx context.Context, changes []*Change) (int, error)
}
