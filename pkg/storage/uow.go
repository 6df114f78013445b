package storage

import (
	"context"
	"reflect"
	"time"
)

// UnitOfWork owns the persistence session for one logical request: it hands
// out repositories bound to itself, accumulates their staged changes and
// commits them atomically with audit stamping.
type UnitOfWork struct {
	backend Backend
	repos   map[string]any
	staged  []*Change
	now     func() time.Time
}

// SessionFactory opens a fresh UnitOfWork. Services hold one of these and
// open a session per operation.
type SessionFactory func() *UnitOfWork

// NewSessionFactory binds a backend and options into a SessionFactory.
func NewSessionFactory(backend Backend, opts ...Option) SessionFactory {
	return func() *UnitOfWork {
		return NewUnitOfWork(backend, opts...)
	}
}

// Option configures a UnitOfWork.
type Option func(*UnitOfWork)

// WithClock overrides the audit timestamp source.
func WithClock(now func() time.Time) Option {
	return func(u *UnitOfWork) { u.now = now }
}

func NewUnitOfWork(backend Backend, opts ...Option) *UnitOfWork {
	u := &UnitOfWork{
		backend: backend,
		repos:   make(map[string]any),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// RepositoryFor returns the unit of work's repository for E, creating it
// lazily and caching it so repeated calls share the same session.
func RepositoryFor[E Entity[I], I ID](u *UnitOfWork) Repository[E, I] {
	var zero E
	table := zero.TableName()
	if cached, ok := u.repos[table]; ok {
		return cached.(Repository[E, I])
	}
	repo := &repository[E, I]{uow: u, table: table}
	u.repos[table] = Repository[E, I](repo)
	return repo
}

// Pending returns the number of staged, uncommitted changes.
func (u *UnitOfWork) Pending() int { return len(u.staged) }

// Commit stamps audit fields on every staged change and applies them all
// atomically. It returns the number of rows affected. On failure nothing is
// applied and the staged set is preserved so the caller can inspect it.
func (u *UnitOfWork) Commit(ctx context.Context) (int, error) {
	if len(u.staged) == 0 {
		return 0, nil
	}

	now := u.now()
	for _, c := range u.staged {
		switch c.Op {
		case OpInsert:
			c.Audit.CreatedDate = now
			c.Audit.ModifiedDate = now
		case OpUpdate:
			c.Audit.ModifiedDate = now
		}
	}

	n, err := u.backend.Apply(ctx, u.staged)
	if err != nil {
		return 0, err
	}
	u.staged = nil
	return n, nil
}

func (u *UnitOfWork) stage(c *Change) {
	u.staged = append(u.staged, c)
}

type repository[E Entity[I], I ID] struct {
	uow   *UnitOfWork
	table string
}

func (r *repository[E, I]) GetByID(ctx context.Context, id I) (E, error) {
	e := newEntity[E]()
	if err := r.uow.backend.Get(ctx, r.table, e, int64(id)); err != nil {
		var zero E
		return zero, err
	}
	return e, nil
}

func (r *repository[E, I]) GetAll(ctx context.Context, pred func(E) bool) ([]E, error) {
	var all []E
	if err := r.uow.backend.Select(ctx, r.table, &all); err != nil {
		return nil, err
	}
	if pred == nil {
		return all, nil
	}
	matched := make([]E, 0, len(all))
	for _, e := range all {
		if pred(e) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (r *repository[E, I]) Add(e E) {
	r.uow.stage(&Change{
		Op:     OpInsert,
		Table:  r.table,
		Entity: e,
		ID:     int64(e.EntityID()),
		Assign: func(id int64) { e.SetEntityID(I(id)) },
		Audit:  e.AuditFields(),
	})
}

func (r *repository[E, I]) Update(e E) {
	r.uow.stage(&Change{
		Op:     OpUpdate,
		Table:  r.table,
		Entity: e,
		ID:     int64(e.EntityID()),
		Audit:  e.AuditFields(),
	})
}

func (r *repository[E, I]) Delete(e E) {
	r.uow.stage(&Change{
		Op:     OpDelete,
		Table:  r.table,
		Entity: e,
		ID:     int64(e.EntityID()),
		Audit:  e.AuditFields(),
	})
}

// newEntity allocates a fresh entity value for E, which is a pointer type.
func newEntity[E any]() E {
	var zero E
	t := reflect.TypeOf(zero)
	return reflect.New(t.Elem()).Interface().(E)
}
