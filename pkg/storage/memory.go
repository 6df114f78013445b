package storage

import (
	"context"
	"reflect"
	"sort"
	"sync"
)

// MemoryBackend is a map-backed Backend used by tests and by local bootstrap
// runs that have no database. Keys auto-increment per table.
type MemoryBackend struct {
	mu     sync.Mutex
	tables map[string]*memTable
}

type memTable struct {
	rows map[int64]any
	seq  int64
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{tables: make(map[string]*memTable)}
}

type auditHolder interface {
	AuditFields() *Audit
}

func (m *MemoryBackend) Get(ctx context.Context, table string, dest any, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.tables[table]
	if t == nil {
		return ErrNotFound().WithDetail("table", table).WithDetail("id", id)
	}
	stored, ok := t.rows[id]
	if !ok {
		return ErrNotFound().WithDetail("table", table).WithDetail("id", id)
	}
	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(stored).Elem())
	return nil
}

func (m *MemoryBackend) Select(ctx context.Context, table string, dest any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	slice := reflect.ValueOf(dest).Elem()
	t := m.tables[table]
	if t == nil {
		return nil
	}

	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		slice.Set(reflect.Append(slice, reflect.ValueOf(copyEntity(t.rows[id]))))
	}
	return nil
}

func (m *MemoryBackend) Apply(ctx context.Context, changes []*Change) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Validate first so a failing batch leaves the store untouched.
	for _, c := range changes {
		if c.Op == OpInsert {
			continue
		}
		t := m.tables[c.Table]
		if t == nil {
			return 0, ErrNotFound().WithDetail("table", c.Table).WithDetail("id", c.ID)
		}
		if _, ok := t.rows[c.ID]; !ok {
			return 0, ErrNotFound().WithDetail("table", c.Table).WithDetail("id", c.ID)
		}
	}

	for _, c := range changes {
		t := m.tables[c.Table]
		if t == nil {
			t = &memTable{rows: make(map[int64]any)}
			m.tables[c.Table] = t
		}

		switch c.Op {
		case OpInsert:
			id := c.ID
			if id == 0 {
				t.seq++
				id = t.seq
			} else if id > t.seq {
				t.seq = id
			}
			if c.Assign != nil {
				c.Assign(id)
			}
			t.rows[id] = copyEntity(c.Entity)

		case OpUpdate:
			if t.rows[c.ID].(auditHolder).AuditFields().IsDeleted {
				c.Audit.IsDeleted = true
			}
			t.rows[c.ID] = copyEntity(c.Entity)

		case OpDelete:
			delete(t.rows, c.ID)
		}
	}
	return len(changes), nil
}

// Seed inserts an entity directly, bypassing staging. Intended for reference
// data in tests and local bootstrap.
func (m *MemoryBackend) Seed(e any) {
	holder := e.(interface {
		TableName() string
		AuditFields() *Audit
	})

	m.mu.Lock()
	defer m.mu.Unlock()

	table := holder.TableName()
	t := m.tables[table]
	if t == nil {
		t = &memTable{rows: make(map[int64]any)}
		m.tables[table] = t
	}

	id := entityKey(e)
	if id == 0 {
		t.seq++
		id = t.seq
		setEntityKey(e, id)
	} else if id > t.seq {
		t.seq = id
	}
	t.rows[id] = copyEntity(e)
}

func copyEntity(e any) any {
	v := reflect.ValueOf(e).Elem()
	cp := reflect.New(v.Type())
	cp.Elem().Set(v)
	return cp.Interface()
}

func entityKey(e any) int64 {
	return reflect.ValueOf(e).Elem().FieldByName("ID").Int()
}

func setEntityKey(e any, id int64) {
	reflect.ValueOf(e).Elem().FieldByName("ID").SetInt(id)
}
