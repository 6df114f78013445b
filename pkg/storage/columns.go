package storage

import (
	"reflect"
	"sync"
)

var columnCache sync.Map // reflect.Type -> []string

// columnsOf lists the db-tagged columns of an entity struct, walking embedded
// structs the way sqlx does. The entity must be a struct pointer.
func columnsOf(entity any) []string {
	t := reflect.TypeOf(entity)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := columnCache.Load(t); ok {
		return cached.([]string)
	}
	cols := structColumns(t)
	columnCache.Store(t, cols)
	return cols
}

func structColumns(t reflect.Type) []string {
	var cols []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			cols = append(cols, structColumns(f.Type)...)
			continue
		}
		tag := f.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, tag)
	}
	return cols
}

// sliceColumns lists the columns of the element type of dest, which is a
// pointer to a slice of entity pointers.
func sliceColumns(dest any) []string {
	t := reflect.TypeOf(dest)
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	if cached, ok := columnCache.Load(t); ok {
		return cached.([]string)
	}
	cols := structColumns(t)
	columnCache.Store(t, cols)
	return cols
}

// withoutColumn returns cols minus the named column.
func withoutColumn(cols []string, name string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if c != name {
			out = append(out, c)
		}
	}
	return out
}
