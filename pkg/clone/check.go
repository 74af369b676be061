package clone

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var timeType = reflect.TypeFor[time.Time]()

type visit struct {
	ptr uintptr
	typ reflect.Type
}

// walker tracks the reference values on the current path from the root.
// Shared references on different branches are fine; only a reference that
// contains itself is a cycle.
type walker struct {
	path map[visit]struct{}
}

func check(v reflect.Value) error {
	w := &walker{path: make(map[visit]struct{})}
	return w.walk(v, "$")
}

func (w *walker) enter(v reflect.Value, at string) (func(), error) {
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if _, ok := w.path[key]; ok {
		return nil, fmt.Errorf("%w at %s", ErrCycle, at)
	}
	w.path[key] = struct{}{}
	return func() { delete(w.path, key) }, nil
}

func (w *walker) walk(v reflect.Value, at string) error {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return nil
		}
		return fmt.Errorf("%w: %s at %s", ErrUnsupportedType, v.Type(), at)

	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		leave, err := w.enter(v, at)
		if err != nil {
			return err
		}
		defer leave()
		return w.walk(v.Elem(), at)

	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return w.walk(v.Elem(), at)

	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		leave, err := w.enter(v, at)
		if err != nil {
			return err
		}
		defer leave()

		iter := v.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key())
			if err := w.walk(iter.Key(), at+"["+k+"]<key>"); err != nil {
				return err
			}
			if err := w.walk(iter.Value(), at+"."+k); err != nil {
				return err
			}
		}
		return nil

	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		if v.Len() > 0 {
			leave, err := w.enter(v, at)
			if err != nil {
				return err
			}
			defer leave()
		}
		for i := 0; i < v.Len(); i++ {
			if err := w.walk(v.Index(i), at+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		return nil

	case reflect.Array:
		// Arrays are copied by value, which would share any references inside.
		if v.Len() > 0 && holdsReferences(v.Type().Elem(), nil) {
			return fmt.Errorf("%w: %s holds references at %s", ErrUnsupportedType, v.Type(), at)
		}
		return nil

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if err := w.walk(v.Field(i), at+"."+f.Name); err != nil {
				return err
			}
		}
		return nil

	default:
		return nil
	}
}

// holdsReferences reports whether values of t can point at shared memory.
func holdsReferences(t reflect.Type, seen map[reflect.Type]bool) bool {
	if t == timeType {
		return false
	}

	switch t.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	case reflect.Array:
		return holdsReferences(t.Elem(), seen)
	case reflect.Struct:
		if seen == nil {
			seen = make(map[reflect.Type]bool)
		}
		if seen[t] {
			return false
		}
		seen[t] = true
		for i := 0; i < t.NumField(); i++ {
			if holdsReferences(t.Field(i).Type, seen) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
