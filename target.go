package tween

import (
	"math"
	"reflect"
	"strings"
)

// Target is anything with named numeric properties a tween can read and
// write. The engine only borrows targets; it never creates or disposes them.
type Target interface {
	// Property returns the current value of key and whether the target has it.
	Property(key string) (float64, bool)
	// SetProperty writes v to key. Called only for keys Property reported.
	SetProperty(key string, v float64)
}

// Fields binds property names to float64 fields, the way a game object
// exposes its X, Y or Alpha to a tween:
//
//	tween.Fields{"x": &node.X, "y": &node.Y}
type Fields map[string]*float64

// Property implements Target.
func (f Fields) Property(key string) (float64, bool) {
	p, ok := f[key]
	if !ok || p == nil {
		return 0, false
	}
	return *p, true
}

// SetProperty implements Target.
func (f Fields) SetProperty(key string, v float64) {
	if p := f[key]; p != nil {
		*p = v
	}
}

// Values is a Target backed by a plain map.
type Values map[string]float64

// Property implements Target.
func (m Values) Property(key string) (float64, bool) {
	v, ok := m[key]
	return v, ok
}

// SetProperty implements Target.
func (m Values) SetProperty(key string, v float64) {
	m[key] = v
}

// structTarget reads and writes exported numeric struct fields by name.
type structTarget struct {
	v     reflect.Value
	index map[string]int // -1 caches a miss
}

// Struct returns a Target over the exported numeric fields of the struct
// ptr points to. Keys match field names exactly first, then
// case-insensitively, so "x" finds field X. Integer fields are written
// rounded. A non-pointer or non-struct argument yields a target without
// properties.
func Struct(ptr any) Target {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return &structTarget{index: map[string]int{}}
	}
	return &structTarget{v: v.Elem(), index: map[string]int{}}
}

func (s *structTarget) field(key string) (reflect.Value, bool) {
	if !s.v.IsValid() {
		return reflect.Value{}, false
	}
	i, ok := s.index[key]
	if !ok {
		i = s.lookup(key)
		s.index[key] = i
	}
	if i < 0 {
		return reflect.Value{}, false
	}
	return s.v.Field(i), true
}

func (s *structTarget) lookup(key string) int {
	t := s.v.Type()
	fallback := -1
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || !numericKind(f.Type.Kind()) {
			continue
		}
		if f.Name == key {
			return i
		}
		if fallback < 0 && strings.EqualFold(f.Name, key) {
			fallback = i
		}
	}
	return fallback
}

// Property implements Target.
func (s *structTarget) Property(key string) (float64, bool) {
	f, ok := s.field(key)
	if !ok {
		return 0, false
	}
	switch {
	case f.CanFloat():
		return f.Float(), true
	case f.CanInt():
		return float64(f.Int()), true
	case f.CanUint():
		return float64(f.Uint()), true
	}
	return 0, false
}

// SetProperty implements Target.
func (s *structTarget) SetProperty(key string, v float64) {
	f, ok := s.field(key)
	if !ok || !f.CanSet() {
		return
	}
	switch {
	case f.CanFloat():
		f.SetFloat(v)
	case f.CanInt():
		f.SetInt(int64(math.Round(v)))
	case f.CanUint():
		f.SetUint(uint64(math.Max(0, math.Round(v))))
	}
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
