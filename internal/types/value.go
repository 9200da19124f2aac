package types

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Kind identifies which member of the Value union is populated.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBytes
	KindTime
	KindUUID
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindBytes:  "bytes",
	KindTime:   "time",
	KindUUID:   "uuid",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a typed scalar bound to a placeholder in rendered SQL.
// The zero Value is NULL. Values are immutable once constructed.
type Value struct {
	t    time.Time
	s    string
	b    []byte
	i    int64
	f    float64
	u    uuid.UUID
	kind Kind
}

// Null returns the SQL NULL value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(v bool) Value {
	if v {
		return Value{kind: KindBool, i: 1}
	}
	return Value{kind: KindBool}
}

// Int wraps a signed integer.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float wraps a floating point number.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String wraps a string.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Bytes wraps a byte sequence. The input is copied so later writes to it
// do not leak into the Value. A nil slice becomes NULL.
func Bytes(v []byte) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: KindBytes, b: bytes.Clone(v)}
}

// Time wraps a timestamp.
func Time(v time.Time) Value { return Value{kind: KindTime, t: v} }

// UUID wraps a UUID.
func UUID(v uuid.UUID) Value { return Value{kind: KindUUID, u: v} }

// ValueOf converts a Go primitive into a Value.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return uintValue(x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return String(x), nil
	case []byte:
		return Bytes(x), nil
	case time.Time:
		return Time(x), nil
	case uuid.UUID:
		return UUID(x), nil
	case *string:
		if x == nil {
			return Null(), nil
		}
		return String(*x), nil
	case *int64:
		if x == nil {
			return Null(), nil
		}
		return Int(*x), nil
	case *int:
		if x == nil {
			return Null(), nil
		}
		return Int(int64(*x)), nil
	case *bool:
		if x == nil {
			return Null(), nil
		}
		return Bool(*x), nil
	case *float64:
		if x == nil {
			return Null(), nil
		}
		return Float(*x), nil
	case *time.Time:
		if x == nil {
			return Null(), nil
		}
		return Time(*x), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

func uintValue(v uint64) (Value, error) {
	if v > math.MaxInt64 {
		return Value{}, fmt.Errorf("unsigned value %d overflows int64", v)
	}
	return Int(int64(v)), nil
}

// MustValueOf is like ValueOf but panics on unsupported types.
func MustValueOf(v any) Value {
	val, err := ValueOf(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Kind returns the populated member of the union.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Any returns the Go value a database driver expects for v.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.i != 0
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBytes:
		return bytes.Clone(v.b)
	case KindTime:
		return v.t
	case KindUUID:
		return v.u.String()
	default:
		return nil
	}
}

// Int64 returns the integer payload and whether v holds an integer.
func (v Value) Int64() (int64, bool) { return v.i, v.kind == KindInt }

// Equal reports whether two values hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool, KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindString:
		return v.s == o.s
	case KindBytes:
		return bytes.Equal(v.b, o.b)
	case KindTime:
		return v.t.Equal(o.t)
	case KindUUID:
		return v.u == o.u
	}
	return false
}

// String renders v for debugging. It is not SQL-safe.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindBool:
		return strconv.FormatBool(v.i != 0)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindBytes:
		return fmt.Sprintf("x'%x'", v.b)
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	case KindUUID:
		return v.u.String()
	}
	return v.kind.String()
}

// Values is an ordered parameter list, positionally matched to placeholders.
type Values []Value

// Args converts the list into driver arguments.
func (vs Values) Args() []any {
	args := make([]any, len(vs))
	for i, v := range vs {
		args[i] = v.Any()
	}
	return args
}

// Equal reports element-wise equality.
func (vs Values) Equal(o Values) bool {
	if len(vs) != len(o) {
		return false
	}
	for i := range vs {
		if !vs[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the list.
func (vs Values) Clone() Values {
	if vs == nil {
		return nil
	}
	out := make(Values, len(vs))
	copy(out, vs)
	return out
}
