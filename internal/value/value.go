// Package value defines the runtime constant representation shared by the
// bytecode regions and the emitter: a tagged union over the primitive kinds
// a compiled program can push onto the constants pool.
package value

import "fmt"

// Kind tags which field of a Value is meaningful.
type Kind byte

const (
	KindNil Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindType:
		return "type"
	default:
		return "unknown"
	}
}

// TypeDescriptor is a declared type carried as a first-class constant so the
// VM can allocate or typecheck variable slots at runtime. The emitter never
// inspects Name beyond carrying it through.
type TypeDescriptor struct {
	Name string
}

func (t TypeDescriptor) String() string { return t.Name }

// Value is the tagged union stored in a Region's constants pool. Only the
// field matching Kind is meaningful; values are immutable once pushed and
// are always copied by value.
type Value struct {
	Kind Kind
	I    int64
	F    float64
	S    string
	B    bool
	T    TypeDescriptor
}

func Int(i int64) Value              { return Value{Kind: KindInt, I: i} }
func Float(f float64) Value          { return Value{Kind: KindFloat, F: f} }
func String(s string) Value          { return Value{Kind: KindString, S: s} }
func Bool(b bool) Value              { return Value{Kind: KindBool, B: b} }
func Nil() Value                     { return Value{Kind: KindNil} }
func Type(name string) Value         { return Value{Kind: KindType, T: TypeDescriptor{Name: name}} }

// Equal reports whether two constants are the same value, used by the
// emitter's dedup-by-value interning cache.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindInt:
		return v.I == other.I
	case KindFloat:
		return v.F == other.F
	case KindString:
		return v.S == other.S
	case KindBool:
		return v.B == other.B
	case KindType:
		return v.T.Name == other.T.Name
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindNil:
		return "none"
	case KindInt:
		return fmt.Sprintf("%d", v.I)
	case KindFloat:
		return fmt.Sprintf("%g", v.F)
	case KindString:
		return fmt.Sprintf("%q", v.S)
	case KindBool:
		return fmt.Sprintf("%t", v.B)
	case KindType:
		return v.T.Name
	default:
		return "<invalid value>"
	}
}
