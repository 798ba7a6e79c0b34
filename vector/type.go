package vector

import (
	"fmt"
	"strings"
)

// Type identifies the element width of a Vector. Its value doubles as the
// trailer byte of the binary encoding.
type Type uint8

const (
	// TypeFloat32 stores elements as IEEE 754 float32.
	TypeFloat32 Type = 1
	// TypeFloat64 stores elements as IEEE 754 float64.
	TypeFloat64 Type = 2
)

// Size returns the per-element byte size, or 0 for an unknown type.
func (t Type) Size() int {
	switch t {
	case TypeFloat32:
		return 4
	case TypeFloat64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether t is a known element type.
func (t Type) Valid() bool { return t.Size() != 0 }

func (t Type) String() string {
	switch t {
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseType resolves a type name as used in configuration and on the command
// line ("float32", "f32", "float64", "f64", ...).
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "float32", "f32", "32", "vector32":
		return TypeFloat32, nil
	case "float64", "f64", "64", "vector64":
		return TypeFloat64, nil
	default:
		return 0, fmt.Errorf("vector: unknown type %q", name)
	}
}
