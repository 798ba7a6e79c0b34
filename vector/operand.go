package vector

// Operand is a distance argument: either a decoded vector, whose type is
// fixed, or a text literal, which has no type until it is paired.
type Operand struct {
	vec  *Vector
	text string
}

// VectorOperand wraps a decoded vector.
func VectorOperand(v *Vector) Operand { return Operand{vec: v} }

// TextOperand wraps an unparsed text literal.
func TextOperand(text string) Operand { return Operand{text: text} }

// Resolve returns the operand as a vector. Text literals are parsed as typ;
// decoded vectors keep their own type.
func (o Operand) Resolve(typ Type) (*Vector, error) {
	if o.vec != nil {
		return o.vec, nil
	}
	return ParseText(o.text, typ)
}

// ResolvePair resolves two operands to a common type: a text literal adopts
// the type of a decoded partner, and two literals use fallback. Two decoded
// vectors are returned as is, so a type mismatch surfaces in the distance.
func ResolvePair(x, y Operand, fallback Type) (*Vector, *Vector, error) {
	typ := fallback
	switch {
	case x.vec != nil:
		typ = x.vec.Type()
	case y.vec != nil:
		typ = y.vec.Type()
	}
	a, err := x.Resolve(typ)
	if err != nil {
		return nil, nil, err
	}
	b, err := y.Resolve(typ)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
