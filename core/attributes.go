package core

// SetDiscreteAttribute stores an integer-valued per-vertex attribute
// under name, replacing any previous value. The vector is copied.
// Returns ErrAttrLength when len(values) != Size().
// Complexity: O(n).
func (g *Graph) SetDiscreteAttribute(name string, values []int) error {
	if len(values) != g.n {
		return ErrAttrLength
	}
	g.discrete[name] = append([]int(nil), values...)

	return nil
}

// DiscreteAttribute returns a copy of the named integer attribute.
// Returns ErrAttrNotFound when the name was never set.
// Complexity: O(n).
func (g *Graph) DiscreteAttribute(name string) ([]int, error) {
	vals, ok := g.discrete[name]
	if !ok {
		return nil, ErrAttrNotFound
	}

	return append([]int(nil), vals...), nil
}

// SetContinuousAttribute stores a real-valued per-vertex attribute
// under name, replacing any previous value. The vector is copied.
// Returns ErrAttrLength when len(values) != Size().
// Complexity: O(n).
func (g *Graph) SetContinuousAttribute(name string, values []float64) error {
	if len(values) != g.n {
		return ErrAttrLength
	}
	g.continuous[name] = append([]float64(nil), values...)

	return nil
}

// ContinuousAttribute returns a copy of the named real attribute.
// Returns ErrAttrNotFound when the name was never set.
// Complexity: O(n).
func (g *Graph) ContinuousAttribute(name string) ([]float64, error) {
	vals, ok := g.continuous[name]
	if !ok {
		return nil, ErrAttrNotFound
	}

	return append([]float64(nil), vals...), nil
}
