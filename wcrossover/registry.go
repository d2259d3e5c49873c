package wcrossover

// requireSameLength panics if a and b differ in length. A mismatch here
// is a caller programming error, not malformed input: every weight
// vector passed to an operator is expected to already be sized to the
// instance's points number.
func requireSameLength(a, b []int64) {
	if len(a) != len(b) {
		panic("wcrossover: mismatched weight vector lengths")
	}
}

var constructors = map[string]func() Operator{
	"reset":      func() Operator { return &resetOp{} },
	"keep":       func() Operator { return &keepOp{} },
	"average":    func() Operator { return &averageOp{} },
	"mix_random": func() Operator { return &mixRandomOp{} },
	"add":        func() Operator { return &addOp{} },
	"difference": func() Operator { return &differenceOp{} },
	"max":        func() Operator { return &maxOp{} },
	"min":        func() Operator { return &minOp{} },
	"minmax":     func() Operator { return &minmaxOp{} },
	"shuffle":    func() Operator { return &shuffleOp{} },
}

// Get resolves name to an Operator.
func (r *Registry) Get(name string) (Operator, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, errUnknownOperator(name)
	}
	return ctor(), nil
}
