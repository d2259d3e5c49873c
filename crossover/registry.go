package crossover

// constructors maps each stable operator identifier to a function
// building it against a Registry's captured instance/engine, mirroring
// the "registry mapping name to constructor closure" shape used
// throughout the teacher's builder package for its own named variants.
var constructors = map[string]func(*Registry) Operator{
	"identity": func(r *Registry) Operator {
		return &identityOp{}
	},
	"merge": func(r *Registry) Operator {
		return &mergeOp{}
	},
	"greedy_merge": func(r *Registry) Operator {
		return &greedyMergeOp{instance: r.instance}
	},
	"subproblem_random": func(r *Registry) Operator {
		return &subproblemOp{instance: r.instance, finisher: finisherRandom}
	},
	"extended_subproblem_random": func(r *Registry) Operator {
		return &subproblemOp{instance: r.instance, finisher: finisherRandom, extended: true}
	},
	"subproblem_greedy": func(r *Registry) Operator {
		return &subproblemOp{instance: r.instance, finisher: finisherGreedy}
	},
	"extended_subproblem_greedy": func(r *Registry) Operator {
		return &subproblemOp{instance: r.instance, finisher: finisherGreedy, extended: true}
	},
	"subproblem_rwls": func(r *Registry) Operator {
		return &subproblemOp{instance: r.instance, finisher: finisherRWLS, engine: r.engine, rwlsBudget: r.rwlsBudget}
	},
	"extended_subproblem_rwls": func(r *Registry) Operator {
		return &subproblemOp{instance: r.instance, finisher: finisherRWLS, engine: r.engine, rwlsBudget: r.rwlsBudget, extended: true}
	},
}

// Get resolves name to an Operator bound to this Registry's instance.
func (r *Registry) Get(name string) (Operator, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, errUnknownOperator(name)
	}
	op := ctor(r)
	if sub, ok := op.(*subproblemOp); ok && sub.finisher == finisherRWLS && sub.engine == nil {
		return nil, errEngineRequired(name)
	}
	return op, nil
}
