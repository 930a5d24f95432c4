package docdiff

// Op tags a single token in an alignment. The byte values double as the run
// codes in the patch format.
type Op byte

const (
	OpMatch  Op = 'M'
	OpInsert Op = 'I'
	OpDelete Op = 'D'
)

func (o Op) String() string {
	switch o {
	case OpMatch:
		return "Match"
	case OpInsert:
		return "Insert"
	case OpDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Operation is one token of the merged view.
type Operation struct {
	Type  Op
	Token string
}

// Result is the outcome of a single comparison. Ops is in emission order, which
// is also the reading order of the merged view.
type Result struct {
	Ops      []Operation
	Inserted int
	Deleted  int

	// Window is the lookahead used to produce Ops. It is 0 for results built by
	// Reference.
	Window int
}

func newResult(ops []Operation, window int) *Result {
	r := &Result{
		Ops:    ops,
		Window: window,
	}
	for _, op := range ops {
		switch op.Type {
		case OpInsert:
			r.Inserted++
		case OpDelete:
			r.Deleted++
		}
	}
	return r
}

// Added returns the inserted tokens in emission order. Duplicates are kept.
func (r *Result) Added() []string {
	return r.collect(OpInsert, 0, r.Inserted)
}

// Removed returns the deleted tokens in emission order. Duplicates are kept.
func (r *Result) Removed() []string {
	return r.collect(OpDelete, 0, r.Deleted)
}

// Old rebuilds the old token sequence from the Match and Delete operations.
func (r *Result) Old() []string {
	return r.collect(OpMatch, OpDelete, len(r.Ops)-r.Inserted)
}

// New rebuilds the new token sequence from the Match and Insert operations.
func (r *Result) New() []string {
	return r.collect(OpMatch, OpInsert, len(r.Ops)-r.Deleted)
}

// Equal reports whether the two sides had no differences.
func (r *Result) Equal() bool {
	return r.Inserted == 0 && r.Deleted == 0
}

func (r *Result) collect(a, b Op, n int) []string {
	out := make([]string, 0, n)
	for _, op := range r.Ops {
		if op.Type == a || (b != 0 && op.Type == b) {
			out = append(out, op.Token)
		}
	}
	return out
}
