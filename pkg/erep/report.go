package erep

import "strings"

// Report is a diagnostic trail: a message plus the child trails appended to it,
// in the order they were appended.
type Report struct {
	msg   string
	stack []Report
}

// EmptyReport returns the canonical empty trail. It carries no information and
// is used as the seed when folding optional trails together.
func EmptyReport() Report {
	return Report{}
}

// NewReport returns a trail with a single message and no children.
func NewReport[S ~string](msg S) Report {
	return Report{msg: string(msg)}
}

// Push returns a new trail with child appended after the existing children.
// The receiver's children are copied, so the result never shares backing
// storage with r.
func (r Report) Push(child Report) Report {
	stack := make([]Report, len(r.stack), len(r.stack)+1)
	copy(stack, r.stack)
	return Report{msg: r.msg, stack: append(stack, child)}
}

// PushOpt appends child when it is present and returns r unchanged otherwise.
func (r Report) PushOpt(child Option[Report]) Report {
	if c, ok := child.Get(); ok {
		return r.Push(c)
	}
	return r
}

// Message returns the trail's own message.
func (r Report) Message() string {
	return r.msg
}

// Children returns a copy of the child trails.
func (r Report) Children() []Report {
	if len(r.stack) == 0 {
		return nil
	}
	out := make([]Report, len(r.stack))
	copy(out, r.stack)
	return out
}

// Len returns the number of direct children.
func (r Report) Len() int {
	return len(r.stack)
}

// IsEmpty reports whether r is the canonical empty trail.
func (r Report) IsEmpty() bool {
	return r.msg == "" && len(r.stack) == 0
}

// Clone returns a deep copy of the whole tree.
func (r Report) Clone() Report {
	out := Report{msg: r.msg}
	if len(r.stack) > 0 {
		out.stack = make([]Report, len(r.stack))
		for i, c := range r.stack {
			out.stack[i] = c.Clone()
		}
	}
	return out
}

// String renders the tree one message per line, children indented by two
// spaces under their parent.
func (r Report) String() string {
	var b strings.Builder
	r.write(&b, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func (r Report) write(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if r.msg == "" {
		b.WriteString("(empty)")
	} else {
		b.WriteString(r.msg)
	}
	b.WriteByte('\n')
	for _, c := range r.stack {
		c.write(b, depth+1)
	}
}
