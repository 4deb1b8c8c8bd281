package erep

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var reportOpts = []cmp.Option{
	cmp.AllowUnexported(Report{}),
	cmpopts.EquateEmpty(),
}

func TestEmptyReport(t *testing.T) {
	t.Parallel()
	r := EmptyReport()
	if !r.IsEmpty() || r.Message() != "" || r.Len() != 0 {
		t.Fatalf("expected canonical empty report, got %+v", r)
	}
}

func TestNewReport(t *testing.T) {
	t.Parallel()

	type reason string
	r := NewReport(reason("disk full"))
	if r.Message() != "disk full" || r.Len() != 0 || r.IsEmpty() {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestReportPush_PreservesOrder(t *testing.T) {
	t.Parallel()

	c1, c2 := NewReport("first"), NewReport("second")

	stepwise := EmptyReport().Push(c1).Push(c2)
	want := Report{stack: []Report{c1, c2}}

	if diff := cmp.Diff(want, stepwise, reportOpts...); diff != "" {
		t.Fatal(diff)
	}
}

func TestReportPush_DoesNotAlias(t *testing.T) {
	t.Parallel()

	base := NewReport("root").Push(NewReport("a"))
	left := base.Push(NewReport("left"))
	right := base.Push(NewReport("right"))

	if base.Len() != 1 {
		t.Fatalf("receiver was modified: %v", base)
	}
	if left.Children()[1].Message() != "left" || right.Children()[1].Message() != "right" {
		t.Fatalf("siblings share storage: left=%v right=%v", left, right)
	}
}

func TestReportPushOpt(t *testing.T) {
	t.Parallel()

	r := NewReport("root")
	if diff := cmp.Diff(r, r.PushOpt(None[Report]()), reportOpts...); diff != "" {
		t.Fatal(diff)
	}

	got := r.PushOpt(Some(NewReport("child")))
	want := r.Push(NewReport("child"))
	if diff := cmp.Diff(want, got, reportOpts...); diff != "" {
		t.Fatal(diff)
	}
}

func TestReportChildren_ReturnsCopy(t *testing.T) {
	t.Parallel()

	r := EmptyReport().Push(NewReport("a"))
	children := r.Children()
	children[0] = NewReport("mutated")

	if r.Children()[0].Message() != "a" {
		t.Fatal("Children exposed internal storage")
	}
}

func TestReportClone(t *testing.T) {
	t.Parallel()

	r := NewReport("root").Push(NewReport("a").Push(NewReport("b")))
	c := r.Clone()

	if diff := cmp.Diff(r, c, reportOpts...); diff != "" {
		t.Fatal(diff)
	}
	c.stack[0].stack[0].msg = "changed"
	if r.stack[0].stack[0].msg != "b" {
		t.Fatal("Clone shares nested children")
	}
}

func TestReportString(t *testing.T) {
	t.Parallel()

	r := EmptyReport().
		Push(NewReport("parse failed").Push(NewReport("bad digit"))).
		Push(NewReport("lookup failed"))

	want := "(empty)\n  parse failed\n    bad digit\n  lookup failed"
	if got := r.String(); got != want {
		t.Fatalf("unexpected rendering:\n%s", cmp.Diff(want, got))
	}
}
