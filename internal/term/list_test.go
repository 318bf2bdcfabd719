package term

import "testing"

func TestNewListRoundTrip(t *testing.T) {
	l := NewList(NewAtom("a"), NewAtom("b"), NewAtom("c"))
	elems, ok := ProperListElements(l)
	if !ok {
		t.Fatal("expected a proper list")
	}
	if len(elems) != 3 {
		t.Fatalf("got %d elements, want 3", len(elems))
	}
	for i, name := range []string{"a", "b", "c"} {
		if a, ok := elems[i].(*Atom); !ok || a.Name != name {
			t.Errorf("element %d = %v, want %s", i, elems[i], name)
		}
	}
}

func TestEmptyList(t *testing.T) {
	if !IsEmptyList(NewList()) {
		t.Error("NewList() should be the empty list")
	}
	elems, ok := ProperListElements(EmptyList())
	if !ok || len(elems) != 0 {
		t.Errorf("got %v, %v, want empty slice, true", elems, ok)
	}
}

func TestIsList(t *testing.T) {
	if !IsList(EmptyList()) {
		t.Error("[] is a proper list")
	}
	if !IsList(NewList(NewAtom("a"), NewAtom("b"))) {
		t.Error("[a, b] is a proper list")
	}
	if IsList(NewListWithTail([]Term{NewAtom("a")}, NewVariable("T"))) {
		t.Error("[a|T] is not a proper list")
	}
	if IsList(NewAtom("a")) {
		t.Error("an atom is not a list")
	}
}

func TestListLength(t *testing.T) {
	if n, ok := ListLength(NewList(NewInt(1), NewInt(2), NewInt(3))); !ok || n != 3 {
		t.Errorf("got %d, %v, want 3, true", n, ok)
	}
	if n, ok := ListLength(EmptyList()); !ok || n != 0 {
		t.Errorf("got %d, %v, want 0, true", n, ok)
	}
	if _, ok := ListLength(NewListWithTail([]Term{NewInt(1)}, NewVariable("T"))); ok {
		t.Error("a partial list has no length")
	}
}

func TestPartialListIsNotProper(t *testing.T) {
	tail := NewVariable("T")
	partial := NewListWithTail([]Term{NewAtom("a")}, tail)
	if _, ok := ProperListElements(partial); ok {
		t.Error("a list with a variable tail should not be reported as proper")
	}
}

func TestListStringWithTail(t *testing.T) {
	tail := NewVariable("T")
	partial := NewListWithTail([]Term{NewAtom("a"), NewAtom("b")}, tail)
	if got, want := partial.String(), "[a, b|"+tail.String()+"]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
