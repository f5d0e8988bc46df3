package traverse

import (
	"reflect"
	"testing"
)

func Test_Degrees(t *testing.T) {
	arcs := []Arc{{0, 1}, {1, 2}, {1, 3}, {3, 3}}

	in, out := Degrees(5, arcs)

	if want := []int{0, 1, 1, 2, 0}; !reflect.DeepEqual(in, want) {
		t.Errorf("in = %v, want %v", in, want)
	}
	if want := []int{1, 2, 0, 1, 0}; !reflect.DeepEqual(out, want) {
		t.Errorf("out = %v, want %v", out, want)
	}
}

func Test_nodes_simple(t *testing.T) {
	ns := newNodes(4, []Arc{{0, 1}, {1, 2}, {2, 3}, {2, 0}})

	tests := []struct {
		node int
		want bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{3, false},
	}
	for _, tt := range tests {
		if got := ns.simple(tt.node); got != tt.want {
			t.Errorf("simple(%d) = %v, want %v", tt.node, got, tt.want)
		}
	}
}
