package reorder

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Point{X: 25, Y: 40}, true},
		{"top-left corner", Point{X: 10, Y: 20}, true},
		{"bottom-right corner", Point{X: 40, Y: 60}, true},
		{"on right edge", Point{X: 40, Y: 30}, true},
		{"on bottom edge", Point{X: 20, Y: 60}, true},
		{"left of box", Point{X: 9, Y: 40}, false},
		{"right of box", Point{X: 41, Y: 40}, false},
		{"above box", Point{X: 25, Y: 19}, false},
		{"below box", Point{X: 25, Y: 61}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%+v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}
