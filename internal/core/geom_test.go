package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "missile dot inside tank",
			a:        RectAround(100, 500, 50, 40),
			b:        RectAround(110, 490, 4, 4),
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        NewRect(-20, -20, 10, 10),
			b:        NewRect(-15, -15, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(100, 500, 50, 40)

	if r.X != 75 || r.Y != 480 {
		t.Errorf("RectAround() top-left = (%d, %d), expected (75, 480)", r.X, r.Y)
	}
	if r.Right() != 125 || r.Bottom() != 520 {
		t.Errorf("RectAround() bottom-right = (%d, %d), expected (125, 520)", r.Right(), r.Bottom())
	}
}

func TestVec(t *testing.T) {
	v := Vec{X: 1.5, Y: -2}.Add(Vec{X: 10, Y: 3.75})
	if v.X != 11.5 || v.Y != 1.75 {
		t.Errorf("Add() = %+v, expected {11.5 1.75}", v)
	}

	x, y := Vec{X: 110.9, Y: 489.2}.Rounded()
	if x != 110 || y != 489 {
		t.Errorf("Rounded() = (%d, %d), expected (110, 489)", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{50, 30, 80, 50},
		{29, 30, 80, 30},
		{81, 30, 80, 80},
		{-903, -900, 900, -900},
		{900, -900, 900, 900},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(-1, -7) != -1 {
		t.Error("Max() should return the larger value")
	}
}
