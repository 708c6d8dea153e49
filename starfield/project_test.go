package starfield

import "testing"

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		star   Star
		x, y   int
		wantOK bool
	}{
		{name: "centre", star: Star{X: 0, Y: 0, Z: 1}, x: HalfWidth, y: HalfHeight, wantOK: true},
		{name: "divide", star: Star{X: 320, Y: -200, Z: 4}, x: 240, y: 50, wantOK: true},
		{name: "truncate positive", star: Star{X: 7, Y: 7, Z: 2}, x: 163, y: 103, wantOK: true},
		{name: "truncate negative toward zero", star: Star{X: -7, Y: -7, Z: 2}, x: 157, y: 97, wantOK: true},
		{name: "off screen", star: Star{X: 5119, Y: -3200, Z: 1}, x: 5279, y: -3100, wantOK: true},
		{name: "at viewer", star: Star{X: 10, Y: 10, Z: 0}},
		{name: "behind viewer", star: Star{X: 10, Y: 10, Z: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := Project(tc.star)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if x != tc.x || y != tc.y {
				t.Fatalf("Project(%+v) = (%d, %d), want (%d, %d)", tc.star, x, y, tc.x, tc.y)
			}
		})
	}
}

func TestProjectMatchesDivideForAllDepths(t *testing.T) {
	rng := newRand(3)
	for i := 0; i < 10000; i++ {
		s := Star{
			X: int16(rng.IntN(spreadX) - spreadX/2),
			Y: int16(rng.IntN(spreadY) - spreadY/2),
			Z: int16(rng.IntN(ZMax+2) - 2),
		}
		x, y, ok := Project(s)
		if ok != (s.Z > 0) {
			t.Fatalf("Project(%+v) ok = %v", s, ok)
		}
		if !ok {
			continue
		}
		if want := HalfWidth + int(s.X)/int(s.Z); x != want {
			t.Fatalf("Project(%+v) x = %d, want %d", s, x, want)
		}
		if want := HalfHeight + int(s.Y)/int(s.Z); y != want {
			t.Fatalf("Project(%+v) y = %d, want %d", s, y, want)
		}
	}
}
