package vec

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: -2}
	b := Vec2{X: 1, Y: 5}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 3}) {
		t.Errorf("Add: ожидалось {4,3}, получено %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: -7}) {
		t.Errorf("Sub: ожидалось {2,-7}, получено %v", got)
	}
	if got := a.Abs(); got != (Vec2{X: 3, Y: 2}) {
		t.Errorf("Abs: ожидалось {3,2}, получено %v", got)
	}
	if got := a.Sign(); got != (Vec2{X: 1, Y: -1}) {
		t.Errorf("Sign: ожидалось {1,-1}, получено %v", got)
	}
	if got := (Vec2{}).Sign(); got != (Vec2{}) {
		t.Errorf("Sign нуля: ожидалось {0,0}, получено %v", got)
	}
}

func TestVec2DistanceTo(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 3, Y: 4}

	if got := a.DistanceTo(b); got != 5.0 {
		t.Errorf("DistanceTo: ожидалось 5.0, получено %f", got)
	}
	if got := a.DistanceTo(a); got != 0.0 {
		t.Errorf("DistanceTo самого себя: ожидалось 0, получено %f", got)
	}
}

func TestVec2MapKey(t *testing.T) {
	m := map[Vec2]string{
		{X: 1, Y: 2}: "a",
	}
	if m[Vec2{X: 1, Y: 2}] != "a" {
		t.Error("Vec2 должен работать ключом map по значению")
	}
}
