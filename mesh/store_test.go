package mesh

import "testing"

func TestArenaReusesTombstonedSlots(t *testing.T) {
	a := newArena[int]()

	i0 := a.add()
	*a.at(i0) = 10
	i1 := a.add()
	*a.at(i1) = 20

	a.invalidate(i0)
	if a.valid(i0) {
		t.Fatalf("index %d should be invalid after invalidate", i0)
	}
	if got := a.validCount(); got != 1 {
		t.Fatalf("validCount = %d, want 1", got)
	}

	i2 := a.add()
	if i2 != i0 {
		t.Fatalf("add after invalidate = %d, want reused slot %d", i2, i0)
	}
	if got, _ := a.get(i2); got != 0 {
		t.Fatalf("reused slot should start zeroed, got %d", got)
	}
	if got := a.len(); got != 2 {
		t.Fatalf("len = %d, want 2 (no growth when reusing a freed slot)", got)
	}
}

func TestArenaForEachSkipsTombstones(t *testing.T) {
	a := newArena[int]()
	i0 := a.add()
	*a.at(i0) = 1
	i1 := a.add()
	*a.at(i1) = 2
	i2 := a.add()
	*a.at(i2) = 3

	a.invalidate(i1)

	var seen []int
	a.forEach(func(i Index, v *int) { seen = append(seen, *v) })

	if len(seen) != 2 {
		t.Fatalf("forEach visited %d elements, want 2", len(seen))
	}
	for _, v := range seen {
		if v == 2 {
			t.Fatalf("forEach visited tombstoned value 2")
		}
	}
}

func TestArenaInvalidateOutOfRangeIsNoOp(t *testing.T) {
	a := newArena[int]()
	a.invalidate(Index(5))
	a.invalidate(Index(-1))
	if got := a.validCount(); got != 0 {
		t.Fatalf("validCount = %d, want 0", got)
	}
}
