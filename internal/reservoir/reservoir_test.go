package reservoir

import (
	"bytes"
	"testing"
)

func TestRestore_Empty(t *testing.T) {
	var rv Reservoir
	dst := make([]byte, 8)

	if !rv.Restore(0, dst) {
		t.Error("Restore(0) on empty reservoir should succeed")
	}
	if rv.Restore(1, dst) {
		t.Error("Restore(1) on empty reservoir should fail")
	}
}

func TestPushRestore_Roundtrip(t *testing.T) {
	var rv Reservoir
	rv.Push([]byte{1, 2, 3, 4, 5})

	if rv.Held() != 5 {
		t.Fatalf("Held = %d, want 5", rv.Held())
	}
	dst := make([]byte, 3)
	if !rv.Restore(3, dst) {
		t.Fatal("Restore(3) failed")
	}
	if !bytes.Equal(dst, []byte{3, 4, 5}) {
		t.Errorf("Restore(3) = %v, want [3 4 5]", dst)
	}
}

func TestRestore_DeeperThanHeld(t *testing.T) {
	var rv Reservoir
	rv.Push([]byte{1, 2, 3})

	dst := []byte{9, 9, 9, 9}
	if rv.Restore(4, dst) {
		t.Error("Restore deeper than held history should fail")
	}
	if !bytes.Equal(dst, []byte{9, 9, 9, 9}) {
		t.Error("failed Restore must leave dst untouched")
	}
}

func TestPush_CapsAtCapacity(t *testing.T) {
	var rv Reservoir
	big := make([]byte, Capacity+100)
	for i := range big {
		big[i] = byte(i)
	}
	rv.Push(big)

	if rv.Held() != Capacity {
		t.Fatalf("Held = %d, want %d", rv.Held(), Capacity)
	}
	dst := make([]byte, Capacity)
	if !rv.Restore(Capacity, dst) {
		t.Fatal("Restore(Capacity) failed")
	}
	if !bytes.Equal(dst, big[100:]) {
		t.Error("reservoir should hold the newest Capacity bytes")
	}
}

func TestPush_Accumulates(t *testing.T) {
	var rv Reservoir
	chunk := make([]byte, 200)
	for i := range chunk {
		chunk[i] = byte(i)
	}
	rv.Push(chunk)
	rv.Push(chunk)
	rv.Push(chunk) // 600 pushed, oldest 89 discarded

	if rv.Held() != Capacity {
		t.Fatalf("Held = %d, want %d", rv.Held(), Capacity)
	}
	dst := make([]byte, 200)
	if !rv.Restore(200, dst) {
		t.Fatal("Restore(200) failed")
	}
	if !bytes.Equal(dst, chunk) {
		t.Error("newest chunk not preserved across pushes")
	}
}

func TestReset(t *testing.T) {
	var rv Reservoir
	rv.Push([]byte{1, 2, 3})
	rv.Reset()

	if rv.Held() != 0 {
		t.Errorf("Held after Reset = %d, want 0", rv.Held())
	}
	if rv.Restore(1, make([]byte, 1)) {
		t.Error("Restore(1) after Reset should fail")
	}
}
