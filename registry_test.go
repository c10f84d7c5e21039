package sable

import "testing"

func TestRegistryPutGetRemove(t *testing.T) {
	r := newRegistry[int]()
	r.put("a", 1)
	r.put("b", 2)

	if v, ok := r.get("a"); !ok || v != 1 {
		t.Errorf("get(a) = %d, %v, want 1, true", v, ok)
	}
	if !r.has("b") {
		t.Error("has(b) = false")
	}
	if r.len() != 2 {
		t.Errorf("len = %d, want 2", r.len())
	}

	if !r.remove("a") {
		t.Error("remove(a) = false for present key")
	}
	if r.remove("a") {
		t.Error("remove(a) = true for absent key")
	}
	if r.has("a") {
		t.Error("removed key still present")
	}
}

func TestRegistryPutOverwrites(t *testing.T) {
	r := newRegistry[int]()
	r.put("a", 1)
	r.put("a", 2)
	if v, _ := r.get("a"); v != 2 {
		t.Errorf("get(a) = %d, want 2", v)
	}
	if r.len() != 1 {
		t.Errorf("len = %d, want 1", r.len())
	}
}

func TestRegistryClearAndEach(t *testing.T) {
	r := newRegistry[string]()
	r.put("x", "1")
	r.put("y", "2")

	seen := map[string]string{}
	r.each(func(name, v string) { seen[name] = v })
	if len(seen) != 2 || seen["x"] != "1" || seen["y"] != "2" {
		t.Errorf("each visited %v", seen)
	}

	r.clear()
	if r.len() != 0 {
		t.Errorf("len = %d after clear, want 0", r.len())
	}
}
