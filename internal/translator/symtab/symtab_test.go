package symtab

import (
	"fmt"
	"testing"
)

func TestSetGet(t *testing.T) {
	tab := New()

	tab.Set("x", "5.0")
	tab.Set("y", "x + 2.0")

	if got, ok := tab.Get("x"); !ok || got != "5.0" {
		t.Errorf("Get(x) = %q, %v; want %q, true", got, ok, "5.0")
	}
	if got, ok := tab.Get("y"); !ok || got != "x + 2.0" {
		t.Errorf("Get(y) = %q, %v; want %q, true", got, ok, "x + 2.0")
	}
	if _, ok := tab.Get("z"); ok {
		t.Errorf("Get(z) found a value for a key never inserted")
	}
	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}
}

func TestSetOverwrites(t *testing.T) {
	tab := New()

	tab.Set("x", "5.0")
	tab.Set("x", "1.0")

	if got, _ := tab.Get("x"); got != "1.0" {
		t.Errorf("Get(x) after overwrite = %q, want %q", got, "1.0")
	}
	if tab.Len() != 1 {
		t.Errorf("Len() after overwrite = %d, want 1", tab.Len())
	}
}

func TestContains(t *testing.T) {
	tab := New()
	if tab.Contains("x") {
		t.Errorf("Contains(x) on empty table = true")
	}
	tab.Set("x", "5.0")
	if !tab.Contains("x") {
		t.Errorf("Contains(x) after insert = false")
	}
}

func TestRemove(t *testing.T) {
	tab := newWithCapacity(2) // force chains so unlinking mid-chain is exercised

	keys := []string{"a", "b", "c", "d", "e"}
	for _, k := range keys {
		tab.Set(k, k)
	}
	tab.Remove("c")
	tab.Remove("never-inserted")

	if tab.Contains("c") {
		t.Errorf("Contains(c) after Remove = true")
	}
	if tab.Len() != len(keys)-1 {
		t.Errorf("Len() = %d, want %d", tab.Len(), len(keys)-1)
	}
	for _, k := range []string{"a", "b", "d", "e"} {
		if got, ok := tab.Get(k); !ok || got != k {
			t.Errorf("Get(%s) = %q, %v after unrelated Remove", k, got, ok)
		}
	}
}

// Any sequence of insertions, duplicates included, must leave every key
// mapped to its most recently inserted value, across however many resizes
// happened along the way.
func TestLastWriteWinsAcrossResizes(t *testing.T) {
	tab := newWithCapacity(4)

	const n = 500
	for i := 0; i < n; i++ {
		tab.Set(fmt.Sprintf("var%d", i), fmt.Sprintf("first%d", i))
	}
	for i := 0; i < n; i += 3 {
		tab.Set(fmt.Sprintf("var%d", i), fmt.Sprintf("second%d", i))
	}

	if tab.Len() != n {
		t.Fatalf("Len() = %d, want %d", tab.Len(), n)
	}
	for i := 0; i < n; i++ {
		want := fmt.Sprintf("first%d", i)
		if i%3 == 0 {
			want = fmt.Sprintf("second%d", i)
		}
		if got, ok := tab.Get(fmt.Sprintf("var%d", i)); !ok || got != want {
			t.Fatalf("Get(var%d) = %q, %v; want %q", i, got, ok, want)
		}
	}
}

// Capacity doubles when the load factor crosses the threshold, checked
// before each insert, and never on duplicate-key updates.
func TestResizeThreshold(t *testing.T) {
	tab := newWithCapacity(4)

	// 4 * 5 = 20 elements is exactly the threshold; the check runs before
	// the insert, so the 21st insert sees load factor 5.0 and does not
	// resize, while the 22nd sees 21/4 > 5 and doubles.
	for i := 0; i < 21; i++ {
		tab.Set(fmt.Sprintf("k%d", i), "v")
	}
	if tab.Capacity() != 4 {
		t.Fatalf("Capacity() after 21 inserts = %d, want 4", tab.Capacity())
	}

	tab.Set("k21", "v")
	if tab.Capacity() != 8 {
		t.Fatalf("Capacity() after 22 inserts = %d, want 8", tab.Capacity())
	}

	// Updates do not grow the element count, so no amount of them resizes.
	for i := 0; i < 100; i++ {
		tab.Set("k0", fmt.Sprintf("v%d", i))
	}
	if tab.Capacity() != 8 {
		t.Fatalf("Capacity() after duplicate updates = %d, want 8", tab.Capacity())
	}
}

func TestRemoveNeverShrinks(t *testing.T) {
	tab := newWithCapacity(4)
	for i := 0; i < 40; i++ {
		tab.Set(fmt.Sprintf("k%d", i), "v")
	}
	grown := tab.Capacity()
	for i := 0; i < 40; i++ {
		tab.Remove(fmt.Sprintf("k%d", i))
	}
	if tab.Len() != 0 {
		t.Fatalf("Len() = %d after removing everything", tab.Len())
	}
	if tab.Capacity() != grown {
		t.Fatalf("Capacity() shrank from %d to %d", grown, tab.Capacity())
	}
}

func TestKeysEnumeratesEverything(t *testing.T) {
	tab := newWithCapacity(4)
	want := map[string]bool{}
	for i := 0; i < 50; i++ {
		k := fmt.Sprintf("k%d", i)
		tab.Set(k, "v")
		want[k] = true
	}

	keys := tab.Keys()
	if len(keys) != len(want) {
		t.Fatalf("Keys() returned %d keys, want %d", len(keys), len(want))
	}
	for _, k := range keys {
		if !want[k] {
			t.Errorf("Keys() returned unexpected key %q", k)
		}
		delete(want, k)
	}
	for k := range want {
		t.Errorf("Keys() missed key %q", k)
	}
}

func TestEachMatchesKeys(t *testing.T) {
	tab := New()
	tab.Set("x", "1")
	tab.Set("y", "2")

	seen := map[string]string{}
	tab.Each(func(k, v string) { seen[k] = v })

	if len(seen) != 2 || seen["x"] != "1" || seen["y"] != "2" {
		t.Errorf("Each() visited %v", seen)
	}
}
