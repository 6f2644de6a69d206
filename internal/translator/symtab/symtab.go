package symtab

// The initial capacity of the bucket array.
const initialCapacity = 128

// Threshold on load factor over which we double the capacity of the table.
const loadFactorThreshold = 5

// entry is a key/value pair in the table. It doubles as a linked list node
// for its bucket's chain.
type entry struct {
	key   string
	value string
	next  *entry
}

// Table is a chained hash table mapping identifier names to their most
// recently synthesized code fragment. The translation engine uses it both as
// an is-defined oracle and as the source of the final declaration set.
type Table struct {
	buckets  []*entry
	capacity int
	numElems int
}

func New() *Table {
	return newWithCapacity(initialCapacity)
}

func newWithCapacity(capacity int) *Table {
	return &Table{
		buckets:  make([]*entry, capacity),
		capacity: capacity,
	}
}

func (t *Table) loadFactor() float64 {
	return float64(t.numElems) / float64(t.capacity)
}

// djbHash is the DJB hash function: http://www.cse.yorku.ca/~oz/hash.html.
func djbHash(key string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(key); i++ {
		h = h*33 + uint32(key[i])
	}
	return h
}

func (t *Table) bucketFor(key string) int {
	return int(djbHash(key) % uint32(t.capacity))
}

// resize doubles the capacity of the table and rehashes every entry into the
// fresh bucket array. Capacity never shrinks.
func (t *Table) resize() {
	old := t.buckets
	t.buckets = make([]*entry, t.capacity*2)
	t.capacity *= 2
	t.numElems = 0

	for _, cur := range old {
		for cur != nil {
			t.Set(cur.key, cur.value)
			cur = cur.next
		}
	}
}

// Set inserts a value with the given key, or updates the value in place if
// the key is already present. The resize check runs before the insert.
func (t *Table) Set(key, value string) {
	if t.loadFactor() > loadFactorThreshold {
		t.resize()
	}

	idx := t.bucketFor(key)
	for cur := t.buckets[idx]; cur != nil; cur = cur.next {
		if cur.key == key {
			cur.value = value
			return
		}
	}

	// New key: put the entry at the head of its bucket's chain.
	t.buckets[idx] = &entry{key: key, value: value, next: t.buckets[idx]}
	t.numElems++
}

// Remove unlinks the entry with the given key, if it exists. Deletions never
// trigger a shrink.
func (t *Table) Remove(key string) {
	idx := t.bucketFor(key)
	var prev *entry
	for cur := t.buckets[idx]; cur != nil; cur = cur.next {
		if cur.key == key {
			if prev != nil {
				prev.next = cur.next
			} else {
				t.buckets[idx] = cur.next
			}
			t.numElems--
			return
		}
		prev = cur
	}
}

// Get returns the value stored under key, and whether the key is present.
func (t *Table) Get(key string) (string, bool) {
	for cur := t.buckets[t.bucketFor(key)]; cur != nil; cur = cur.next {
		if cur.key == key {
			return cur.value, true
		}
	}
	return "", false
}

// Contains reports whether the table holds the given key.
func (t *Table) Contains(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Len returns the number of entries stored.
func (t *Table) Len() int {
	return t.numElems
}

// Capacity returns the current size of the bucket array.
func (t *Table) Capacity() int {
	return t.capacity
}

// Keys returns every key in bucket order. The order is unspecified and in
// particular is not insertion order; callers that need a stable enumeration
// must capture one snapshot and reuse it.
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.numElems)
	for _, cur := range t.buckets {
		for ; cur != nil; cur = cur.next {
			keys = append(keys, cur.key)
		}
	}
	return keys
}

// Each calls fn for every key/value pair in bucket order. The table must not
// be mutated during the walk.
func (t *Table) Each(fn func(key, value string)) {
	for _, cur := range t.buckets {
		for ; cur != nil; cur = cur.next {
			fn(cur.key, cur.value)
		}
	}
}
