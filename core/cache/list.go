package cache

// Arena handles of the two sentinels.
const (
	head = 0
	tail = 1
)

// maxPrealloc bounds up-front allocation for very large capacities.
const maxPrealloc = 4096

// slot is one arena cell. Links are arena indexes, not pointers.
type slot[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// recencyList is a doubly linked list laid out in a slice.
// The slot after head is the most recently used, the slot before tail the least.
// Slots freed by unlink+release are recycled through free.
//
// Not safe for concurrent use; the owning cache serializes access.
type recencyList[K comparable, V any] struct {
	slots []slot[K, V]
	free  []int
	size  int
}

func newRecencyList[K comparable, V any](capacity int) *recencyList[K, V] {
	// +2 sentinels, +1 for the entry inserted before an overflow eviction.
	l := &recencyList[K, V]{
		slots: make([]slot[K, V], 2, min(capacity, maxPrealloc)+3),
	}
	l.reset()
	return l
}

// reset drops every entry and relinks the sentinels.
func (l *recencyList[K, V]) reset() {
	clear(l.slots)
	l.slots = l.slots[:2]
	l.slots[head] = slot[K, V]{prev: head, next: tail}
	l.slots[tail] = slot[K, V]{prev: head, next: tail}
	l.free = l.free[:0]
	l.size = 0
}

// alloc stores key and value in a free slot and returns its handle.
// The slot is not linked yet.
func (l *recencyList[K, V]) alloc(key K, value V) int {
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.slots[i] = slot[K, V]{key: key, value: value}
		return i
	}
	l.slots = append(l.slots, slot[K, V]{key: key, value: value})
	return len(l.slots) - 1
}

// release zeroes an unlinked slot and makes it reusable.
func (l *recencyList[K, V]) release(i int) {
	l.slots[i] = slot[K, V]{}
	l.free = append(l.free, i)
}

func (l *recencyList[K, V]) pushFront(i int) {
	first := l.slots[head].next
	l.slots[i].prev = head
	l.slots[i].next = first
	l.slots[first].prev = i
	l.slots[head].next = i
	l.size++
}

func (l *recencyList[K, V]) unlink(i int) {
	prev, next := l.slots[i].prev, l.slots[i].next
	l.slots[prev].next = next
	l.slots[next].prev = prev
	l.size--
}

func (l *recencyList[K, V]) moveToFront(i int) {
	if l.slots[head].next == i {
		return
	}
	l.unlink(i)
	l.pushFront(i)
}

// back returns the least recently used slot, or false if the list is empty.
func (l *recencyList[K, V]) back() (int, bool) {
	i := l.slots[tail].prev
	return i, i != head
}

// keys walks the list from most to least recently used.
func (l *recencyList[K, V]) keys() []K {
	out := make([]K, 0, l.size)
	for i := l.slots[head].next; i != tail; i = l.slots[i].next {
		out = append(out, l.slots[i].key)
	}
	return out
}
