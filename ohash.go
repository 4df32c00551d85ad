package ohash

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("ohash")

const (
	// DefaultCapacity is the slot count of a freshly constructed Map.
	DefaultCapacity = 20

	// loadFactor is the highest tolerated ratio of occupied slots to
	// capacity. Put doubles the table before crossing it.
	loadFactor = 0.7
)

// Key is the set of types Map can use as keys. All of them hash through
// the same xxhash-based strategy.
type Key interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		string
}

// slot is one cell of the backing array: empty, or holding exactly one
// key-value pair.
type slot[K Key, V any] struct {
	occupied bool
	key      K
	value    V
}

// Map is an open-addressing hash table with linear probing. The zero
// value is not usable; construct with New.
type Map[K Key, V any] struct {
	slots []slot[K, V]
	size  int
}

// New creates an empty Map with DefaultCapacity slots.
func New[K Key, V any]() *Map[K, V] {
	return &Map[K, V]{
		slots: make([]slot[K, V], DefaultCapacity),
	}
}

// Len returns the number of entries currently stored.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Capacity returns the length of the backing slot array.
func (m *Map[K, V]) Capacity() int {
	return len(m.slots)
}

// Put adds or updates a key-value pair. It returns the previous value
// for the key and true if one was replaced, or the zero value and false
// if the key is new.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	// Grow before probing so the placement below can never find the
	// table full. Reactive growth would reintroduce an unbounded probe.
	if float64(m.size+1)/float64(len(m.slots)) > loadFactor {
		m.grow()
	}

	numSlots := uint64(len(m.slots))
	idx := hashKey(key) % numSlots

	for i := uint64(0); i < numSlots; i++ {
		s := &m.slots[(idx+i)%numSlots]

		if !s.occupied {
			s.occupied = true
			s.key = key
			s.value = value
			m.size++
			var zero V
			return zero, false
		}
		if s.key == key {
			prev := s.value
			s.value = value
			return prev, true
		}
	}

	panic(fmt.Sprintf("ohash: probed all %d slots without placing key %v, table invariant broken", numSlots, key))
}

// Get retrieves the value stored for key. The second return value
// reports whether the key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	numSlots := uint64(len(m.slots))
	idx := hashKey(key) % numSlots

	for i := uint64(0); i < numSlots; i++ {
		s := &m.slots[(idx+i)%numSlots]

		if !s.occupied {
			// An empty slot ends the probe chain: the key was never
			// displaced past this point.
			var zero V
			return zero, false
		}
		if s.key == key {
			return s.value, true
		}
	}

	panic(fmt.Sprintf("ohash: probed all %d slots looking up key %v, table invariant broken", numSlots, key))
}

// MustGet retrieves the value stored for key and panics if the key is
// absent. Use it where a miss is a programming error.
func (m *Map[K, V]) MustGet(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic(fmt.Sprintf("ohash: key %v not found", key))
	}
	return v
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key from the map, returning the removed value and true
// if it was present. The vacated slot is backfilled from the rest of
// the probe chain so that every remaining key stays reachable without
// tombstones.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	numSlots := uint64(len(m.slots))
	idx := hashKey(key) % numSlots

	for i := uint64(0); i < numSlots; i++ {
		cur := (idx + i) % numSlots
		s := &m.slots[cur]

		if !s.occupied {
			var zero V
			return zero, false
		}
		if s.key == key {
			removed := s.value
			*s = slot[K, V]{}
			m.size--
			m.closeGap(cur)
			return removed, true
		}
	}

	panic(fmt.Sprintf("ohash: probed all %d slots removing key %v, table invariant broken", numSlots, key))
}

// closeGap repairs the probe chain after a deletion left hole empty.
// Entries past the hole whose home slot lies at or before it are
// shifted backward into it; each shift opens a new hole further along,
// until the chain ends at a naturally empty slot.
func (m *Map[K, V]) closeGap(hole uint64) {
	numSlots := uint64(len(m.slots))
	cur := hole

	for i := uint64(0); i < numSlots; i++ {
		cur = (cur + 1) % numSlots
		s := &m.slots[cur]
		if !s.occupied {
			return
		}

		// An entry stays put if its home slot lies cyclically after
		// the hole and at or before its current position, since its
		// probe path then never crosses the hole.
		home := hashKey(s.key) % numSlots
		if hole < cur {
			if hole < home && home <= cur {
				continue
			}
		} else {
			if hole < home || home <= cur {
				continue
			}
		}

		m.slots[hole] = *s
		*s = slot[K, V]{}
		hole = cur
	}

	panic(fmt.Sprintf("ohash: no empty slot among %d while closing a deletion gap, table invariant broken", numSlots))
}

// grow doubles the capacity and rehashes every entry into the new slot
// array. Old slots are walked in array order; keys are known distinct,
// so placement needs no equality checks.
func (m *Map[K, V]) grow() {
	newSlots := make([]slot[K, V], 2*len(m.slots))
	newNumSlots := uint64(len(newSlots))

	moved := 0
	for i := range m.slots {
		old := &m.slots[i]
		if !old.occupied {
			continue
		}

		idx := hashKey(old.key) % newNumSlots
		placed := false
		for j := uint64(0); j < newNumSlots; j++ {
			s := &newSlots[(idx+j)%newNumSlots]
			if !s.occupied {
				*s = *old
				placed = true
				moved++
				break
			}
		}
		if !placed {
			panic(fmt.Sprintf("ohash: no free slot for key %v while rehashing into %d slots", old.key, newNumSlots))
		}
	}

	log.Debugf("resize %d -> %d slots, %d entries rehashed", len(m.slots), len(newSlots), moved)
	m.slots = newSlots
}

// hashKey computes the 64-bit xxhash of the key's content. Integer keys
// are serialized big-endian to 8 bytes first so that equal values hash
// identically regardless of width.
func hashKey[K Key](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return hashUint64(uint64(k))
	case int8:
		return hashUint64(uint64(k))
	case int16:
		return hashUint64(uint64(k))
	case int32:
		return hashUint64(uint64(k))
	case int64:
		return hashUint64(uint64(k))
	case uint:
		return hashUint64(uint64(k))
	case uint8:
		return hashUint64(uint64(k))
	case uint16:
		return hashUint64(uint64(k))
	case uint32:
		return hashUint64(uint64(k))
	case uint64:
		return hashUint64(k)
	case uintptr:
		return hashUint64(uint64(k))
	default:
		panic(fmt.Sprintf("ohash: unhashable key type %T", key))
	}
}

func hashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}
