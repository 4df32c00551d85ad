/*
Package ohash provides an in-memory hash table built on open addressing
with linear probing.

Map is designed as a from-scratch associative container: all entries
live in a single flat slot array rather than in per-bucket chains, and
collisions are resolved by scanning forward (with wrap-around) until an
empty slot or the matching key is found. The table grows before it can
ever fill up, so every probe sequence is guaranteed to terminate.

Basic usage:

	import "github.com/theflywheel/ohash"

	m := ohash.New[string, int]()

	// Insert data
	prev, replaced := m.Put("alpha", 1)

	// Retrieve data
	v, ok := m.Get("alpha")
	if ok {
		fmt.Println("Value:", v)
	}

	// Remove data
	removed, ok := m.Delete("alpha")

Features:

  - Generic over integer and string key types with any value type
  - Single uniform hashing strategy (xxhash over the key bytes)
  - Automatic doubling when the load factor would exceed 0.7
  - Open addressing with linear probing for collision resolution
  - Put/Delete hand the displaced value back to the caller

Implementation Details:

The table holds a slot array of the current capacity plus a size
counter. Each slot is either empty or holds one key-value pair. Put
checks the load factor before probing and doubles the capacity first if
placing the entry would push the table past the 0.7 threshold, so the
array always retains at least one empty slot and an unsuccessful probe
always terminates at one.

Deletion vacates the slot and then shifts later entries of the same
probe chain backward to fill the gap. There are no tombstones: slots
are only ever empty or occupied, and keys displaced by earlier
collisions stay reachable after any number of deletions.

Map is not safe for concurrent use. Mutations require exclusive access;
concurrent readers are fine only while no writer is active.
*/
package ohash
