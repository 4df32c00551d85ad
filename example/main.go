package main

import (
	"fmt"

	"github.com/theflywheel/ohash"
)

func main() {
	m := ohash.New[int, int]()

	fmt.Printf("Created map: size=%d capacity=%d\n", m.Len(), m.Capacity())

	// Insert some data
	for i := 0; i < 10; i++ {
		m.Put(3*i, 8*i+5)
	}

	fmt.Println("Inserted 10 key-value pairs")

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		value, found := m.Get(i)
		if found {
			fmt.Printf("Key %d => Value %d\n", i, value)
		} else {
			fmt.Printf("Key %d not found\n", i)
		}
	}

	// Update a value
	prev, replaced := m.Put(6, 999)
	fmt.Printf("Updated key 6: previous value %d (replaced=%v)\n", prev, replaced)

	// Verify the update
	if value, found := m.Get(6); found {
		fmt.Printf("Updated key 6 => Value %d\n", value)
	}

	// Remove a key
	removed, found := m.Delete(9)
	fmt.Printf("Removed key 9 => Value %d (found=%v)\n", removed, found)
	if _, found := m.Get(9); !found {
		fmt.Println("Key 9 no longer present")
	}

	// Grow the table past several doublings
	for i := 0; i < 1000; i++ {
		m.Put(10_000+i, i)
	}
	fmt.Printf("After bulk insert: size=%d capacity=%d\n", m.Len(), m.Capacity())

	fmt.Println("Example completed successfully")
}
