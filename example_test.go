package petal_test

import (
	"fmt"
	"sync"

	"github.com/lcross/petal"
)

// This example demonstrates basic membership testing with the exclusive
// (single-owner) filter.
func Example() {
	// 10,000 bits and 4 hash positions per item.
	f, err := petal.New(10_000, 4)
	if err != nil {
		panic(err)
	}

	f.Set([]byte("apple"))
	f.Set([]byte("banana"))

	fmt.Println("apple:", f.Test([]byte("apple")))   // true (inserted)
	fmt.Println("banana:", f.Test([]byte("banana"))) // true (inserted)
	fmt.Println("grape:", f.Test([]byte("grape")))   // false (not inserted)

	// Output:
	// apple: true
	// banana: true
	// grape: false
}

// This example demonstrates the lock-free filter under concurrent writers.
func ExampleAtomicFilter() {
	f, err := petal.NewAtomic(100_000, 5)
	if err != nil {
		panic(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Set(fmt.Appendf(nil, "worker-%d-item-%d", id, j))
			}
		}(i)
	}
	wg.Wait()

	// Every insertion whose Set has returned is visible.
	fmt.Println(f.Test([]byte("worker-2-item-500")))

	// Output:
	// true
}

// This example demonstrates the locked filter's error result.
func ExampleLockedFilter() {
	f, err := petal.NewLocked(10_000, 4)
	if err != nil {
		panic(err)
	}

	if err := f.Set([]byte("user:12345")); err != nil {
		panic(err)
	}

	fmt.Println("user:12345:", f.Test([]byte("user:12345")))
	fmt.Println("user:99999:", f.Test([]byte("user:99999")))

	// Output:
	// user:12345: true
	// user:99999: false
}

// A filter with zero hash positions checks nothing: every lookup is
// vacuously true. Accepted as a documented degenerate configuration.
func Example_degenerate() {
	f, err := petal.New(100, 0)
	if err != nil {
		panic(err)
	}

	fmt.Println(f.Test([]byte("never inserted")))

	// Output:
	// true
}

// This example demonstrates swapping a faster non-cryptographic hashing
// strategy into a filter.
func ExampleNewWithHasher() {
	f, err := petal.NewWithHasher(10_000, 4, petal.XXH3Hasher{})
	if err != nil {
		panic(err)
	}

	f.Set([]byte("cherry"))
	fmt.Println(f.Test([]byte("cherry")))

	// Output:
	// true
}
