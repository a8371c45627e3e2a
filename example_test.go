package sortvis_test

import (
	"fmt"
	"log"

	"sortvis"
	"sortvis/pkg/algo"
	"sortvis/pkg/driver"
)

// Example_producer demonstrates driving a single algorithm over a
// fixed array, one step at a time, without the engine around it.
func Example_producer() {
	xs := []int{3, 1, 2}
	p := algo.NewProducer(xs, algo.Bubble(xs))

	for {
		s, done := p.Next()
		if done {
			fmt.Println("sorted:", s.Result)
			return
		}
		fmt.Println(s.Result)
	}
	// Output:
	// [3 1 2]
	// [1 3 2]
	// [1 3 2]
	// [1 2 3]
	// [1 2 3]
	// sorted: [1 2 3]
}

// ExampleNew demonstrates the high-level engine: select an algorithm,
// advance manually, inspect the snapshot.
func ExampleNew() {
	engine, err := sortvis.New(
		sortvis.WithConfig(driver.Config{Length: 16}),
		sortvis.WithAlgorithm("quick"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Close()

	for !engine.Done() {
		engine.Advance()
	}

	snap := engine.Snapshot()
	fmt.Printf("%s finished in %d steps\n", snap.Algorithm, snap.Steps)
}
