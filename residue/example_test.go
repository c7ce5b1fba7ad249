package residue_test

import (
	"fmt"

	"github.com/katalvlaran/rainflow/residue"
	"github.com/katalvlaran/rainflow/turningpoint"
)

// ExampleStack_Push demonstrates the four-point closure test on the
// classic [1,3,2,4] pattern: the inner pair (3,2) is nested inside the
// outer pair (1,4) and closes, leaving [1,4] open.
func ExampleStack_Push() {
	s := residue.New(4, nil)
	values := []float64{1, 3, 2, 4}
	classes := []uint32{0, 2, 1, 3}

	for i, v := range values {
		closures, _ := s.Push(turningpoint.TurningPoint{Value: v, Class: classes[i], Position: uint64(i + 1)})
		for _, c := range closures {
			fmt.Printf("closed %v -> %v\n", c.From.Value, c.To.Value)
		}
	}

	fmt.Println("residue:", s.Points)
	// Output:
	// closed 3 -> 2
	// residue: [{1 0 1} {4 3 4}]
}
