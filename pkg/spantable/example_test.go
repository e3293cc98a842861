package spantable_test

import (
	"fmt"

	"github.com/mhalvorsen/deckplan/pkg/lumber"
	"github.com/mhalvorsen/deckplan/pkg/spantable"
)

func ExampleTables_MaxBeamSpan() {
	// Tributary widths between tabulated entries interpolate linearly.
	t := spantable.Default()
	span, _ := t.MaxBeamSpan(2, lumber.Size2x10, 7)
	fmt.Printf("%.2f ft\n", span)
	// Output:
	// 7.71 ft
}

func ExampleTables_MaxJoistSpan() {
	t := spantable.Default()
	span, _ := t.MaxJoistSpan(lumber.Size2x8, 16)
	fmt.Println(span, "ft")
	// Output:
	// 11.83 ft
}
