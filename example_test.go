package bitkit_test

import (
	"fmt"

	"github.com/hupe1980/bitkit"
)

func Example() {
	a := bitkit.NewSized(10)
	a.Set(0, true)
	a.Set(9, true)
	a.Store(2, 3, 0b111)

	fmt.Printf("%#x\n", a.Extract(0, 10))

	text, _ := a.Text(16)
	fmt.Println(text)
	// Output:
	// 0x2e1
	// B84
}

func ExampleBitArray_Load() {
	a := bitkit.New()
	n, err := a.Load("DEAD", 16)
	if err != nil {
		panic(err)
	}

	fmt.Println(n, a.Count(true))
	// Output:
	// 16 11
}

func ExampleNewSubset() {
	a := bitkit.NewSized(10)
	a.Set(0, true)
	a.Set(9, true)

	sub := bitkit.NewSubset(a, 1, 8)
	sub.SetRange(2, 5, true)

	fmt.Printf("%#x %#x\n", sub.Extract(0, 8), a.Extract(0, 10))
	// Output:
	// 0x3e 0x27d
}

func ExampleBitArray_Ones() {
	a := bitkit.NewSized(16)
	a.Store(0, 16, 0x8421)

	for pos := range a.Ones() {
		fmt.Print(pos, " ")
	}
	fmt.Println()
	// Output:
	// 0 5 10 15
}
