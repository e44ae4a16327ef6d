package eventemitter_test

import (
	"fmt"

	"github.com/vincentAlen/eventemitter"
)

func ExampleNew() {
	e, emit := eventemitter.New[int]()

	e.On("tick", func(v int) { fmt.Println("A", v) })
	e.On("tick", func(v int) { fmt.Println("B", v) })

	emit("tick", 5)
	emit("unused", 0)
	// Output:
	// A 5
	// B 5
}

func ExampleFunc2() {
	e, emit := eventemitter.New[eventemitter.Args2[int, float32]]()

	e.On("resize", eventemitter.Func2(func(w int, scale float32) {
		fmt.Printf("width=%d scale=%.1f\n", w, scale)
	}))

	emit("resize", eventemitter.Args2[int, float32]{V1: 640, V2: 1.5})
	// Output:
	// width=640 scale=1.5
}

func ExampleEmitter_Events() {
	e, emit := eventemitter.New[string]()
	e.On("open", func(string) {})
	emit("close", "")

	fmt.Println(e.Events())
	fmt.Println(e.Listeners("open"), e.Listeners("close"))
	// Output:
	// [close open]
	// 1 0
}
