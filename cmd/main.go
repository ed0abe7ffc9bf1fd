package main

import (
	"fmt"
	"os"

	"github.com/smartwalle/linked/dlist"
	"github.com/smartwalle/linked/slist"
)

func single() {
	fmt.Println("== single")

	var l = slist.New[any]()
	l.Append(10)
	l.Append(30)
	l.Append("foobar")
	fmt.Printf("list=[%s] size=%d\n", l, l.Len())

	fmt.Println("insertAt(1, 60):", l.InsertAt(1, 60))
	l.Print(os.Stdout)

	var v, ok = l.RemoveAt(0)
	fmt.Println("removeAt(0):", v, ok)
	l.Print(os.Stdout)

	v, ok = l.Remove("missing")
	fmt.Println("remove(missing):", v, ok)
	fmt.Printf("list=[%s] size=%d empty=%t\n", l, l.Len(), l.IsEmpty())
}

func double() {
	fmt.Println("== double")

	var l = dlist.New[int]()
	l.InsertAt(0, 30)
	printBounds(l)

	l.Append(60)
	printBounds(l)

	var v, ok = l.RemoveAt(1)
	fmt.Println("removeAt(1):", v, ok)
	printBounds(l)

	for i := 1; i <= 4; i++ {
		l.Append(i * 100)
	}
	fmt.Printf("list=[%s] size=%d\n", l, l.Len())
	fmt.Print("reverse=[")
	l.RangeReverse(func(index int, element int) bool {
		if index < l.Len()-1 {
			fmt.Print(", ")
		}
		fmt.Print(element)
		return true
	})
	fmt.Println("]")
}

func printBounds(l *dlist.List[int]) {
	var head, _ = l.Head()
	var tail, _ = l.Tail()
	fmt.Printf("head=%d tail=%d", head.Element, tail.Element)
	if prev, ok := tail.Prev(); ok {
		fmt.Printf(" tail.prev=%d", prev.Element)
	}
	if _, ok := tail.Next(); !ok {
		fmt.Print(" tail.next=<nil>")
	}
	fmt.Println()
}

func main() {
	var which = ""
	if len(os.Args) >= 2 {
		which = os.Args[1]
	}

	switch which {
	case "single":
		single()
	case "double":
		double()
	default:
		single()
		double()
	}
}
