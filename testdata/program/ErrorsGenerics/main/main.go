package main

//struf:filter
type Box[T any] struct {
	Values []T `filter:""`
	Lookup map[string]T
}

//struf:filter
type Node[T any] struct {
	Value T `filter:""`
}

func (Node[T]) Filter() {}

func main() {}
