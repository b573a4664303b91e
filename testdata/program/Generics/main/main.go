package main

import (
	"fmt"
	"slices"

	"github.com/nmoutschen/struf"
)

// Pair has a non-comparable type parameter which is not filterable.
//
//struf:filter
type Pair[K comparable, V any] struct {
	Key   K `filter:""`
	Value V
}

// Box needs T to be comparable only for its filter.
//
//struf:filter
type Box[T any] struct {
	Value T      `filter:""`
	Label string `filter:""`
}

type label string

func (l label) String() string { return string(l) }

//struf:filter
type Named[T fmt.Stringer] struct {
	Value T `filter:""`
}

//struf:filter
type Tagged[T comparable, _ any, U any] struct {
	Tag T `filter:""`
}

func main() {
	pairs := []Pair[string, []int]{
		{Key: "a", Value: []int{1}},
		{Key: "b", Value: nil},
	}
	for p := range struf.Where(slices.Values(pairs), Pair[string, []int]{}.Filter().WithKey("b")) {
		fmt.Println(p.Key)
	}

	b := NewBoxFilter[int]().WithValues(1, 2)
	fmt.Println(b.Matches(&Box[int]{Value: 2}), b.Matches(&Box[int]{Value: 3}))
	fmt.Println(b.WithLabel("x").Matches(&Box[int]{Value: 2, Label: "y"}))

	n := NewNamedFilter[label]().WithValue("x")
	fmt.Println(n.Matches(&Named[label]{Value: "x"}))

	var tf struf.Filterer[*TaggedFilter[int, bool, string]] = Tagged[int, bool, string]{}
	fmt.Println(tf.Filter().WithTag(1).Matches(&Tagged[int, bool, string]{Tag: 1}))
}
