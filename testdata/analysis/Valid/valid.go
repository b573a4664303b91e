// Package valid has records without any problem.
package valid

import "time"

//struf:filter
type User struct {
	Name  string `filter:""`
	Email string
	Age   int       `filter:""`
	Role  string    `filter:"plural=Roles"`
	Seen  time.Time `filter:"plural=SeenAt"`
}

type (
	//struf:filter
	Team struct {
		Person string `filter:"plural=People"`
		name_a string `filter:""`
	}

	//struf:filter
	Empty struct{}
)

//struf:filter
type Pair[K comparable, V any] struct {
	Key   K `filter:""`
	Value V
}

//struf:filter
type Box[T any, _ any] struct {
	Value T `filter:""`
}
