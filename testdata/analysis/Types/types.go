package types

import "time"

//struf:filter
type ID int // want `cannot generate filter for ID: int is not a struct type`

//struf:filter
type Handler func() // want `cannot generate filter for Handler: func\(\) is not a struct type`

type user struct{}

//struf:filter
type User = user // want `cannot generate filter for alias User`

type meta struct {
	labels map[string]string
}

type holder struct {
	value any
}

//struf:filter
type Record struct {
	ID      int           `filter:""`
	Created time.Time     `filter:""`
	Timeout time.Duration `filter:""`
	Ptr     *meta         `filter:""`
	Array   [2]string     `filter:""`
	AnyPtr  *any          `filter:""`

	Tags   []string          `filter:""` // want `cannot filter by Tags: \[\]string is not comparable`
	Meta   meta              `filter:""` // want `cannot filter by Meta: meta is not comparable`
	Attrs  map[string]string `filter:""` // want `cannot filter by Attrs: map\[string\]string is not comparable`
	OnSave func()            `filter:""` // want `cannot filter by OnSave: func\(\) is not comparable`
	Pairs  [2][]int          `filter:""` // want `cannot filter by Pairs: \[2\]\[\]int is not comparable`
	Any    any               `filter:""` // want `cannot filter by Any: any is not strictly comparable`
	Err    error             `filter:""` // want `cannot filter by Err: error is not strictly comparable`
	Held   holder            `filter:""` // want `cannot filter by Held: holder is not strictly comparable`
	Anys   [2]any            `filter:""` // want `cannot filter by Anys: \[2\]any is not strictly comparable`
}

//struf:filter
type Box[T any, C comparable] struct {
	Value   T    `filter:""`
	Key     C    `filter:""`
	Pair    [2]T `filter:""`
	List    []T  `filter:""` // want `cannot filter by List: \[\]T is not comparable`
	KeyList []C  `filter:""` // want `cannot filter by KeyList: \[\]C is not comparable`
	Ref     *[]T `filter:""`
}
