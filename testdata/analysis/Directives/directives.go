package directives

//struf:filter all // want `unexpected arguments to //struf:filter: all`
type User struct {
	Name string `filter:""`
}

//struf:filters // want `unknown directive //struf:filters`
type Team struct{}

//struf:filter
//struf:filter // want `duplicate //struf:filter directive`
type Group struct{}

type Account struct {
	//struf:filter // want `misplaced //struf:filter on field`
	Name string
}

//struf:filter // want `misplaced //struf:filter on func run`
func run() {
	//struf:filter // want `cannot generate filter for local type local`
	type local struct{}
	_ = local{}
}

//struf:filter // want `misplaced //struf:filter; it must be in the doc comment of a struct type`

var _ = run

// Grouped is a record in a type declaration group.
type (
	//struf:filter
	Grouped struct {
		Name string `filter:""`
	}
)
