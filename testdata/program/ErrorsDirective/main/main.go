package main

//struf:filter users
type User struct {
	Name string `filter:""`
}

//struf:filters
type Team struct{}

//struf:filter
func main() {}
