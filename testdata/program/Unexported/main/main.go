package main

import "fmt"

//struf:filter
type user struct {
	name string `filter:""`
}

//struf:filter
type User struct {
	Name string `filter:""`
}

func main() {
	u := user{name: "alice"}
	fmt.Println(newUserFilter().WithName("alice").Matches(&u))
	fmt.Println(u.Filter().WithNames("bob", "carol").Matches(&u))

	U := User{Name: "bob"}
	fmt.Println(NewUserFilter().WithName("alice").Matches(&U))
	fmt.Println(U.Filter().WithNames("bob", "carol").Matches(&U))
}
