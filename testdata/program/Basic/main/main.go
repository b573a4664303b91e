package main

import (
	"fmt"

	"github.com/nmoutschen/struf"
)

//struf:filter
type User struct {
	Name  string `filter:""`
	Email string
	Age   int `filter:""`
}

func names(users []User) []string {
	var names []string
	for _, u := range users {
		names = append(names, u.Name)
	}
	return names
}

func main() {
	users := []User{
		{Name: "alice", Email: "alice@example.com", Age: 30},
		{Name: "bob", Email: "bob@example.com", Age: 25},
		{Name: "carol", Email: "carol@example.com", Age: 30},
	}

	// An empty filter matches everything
	fmt.Println(names(struf.Select(users, NewUserFilter())))

	// Values of one field are alternatives
	fmt.Println(names(struf.Select(users, User{}.Filter().WithName("alice").WithName("bob"))))
	fmt.Println(names(struf.Select(users, User{}.Filter().WithAge(30))))

	// Fields must all match
	fmt.Println(names(struf.Select(users, User{}.Filter().WithNames("alice", "bob").WithAges(30))))
	fmt.Println(names(struf.Select(users, User{}.Filter().WithName("dave"))))

	var zero UserFilter
	fmt.Println(zero.Matches(&users[0]))

	var nilFilter *UserFilter
	fmt.Println(nilFilter.Matches(&users[1]))

	// Duplicates collapse
	f := NewUserFilter().WithNames("alice", "alice", "bob")
	fmt.Println(f.Names.Len())

	var filterer struf.Filterer[*UserFilter] = User{}
	fmt.Println(filterer.Filter().Matches(&users[2]))
}
