package main

import "fmt"

//struf:filter
type Person struct {
	Person string `filter:"plural=People"`
	name_a string `filter:""`
	City   string `filter:"plural=Cities"`
	Sheep  int    `filter:"plural=Flock"`
}

func main() {
	p := Person{Person: "ada", name_a: "x", City: "London", Sheep: 3}

	f := NewPersonFilter().WithPeople("ada", "grace").WithName_a("x")
	fmt.Println(f.Matches(&p))
	fmt.Println(len(f.People), len(f.name_as), f.Cities.Len())

	fmt.Println(f.WithCity("Paris").Matches(&p))
	fmt.Println(f.WithCities("London").Matches(&p))
	fmt.Println(f.WithFlock(1, 2).Matches(&p))
	fmt.Println(f.WithSheep(3).Matches(&p))
}
