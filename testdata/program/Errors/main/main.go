package main

//struf:filter
type ID int

//struf:filter
type User struct {
	Name    string   `filter:""`
	Names   string   `filter:""`
	Tags    []string `filter:""`
	Role    string   `filter:"plural"`
	Payload any      `filter:""`
}

func main() {}
