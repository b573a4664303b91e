package main

import "fmt"

//struf:filter
type Item struct {
	SKU string `filter:""`
}

func main() {
	fmt.Println(NewItemFilter().WithSKU("a").Matches(&Item{SKU: "a"}))
}
