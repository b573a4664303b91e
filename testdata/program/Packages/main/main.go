package main

import (
	"fmt"

	"github.com/nmoutschen/struf"

	"example.com/Packages/model"
)

func main() {
	orders := []model.Order{
		{ID: 1, Status: model.Pending, Total: 10},
		{ID: 2, Status: model.Shipped, Total: 20},
		{ID: 3, Status: model.Shipped, Total: 30},
	}

	f := model.Order{}.Filter().WithStatus(model.Shipped).WithIDs(1, 3)
	for _, o := range struf.Select(orders, f) {
		fmt.Println(o.ID, o.Status)
	}

	c := model.NewCustomerFilter().WithName("zoe")
	fmt.Println(c.Matches(&model.Customer{Name: "zoe"}))
}
