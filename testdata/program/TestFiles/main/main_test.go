package main

import "testing"

//struf:filter
type row struct {
	Key string `filter:""`
}

func TestRow(t *testing.T) {
	f := row{}.Filter().WithKey("a")
	if !f.Matches(&row{Key: "a"}) || f.Matches(&row{Key: "b"}) {
		t.Fatal("unexpected match")
	}
}

func TestItem(t *testing.T) {
	if !(Item{}).Filter().WithSKUs("a", "b").Matches(&Item{SKU: "b"}) {
		t.Fatal("unexpected mismatch")
	}
}
