package main_test

import "testing"

//struf:filter
type external struct {
	Value int `filter:""`
}

func TestExternal(t *testing.T) {
	if newExternalFilter().WithValue(1).Matches(&external{Value: 2}) {
		t.Fatal("unexpected match")
	}
}
