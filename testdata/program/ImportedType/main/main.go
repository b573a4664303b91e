package main

import (
	"fmt"
	"net/netip"
	"time"
)

//struf:filter
type Event struct {
	Day  time.Weekday `filter:""`
	Addr netip.Addr   `filter:""`
	Note string
}

func main() {
	e := Event{Day: time.Monday, Addr: netip.MustParseAddr("10.0.0.1")}

	f := NewEventFilter().WithDays(time.Saturday, time.Sunday)
	fmt.Println(f.Matches(&e))

	f.WithDay(time.Monday)
	fmt.Println(f.Matches(&e))

	fmt.Println(f.WithAddr(netip.MustParseAddr("10.0.0.2")).Matches(&e))
}
