package model

type Status string

const (
	Pending Status = "pending"
	Shipped Status = "shipped"
)

type (
	//struf:filter
	Order struct {
		ID     int    `filter:"plural=IDs"`
		Status Status `filter:"plural=Statuses"`
		Total  int
	}

	//struf:filter
	Customer struct {
		Name string `filter:""`
	}
)
