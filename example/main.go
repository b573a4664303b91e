//go:generate go run github.com/nmoutschen/struf/cmd/struf

// Command example serves jobs filtered by query parameters:
//
//	GET /jobs?owner=alice&status=todo&status=doing
package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nmoutschen/struf"
)

type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

//struf:filter
type Job struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Status   Status `json:"status" filter:"plural=Statuses"`
	Owner    string `json:"owner" filter:""`
	Priority int    `json:"priority" filter:"plural=Priorities"`
}

var jobs = []Job{
	{ID: 1, Title: "write docs", Status: StatusTodo, Owner: "alice", Priority: 2},
	{ID: 2, Title: "fix login", Status: StatusDoing, Owner: "bob", Priority: 1},
	{ID: 3, Title: "ship v1", Status: StatusDone, Owner: "alice", Priority: 1},
}

// jobFilter builds a filter from repeated query parameters. An absent
// parameter does not constrain the result.
func jobFilter(c echo.Context) (*JobFilter, error) {
	q := c.QueryParams()

	f := Job{}.Filter().WithOwners(q["owner"]...)
	for _, s := range q["status"] {
		f.WithStatus(Status(s))
	}
	for _, p := range q["priority"] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid priority: "+p)
		}
		f.WithPriority(n)
	}
	return f, nil
}

func listJobs(c echo.Context) error {
	f, err := jobFilter(c)
	if err != nil {
		return err
	}

	matched := struf.Select(jobs, f)
	if matched == nil {
		matched = []Job{}
	}
	return c.JSON(http.StatusOK, matched)
}

func main() {
	e := echo.New()
	e.GET("/jobs", listJobs)
	e.Logger.Fatal(e.Start(":8080"))
}
