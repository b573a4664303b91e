package struf_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmoutschen/struf"
)

type user struct {
	Name string
	Age  int
}

// userFilter is shaped like a generated filter.
type userFilter struct {
	Names struf.Set[string]
	Ages  struf.Set[int]
}

func (user) Filter() *userFilter { return &userFilter{} }

func (f *userFilter) WithName(name string) *userFilter {
	f.Names.Insert(name)
	return f
}

func (f *userFilter) WithAges(ages ...int) *userFilter {
	f.Ages.Insert(ages...)
	return f
}

func (f *userFilter) Matches(item *user) bool {
	if f == nil {
		return true
	}
	if !f.Names.Accepts(item.Name) {
		return false
	}
	if !f.Ages.Accepts(item.Age) {
		return false
	}
	return true
}

var (
	_ struf.Filterer[*userFilter] = user{}
	_ struf.Matcher[user]         = (*userFilter)(nil)
)

func TestSetZero(t *testing.T) {
	var s struf.Set[string]
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has("a"))
	assert.True(t, s.Accepts("a"))
}

func TestSetInsert(t *testing.T) {
	var s struf.Set[string]
	s.Insert("a", "b", "a")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	assert.True(t, s.Has("b"))
	assert.False(t, s.Has("c"))
	assert.True(t, s.Accepts("a"))
	assert.False(t, s.Accepts("c"))
}

func TestSetAll(t *testing.T) {
	var s struf.Set[int]
	s.Insert(3, 1, 2)
	got := slices.Sorted(s.All())
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSelect(t *testing.T) {
	users := []user{{"alice", 30}, {"bob", 40}, {"carol", 30}}

	got := struf.Select(users, user{}.Filter().WithAges(30))
	assert.Equal(t, []user{{"alice", 30}, {"carol", 30}}, got)

	got = struf.Select(users, user{}.Filter().WithAges(30).WithName("carol"))
	assert.Equal(t, []user{{"carol", 30}}, got)

	got = struf.Select(users, user{}.Filter().WithName("dave"))
	assert.Nil(t, got)
}

func TestSelectEmptyFilter(t *testing.T) {
	users := []user{{"alice", 30}, {"bob", 40}}
	assert.Equal(t, users, struf.Select(users, user{}.Filter()))
}

func TestSelectNilFilter(t *testing.T) {
	users := []user{{"alice", 30}, {"bob", 40}}
	var f *userFilter
	assert.Equal(t, users, struf.Select(users, f))
}

func TestWhere(t *testing.T) {
	users := []user{{"alice", 30}, {"bob", 40}, {"carol", 30}}
	seq := struf.Where(slices.Values(users), user{}.Filter().WithAges(40, 50))
	assert.Equal(t, []user{{"bob", 40}}, slices.Collect(seq))
}

func TestWhereStop(t *testing.T) {
	users := []user{{"alice", 30}, {"bob", 40}, {"carol", 30}}
	var names []string
	for u := range struf.Where(slices.Values(users), user{}.Filter()) {
		names = append(names, u.Name)
		if len(names) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"alice", "bob"}, names)
}
