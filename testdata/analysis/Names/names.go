package names

//struf:filter
type User struct {
	Name  string `filter:""`
	Names string `filter:""` // want `filter name WithNames of field Names conflicts with field Name`
	Sheep string `filter:"plural=Sheep"` // want `filter name WithSheep of field Sheep is generated twice; plural Sheep collides with the field name`
	Match string `filter:"plural=Matches"` // want `filter name Matches of field Match conflicts with method Matches`
	Alias string `filter:"plural=Names"` // want `filter name Names of field Alias conflicts with field Name`
}

//struf:filter
type Team struct{} // want `cannot generate TeamFilter for Team: TeamFilter is already declared at .*names.go:15:6`

type TeamFilter struct{}

//struf:filter
type Group struct{} // want `cannot generate NewGroupFilter for Group: NewGroupFilter is already declared at`

func NewGroupFilter() {}

//struf:filter
type Account struct{} // want `cannot generate Account.Filter: Account already has Filter at`

func (Account) Filter() bool { return false }

//struf:filter
type Session struct { // want `cannot generate Session.Filter: Session already has Filter at`
	Filter string
}

//struf:filter
type user struct {
	name string `filter:""`
}

//struf:filter
type Item struct{}

//struf:filter
type NewItem struct{} // want `cannot generate NewItemFilter for NewItem: NewItemFilter is also generated for Item at .*names.go:38:6`
