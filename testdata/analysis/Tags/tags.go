package tags

//struf:filter
type User struct {
	Name    string `filter:""`
	Email   string `json:"email" filter:"plural=Emails"`
	Skipped string `filter:"-"`
	Plain   string `json:"plain"`

	Role   string `filter:"plural"`        // want `invalid filter tag on User.Role: plural needs a value`
	Team   string `filter:"plural=a b"`    // want `invalid filter tag on User.Team: plural "a b" is not an identifier`
	Group  string `filter:"plural=_"`      // want `invalid filter tag on User.Group: plural "_" is not an identifier`
	Region string `filter:"sort"`          // want `invalid filter tag on User.Region: unknown option "sort"`
	Zone   string `filter:"plural=Zs,plural=Zz"` // want `invalid filter tag on User.Zone: duplicate option "plural"`
	Site   string `filter:",plural=Sites"` // want `invalid filter tag on User.Site: empty option`

	_ int `filter:""` // want `cannot filter by blank field`
}
