package catalog

// State is the borrow status of an item.
type State int

const (
	Available State = iota
	OnLoan
)

func (s State) String() string {
	if s == OnLoan {
		return "borrowed"
	}
	return "available"
}

// Item is a single book in the catalog.
// ID is usually an ISBN; the catalog does not check its format.
type Item struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	ID       string `json:"id"`
	Borrowed bool   `json:"borrowed"`
}

func (it Item) State() State {
	if it.Borrowed {
		return OnLoan
	}
	return Available
}
