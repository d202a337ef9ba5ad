package holiday

// Categories understood by the allow-list.
const (
	CategoryFederal    = "Federal Holiday"
	CategoryObservance = "Observance"
)

// AllowList is the set of holiday categories worth showing. The same value
// filters entries when a year is fetched and again when a day is looked up.
type AllowList map[string]bool

// DefaultAllowList accepts federal holidays and observances.
func DefaultAllowList() AllowList {
	return AllowList{CategoryFederal: true, CategoryObservance: true}
}

// Allows reports whether category passes the list.
func (a AllowList) Allows(category string) bool {
	return a[category]
}
