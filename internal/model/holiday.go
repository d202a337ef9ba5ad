package model

// Holiday is one resolved calendar entry.
type Holiday struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// HolidayYear maps ISO dates (YYYY-MM-DD) to the holiday on that day.
type HolidayYear map[string]Holiday

// Clone returns a copy of y safe to hand to callers.
func (y HolidayYear) Clone() HolidayYear {
	out := make(HolidayYear, len(y))
	for k, v := range y {
		out[k] = v
	}
	return out
}
