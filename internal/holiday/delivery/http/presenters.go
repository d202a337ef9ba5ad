package http

import (
	"sort"

	"someday-maybe/internal/model"
)

type holidayResp struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type yearResp struct {
	Year     int           `json:"year"`
	Holidays []holidayResp `json:"holidays"`
}

type dayResp struct {
	Date    string       `json:"date"`
	Holiday *holidayResp `json:"holiday"`
}

func (h *handler) newYearResp(year int, y model.HolidayYear) yearResp {
	items := make([]holidayResp, 0, len(y))
	for date, hol := range y {
		items = append(items, holidayResp{Date: date, Name: hol.Name, Category: hol.Category})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date < items[j].Date })
	return yearResp{Year: year, Holidays: items}
}

func (h *handler) newDayResp(date string, hol *model.Holiday) dayResp {
	resp := dayResp{Date: date}
	if hol != nil {
		resp.Holiday = &holidayResp{Date: date, Name: hol.Name, Category: hol.Category}
	}
	return resp
}
