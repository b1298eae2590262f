// server/internal/reports/monthly.go
package reports

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"a2z-ipm-api-server/internal/forms"
	"a2z-ipm-api-server/internal/models"
)

// DailyCount is one calendar day's submission counts per form type.
type DailyCount struct {
	Day    int            `json:"day"`
	Counts map[string]int `json:"counts"` // keyed by form type
	Total  int            `json:"total"`
}

// WeekCount is one weekly bucket of submissions. Week 4 absorbs days 29-31 so
// no record falls outside the report.
type WeekCount struct {
	Week  int `json:"week"`
	Count int `json:"count"`
}

// TypeCount is one form type's share of the month.
type TypeCount struct {
	FormType string `json:"formType"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

// InsecticideRow and the detail slices below feed the per-form report tables.
type InsecticideRow struct {
	Date      string  `json:"date"`
	Chemical  string  `json:"chemical"`
	Qty       float64 `json:"qty"`
	Remaining float64 `json:"remaining"`
	Areas     string  `json:"areas,omitempty"`
}

type BaitStationRow struct {
	Date     string  `json:"date"`
	Active   int     `json:"active"`
	Total    int     `json:"total"`
	BaitUsed float64 `json:"baitUsed"`
}

type AttendanceRow struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	UserKey  string `json:"userKey"`
	Verified bool   `json:"verified"`
	Skipped  bool   `json:"skipped"`
}

// Monthly is the full monthly report for one project.
type Monthly struct {
	Month        string           `json:"month"`
	ProjectKey   string           `json:"projectKey"`
	Total        int              `json:"total"`
	Daily        []DailyCount     `json:"daily"`
	ActiveDays   []DailyCount     `json:"activeDays"`
	Weekly       []WeekCount      `json:"weekly"`
	Distribution []TypeCount      `json:"distribution"`
	Insecticide  []InsecticideRow `json:"insecticide"`
	BaitStations []BaitStationRow `json:"baitStations"`
	Attendance   []AttendanceRow  `json:"attendance"`
}

// FormName resolves a form type key to its display name, falling back to the
// key itself for custom forms not present in the lookup.
func FormName(formType string, customNames map[string]string) string {
	if name, ok := forms.BuiltinForms[formType]; ok {
		return name
	}
	if name, ok := customNames[formType]; ok {
		return name
	}
	return formType
}

// BuildMonthly aggregates one project's records for a month ("YYYY-MM").
// records must already be scoped to the project; the month filter happens
// here. customNames maps custom form keys to display names for the
// distribution table.
func BuildMonthly(projectKey, month string, records []models.Record, customNames map[string]string) (*Monthly, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}
	days := start.AddDate(0, 1, -1).Day()

	var scoped []models.Record
	for _, r := range records {
		if strings.HasPrefix(r.Date, month) {
			scoped = append(scoped, r)
		}
	}

	rep := &Monthly{Month: month, ProjectKey: projectKey, Total: len(scoped)}

	byDay := make(map[int][]models.Record)
	for _, r := range scoped {
		d := dayOf(r.Date)
		if d >= 1 && d <= days {
			byDay[d] = append(byDay[d], r)
		}
	}

	for d := 1; d <= days; d++ {
		dc := DailyCount{Day: d, Counts: map[string]int{}}
		for _, r := range byDay[d] {
			dc.Counts[r.FormType]++
			dc.Total++
		}
		rep.Daily = append(rep.Daily, dc)
		if dc.Total > 0 {
			rep.ActiveDays = append(rep.ActiveDays, dc)
		}
	}

	for w := 1; w <= 4; w++ {
		first, last := (w-1)*7+1, w*7
		if w == 4 {
			last = days // week 4 runs to month end
		}
		wc := WeekCount{Week: w}
		for d := first; d <= last; d++ {
			wc.Count += len(byDay[d])
		}
		rep.Weekly = append(rep.Weekly, wc)
	}

	typeCnt := map[string]int{}
	for _, r := range scoped {
		typeCnt[r.FormType]++
	}
	for ft, n := range typeCnt {
		rep.Distribution = append(rep.Distribution, TypeCount{
			FormType: ft,
			Name:     FormName(ft, customNames),
			Count:    n,
		})
	}
	sort.Slice(rep.Distribution, func(i, j int) bool {
		if rep.Distribution[i].Count != rep.Distribution[j].Count {
			return rep.Distribution[i].Count > rep.Distribution[j].Count
		}
		return rep.Distribution[i].FormType < rep.Distribution[j].FormType
	})

	for _, r := range scoped {
		switch r.FormType {
		case "insecticide":
			rep.Insecticide = append(rep.Insecticide, InsecticideRow{
				Date:      r.Date,
				Chemical:  r.Chemical,
				Qty:       toFloat(r.Qty),
				Remaining: toFloat(r.RemainingQty),
				Areas:     r.Areas,
			})
		case "baitstation":
			rep.BaitStations = append(rep.BaitStations, BaitStationRow{
				Date:     r.Date,
				Active:   r.ActiveStations,
				Total:    r.TotalStations,
				BaitUsed: toFloat(r.BaitUsed),
			})
		case "attendance":
			row := AttendanceRow{Date: r.Date, Time: r.Time, UserKey: r.UserKey}
			if r.Location != nil {
				row.Verified = r.Location.Verified
				row.Skipped = r.Location.Skipped
			}
			rep.Attendance = append(rep.Attendance, row)
		}
	}

	return rep, nil
}

func dayOf(date string) int {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0
	}
	d, _ := strconv.Atoi(parts[2])
	return d
}

func toFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
