package checklist

import (
	"sort"
	"strings"
)

// AllRegions is the region selector sentinel matching every row.
const AllRegions = "All"

// Row is one checklist line: a boss joined with its completion flag and its
// current filter visibility. The row list is built once at load time and
// only Checked and Visible mutate afterward.
type Row struct {
	Region  string
	Name    string
	Checked bool
	Visible bool
}

// BuildRows flattens the catalog into one row per boss, preserving catalog
// order. Checked comes from completion-set membership, Visible starts true.
func BuildRows(catalog []RegionEntry, state *State) []Row {
	var rows []Row
	for _, entry := range catalog {
		for _, boss := range entry.Bosses {
			rows = append(rows, Row{
				Region:  entry.Region,
				Name:    boss,
				Checked: state.Contains(entry.Region, boss),
				Visible: true,
			})
		}
	}
	return rows
}

// Regions returns the distinct region names plus the "All" sentinel, sorted
// lexicographically. "All" is present even when the row list is empty.
func Regions(rows []Row) []string {
	seen := map[string]bool{AllRegions: true}
	regions := []string{AllRegions}
	for _, r := range rows {
		if !seen[r.Region] {
			seen[r.Region] = true
			regions = append(regions, r.Region)
		}
	}
	sort.Strings(regions)
	return regions
}

// ApplyFilter recomputes every row's visibility as the conjunction of a
// region match and a case-insensitive substring match of term against the
// boss name or region. Region comparison is exact and case-sensitive. The
// whole list is recomputed on every call.
func ApplyFilter(rows []Row, region, term string) {
	term = strings.ToLower(term)
	for i := range rows {
		r := &rows[i]
		regionMatch := region == AllRegions || r.Region == region
		textMatch := strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Region), term)
		r.Visible = regionMatch && textMatch
	}
}
