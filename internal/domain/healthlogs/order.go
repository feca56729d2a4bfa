package healthlogs

import (
	"sort"
	"time"
)

// Newer define el orden total de los logs: fecha desc y, a igual fecha, id asc.
func Newer(aDate time.Time, aID string, bDate time.Time, bID string) bool {
	if !aDate.Equal(bDate) {
		return aDate.After(bDate)
	}
	return aID < bID
}

// SortEntries ordena in-place con el orden total de Newer.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Newer(entries[i].Date, entries[i].ID, entries[j].Date, entries[j].ID)
	})
}
