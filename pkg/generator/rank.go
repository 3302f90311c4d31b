package generator

import (
	"sort"

	"tutorial-landing/pkg/models"
)

// Rank orders entries newest first, with undated entries after all dated ones in
// their original relative order, and flags the first newCount dated entries as new.
// Undated entries are never flagged and do not consume a slot.
func Rank(entries []Entry, newCount int) []models.Video {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		switch {
		case a.Dated() && b.Dated():
			return a.PublishedAt.After(b.PublishedAt)
		default:
			return a.Dated() && !b.Dated()
		}
	})

	videos := make([]models.Video, len(ordered))
	flagged := 0
	for i, e := range ordered {
		v := e.Video
		v.IsNew = false
		if e.Dated() && flagged < newCount {
			v.IsNew = true
			flagged++
		}
		videos[i] = v
	}
	return videos
}

// Videos strips the generation-only fields and keeps the input order.
func Videos(entries []Entry) []models.Video {
	videos := make([]models.Video, len(entries))
	for i, e := range entries {
		videos[i] = e.Video
	}
	return videos
}
