package store

import (
	"cmp"
	"slices"

	"2witter/models"
)

// SortedView returns posts in display order for mode. The input slice is
// not modified. Equal keys keep their input order.
func SortedView(posts []models.Post, mode models.SortMode) []models.Post {
	view := slices.Clone(posts)
	switch mode {
	case models.SortPopular:
		slices.SortStableFunc(view, func(a, b models.Post) int {
			return cmp.Compare(b.LikeCount, a.LikeCount)
		})
	default:
		slices.SortStableFunc(view, func(a, b models.Post) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	return view
}
