package models

import "fmt"

type SortMode string

const (
	SortNewest  SortMode = "newest"
	SortPopular SortMode = "popular"
)

func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortNewest, SortPopular:
		return SortMode(s), nil
	}
	return SortNewest, fmt.Errorf("unknown sort mode %q", s)
}
