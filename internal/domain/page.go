package domain

import "math"

type PageMeta struct {
	PageNumber    int   `json:"pageNumber"`
	ItemsPerPage  int   `json:"itemsPerPage"`
	NumberOfItems int64 `json:"numberOfItems"`
	NumberOfPages int64 `json:"numberOfPages"`
}

type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

// RandomPageMeta additionally carries the seed that fixed the ordering, so
// a caller can replay the same "random" page sequence.
type RandomPageMeta struct {
	PageMeta
	RandomizationSeed float64 `json:"randomizationSeed"`
}

type RandomPage[T any] struct {
	Items []T            `json:"items"`
	Meta  RandomPageMeta `json:"meta"`
}

func NewPageMeta(pageNumber int, itemsPerPage int, numberOfItems int64) PageMeta {
	return PageMeta{
		PageNumber:    pageNumber,
		ItemsPerPage:  itemsPerPage,
		NumberOfItems: numberOfItems,
		NumberOfPages: int64(math.Ceil(float64(numberOfItems) / float64(itemsPerPage))),
	}
}

// PageOffset is the index of the first item of a 1-based page.
func PageOffset(pageNumber int, itemsPerPage int) int {
	return itemsPerPage * (pageNumber - 1)
}
