package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ualumni-dev/ualumni/backend/internal/utils"
)

const (
	defaultPageNumber   = 1
	defaultItemsPerPage = 10
)

// readPaginationParams parses the page/per-page query parameters and
// rejects invalid values before any storage access.
func readPaginationParams(r *http.Request) (pageNumber int, itemsPerPage int, err error) {
	pageNumber = defaultPageNumber
	if raw := r.URL.Query().Get("page"); raw != "" {
		pageNumber, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("invalid page number")
		}
	}
	if pageNumber < 1 {
		return 0, 0, errors.New("invalid page number")
	}

	itemsPerPage = defaultItemsPerPage
	if raw := r.URL.Query().Get("per-page"); raw != "" {
		itemsPerPage, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("invalid number of items per page")
		}
	}
	if itemsPerPage < 1 {
		return 0, 0, errors.New("invalid number of items per page")
	}

	return pageNumber, itemsPerPage, nil
}

// readRandomizationSeed parses the optional randomization-seed parameter,
// generating a fresh seed when the caller did not supply one. The seed in
// use is always reported back in the page meta.
func readRandomizationSeed(r *http.Request) (float64, error) {
	raw := r.URL.Query().Get("randomization-seed")
	if raw == "" {
		return utils.GenerateRandomizationSeed(), nil
	}

	seed, err := strconv.ParseFloat(raw, 64)
	if err != nil || seed < -1 || seed > 1 {
		return 0, errors.New("invalid randomization seed")
	}

	return seed, nil
}
