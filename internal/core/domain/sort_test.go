package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameSort_APISort(t *testing.T) {
	tests := []struct {
		name      string
		sort      NameSort
		field     string
		direction string
	}{
		{name: "none defaults to updated desc", sort: NameSortNone, field: "updated", direction: "desc"},
		{name: "ascending by full name", sort: NameSortAsc, field: "full_name", direction: "asc"},
		{name: "descending by full name", sort: NameSortDesc, field: "full_name", direction: "desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, direction := tt.sort.APISort()
			assert.Equal(t, tt.field, field)
			assert.Equal(t, tt.direction, direction)
		})
	}
}

func TestSortByStars_None_PreservesOrder(t *testing.T) {
	repos := []Repository{
		{Name: "zeta", Stars: 3},
		{Name: "alpha", Stars: 9},
		{Name: "mid", Stars: 5},
	}

	out := SortByStars(repos, StarSortNone)

	assert.Equal(t, repos, out)
}

func TestSortByStars_Ascending(t *testing.T) {
	repos := []Repository{
		{Name: "zeta", Stars: 3},
		{Name: "alpha", Stars: 9},
		{Name: "mid", Stars: 5},
	}

	out := SortByStars(repos, StarSortAsc)

	assert.Equal(t, []int{3, 5, 9}, []int{out[0].Stars, out[1].Stars, out[2].Stars})
	// Input untouched
	assert.Equal(t, 3, repos[0].Stars)
}

func TestSortByStars_Descending(t *testing.T) {
	repos := []Repository{
		{Name: "zeta", Stars: 3},
		{Name: "alpha", Stars: 9},
		{Name: "mid", Stars: 5},
	}

	out := SortByStars(repos, StarSortDesc)

	assert.Equal(t, []int{9, 5, 3}, []int{out[0].Stars, out[1].Stars, out[2].Stars})
}

func TestSortByStars_StableOnTies(t *testing.T) {
	repos := []Repository{
		{Name: "first", Stars: 2},
		{Name: "second", Stars: 2},
		{Name: "third", Stars: 2},
	}

	out := SortByStars(repos, StarSortDesc)

	assert.Equal(t, "first", out[0].Name)
	assert.Equal(t, "second", out[1].Name)
	assert.Equal(t, "third", out[2].Name)
}

func TestNameSort_String(t *testing.T) {
	assert.Equal(t, "updated", NameSortNone.String())
	assert.Equal(t, "name-asc", NameSortAsc.String())
	assert.Equal(t, "name-desc", NameSortDesc.String())
}

func TestStarSort_String(t *testing.T) {
	assert.Equal(t, "none", StarSortNone.String())
	assert.Equal(t, "stars-asc", StarSortAsc.String())
	assert.Equal(t, "stars-desc", StarSortDesc.String())
}
