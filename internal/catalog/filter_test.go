// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package catalog

import (
	"reflect"
	"testing"

	"github.com/tomtom215/abiflix/internal/models"
	"github.com/tomtom215/abiflix/internal/storage"
)

func TestFilter_ConjunctionIsCommutative(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, storage.NewMemoryKV())
	all := s.ListAll()

	byType := Filter{Type: models.ContentTypeMovie}
	byCountry := Filter{Country: "USA"}
	both := Filter{Type: models.ContentTypeMovie, Country: "USA"}

	typeThenCountry := byCountry.Apply(byType.Apply(all))
	countryThenType := byType.Apply(byCountry.Apply(all))
	combined := both.Apply(all)

	if !reflect.DeepEqual(ids(typeThenCountry), ids(countryThenType)) {
		t.Errorf("order mattered: %v vs %v", ids(typeThenCountry), ids(countryThenType))
	}
	if !reflect.DeepEqual(ids(combined), ids(typeThenCountry)) {
		t.Errorf("combined filter %v differs from chained %v", ids(combined), ids(typeThenCountry))
	}

	// Intersection of the independently filtered sets.
	inCountry := map[string]bool{}
	for _, id := range ids(byCountry.Apply(all)) {
		inCountry[id] = true
	}
	var want []string
	for _, id := range ids(byType.Apply(all)) {
		if inCountry[id] {
			want = append(want, id)
		}
	}
	if !reflect.DeepEqual(ids(combined), want) {
		t.Errorf("combined = %v, want intersection %v", ids(combined), want)
	}
	if !reflect.DeepEqual(ids(combined), []string{"1"}) {
		t.Errorf("movie AND USA = %v, want [1]", ids(combined))
	}
}

func TestFilter_Apply(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, storage.NewMemoryKV())
	all := s.ListAll()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero matches all", Filter{}, []string{"1", "2", "3", "4", "5"}},
		{"genre exact", Filter{Genre: "Action"}, []string{"1", "3", "4", "5"}},
		{"genre is case sensitive", Filter{Genre: "action"}, []string{}},
		{"genre substring does not match", Filter{Genre: "Act"}, []string{}},
		{"country", Filter{Country: "Korea"}, []string{"2"}},
		{"series", Filter{Type: models.ContentTypeSeries}, []string{"2", "3"}},
		{"query", Filter{Query: "mumbai"}, []string{"4"}},
		{"all four", Filter{Query: "a", Genre: "Action", Country: "Turkey", Type: models.ContentTypeSeries}, []string{"3"}},
		{"disjoint", Filter{Country: "Japan"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ids(tt.filter.Apply(all)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}

	if !(Filter{}).IsZero() || (Filter{Genre: "Drama"}).IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestBrowse(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, storage.NewMemoryKV())

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"everything", Filter{}, []string{"1", "2", "3", "4", "5"}},
		{"search korea", Filter{Query: "korea"}, []string{"2"}},
		{"search plus type", Filter{Query: "action", Type: models.ContentTypeMovie}, []string{"1", "4", "5"}},
		{"genre without query", Filter{Genre: "Drama"}, []string{"2"}},
		{"search plus country", Filter{Query: "action", Country: "China"}, []string{"5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ids(s.Browse(tt.filter)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Browse(%+v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}
