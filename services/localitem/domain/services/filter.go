package services

import (
	"strings"

	"github.com/ghuser/locallister/services/localitem/domain/models"
)

// Filter holds the client-side filter state. The zero value matches every
// item: an empty search, empty tag, zero rating, or false toggle is an
// inactive predicate and always passes.
type Filter struct {
	Search        string
	Tag           string
	MinRating     float64
	OnlyTrending  bool
	OnlyEvents    bool
	OnlyBookmarks bool
}

// Active reports whether any predicate is set. An inactive filter applied
// to a collection returns the collection unchanged.
func (f Filter) Active() bool {
	return f.Search != "" || f.Tag != "" || f.MinRating > 0 ||
		f.OnlyTrending || f.OnlyEvents || f.OnlyBookmarks
}

// Matches reports whether item passes every active predicate (logical AND).
// bookmarked is consulted only when OnlyBookmarks is set; a nil set means
// nothing is bookmarked.
func (f Filter) Matches(item models.LocalItem, bookmarked map[string]bool) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Tag != "" && !containsTag(item.Tags, f.Tag) {
		return false
	}
	if item.Rating < f.MinRating {
		return false
	}
	if f.OnlyTrending && !item.IsTrending {
		return false
	}
	if f.OnlyEvents && item.Type != models.TypeEvent {
		return false
	}
	if f.OnlyBookmarks && !bookmarked[item.ID] {
		return false
	}
	return true
}

// Apply returns the subset of items matching the filter, in input order.
// The source slice is never mutated; Apply is pure and recomputable on
// every state change.
func (f Filter) Apply(items []models.LocalItem, bookmarked map[string]bool) []models.LocalItem {
	out := make([]models.LocalItem, 0, len(items))
	for _, item := range items {
		if f.Matches(item, bookmarked) {
			out = append(out, item)
		}
	}
	return out
}

// AllTags returns the de-duplicated union of every item's tags in
// first-seen order. Used to populate the tag selector; independent of any
// filter state.
func AllTags(items []models.LocalItem) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, item := range items {
		for _, tag := range item.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
