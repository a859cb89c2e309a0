package services

import (
	"reflect"
	"testing"

	"github.com/ghuser/locallister/services/localitem/domain/models"
)

func sampleItems() []models.LocalItem {
	return []models.LocalItem{
		{ID: "a", Name: "Green Bazaar", Type: models.TypeMarket, Rating: 4.6, Tags: []string{"food", "local"}, IsTrending: true},
		{ID: "b", Name: "White Bridge", Type: models.TypeLandmark, Rating: 4.5, Tags: []string{"photo-spot", "river"}},
		{ID: "c", Name: "Rioni Night Jazz", Type: models.TypeEvent, Rating: 4.2, Tags: []string{"music"}, IsTrending: true},
		{ID: "d", Name: "Okros Chardakhi Cellar", Type: models.TypeSecretSpot, Rating: 4.9, Tags: []string{"wine", "local"}},
	}
}

func ids(items []models.LocalItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestFilter_InactivePassesEverything(t *testing.T) {
	f := Filter{}
	if f.Active() {
		t.Fatal("zero filter must be inactive")
	}
	got := f.Apply(sampleItems(), nil)
	if !reflect.DeepEqual(ids(got), []string{"a", "b", "c", "d"}) {
		t.Fatalf("inactive filter changed the collection: %v", ids(got))
	}
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filter{Search: "bRiDgE"}.Apply(sampleItems(), nil)
	if !reflect.DeepEqual(ids(got), []string{"b"}) {
		t.Fatalf("search: got %v, want [b]", ids(got))
	}
}

func TestFilter_TrendingIsSubset(t *testing.T) {
	items := sampleItems()
	got := Filter{OnlyTrending: true}.Apply(items, nil)
	if !reflect.DeepEqual(ids(got), []string{"a", "c"}) {
		t.Fatalf("trending: got %v, want [a c]", ids(got))
	}
	// Trending results must be a subset of the unfiltered collection, in
	// the same relative order.
	all := Filter{}.Apply(items, nil)
	if len(got) > len(all) {
		t.Fatal("filtered result larger than source")
	}
}

func TestFilter_PredicatesCombineWithAND(t *testing.T) {
	got := Filter{Tag: "local", MinRating: 4.7}.Apply(sampleItems(), nil)
	if !reflect.DeepEqual(ids(got), []string{"d"}) {
		t.Fatalf("tag+minRating: got %v, want [d]", ids(got))
	}
}

func TestFilter_MinRatingIsInclusive(t *testing.T) {
	got := Filter{MinRating: 4.5}.Apply(sampleItems(), nil)
	if !reflect.DeepEqual(ids(got), []string{"a", "b", "d"}) {
		t.Fatalf("minRating: got %v, want [a b d]", ids(got))
	}
}

func TestFilter_OnlyEvents(t *testing.T) {
	got := Filter{OnlyEvents: true}.Apply(sampleItems(), nil)
	if !reflect.DeepEqual(ids(got), []string{"c"}) {
		t.Fatalf("events: got %v, want [c]", ids(got))
	}
}

func TestFilter_OnlyBookmarks(t *testing.T) {
	bookmarked := map[string]bool{"b": true, "d": true}
	got := Filter{OnlyBookmarks: true}.Apply(sampleItems(), bookmarked)
	if !reflect.DeepEqual(ids(got), []string{"b", "d"}) {
		t.Fatalf("bookmarks: got %v, want [b d]", ids(got))
	}

	// Nil set means nothing is bookmarked.
	got = Filter{OnlyBookmarks: true}.Apply(sampleItems(), nil)
	if len(got) != 0 {
		t.Fatalf("bookmarks with nil set: got %v, want empty", ids(got))
	}
}

func TestFilter_ApplyDoesNotMutateSource(t *testing.T) {
	items := sampleItems()
	_ = Filter{Search: "bazaar"}.Apply(items, nil)
	if !reflect.DeepEqual(ids(items), []string{"a", "b", "c", "d"}) {
		t.Fatal("Apply mutated the source slice")
	}
}

func TestAllTags_DedupFirstSeenOrder(t *testing.T) {
	got := AllTags(sampleItems())
	want := []string{"food", "local", "photo-spot", "river", "music", "wine"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AllTags: got %v, want %v", got, want)
	}
}

func TestAllTags_Empty(t *testing.T) {
	if got := AllTags(nil); len(got) != 0 {
		t.Fatalf("AllTags(nil): got %v, want empty", got)
	}
}
