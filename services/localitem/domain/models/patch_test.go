package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func baseItem() LocalItem {
	return LocalItem{
		ID:          "id-1",
		Name:        "Green Bazaar",
		Type:        TypeMarket,
		Description: "Covered market",
		Rating:      4.6,
		Tags:        []string{"food", "local"},
		IsTrending:  true,
		Coordinates: &Coordinates{Lat: 42.2694, Lng: 42.7011},
		OpeningHours: OpeningHours{
			Open:  "07:00",
			Close: "18:00",
		},
	}
}

func TestItemPatch_AbsentFieldsKeepPriorValues(t *testing.T) {
	item := baseItem()

	var patch ItemPatch
	if err := json.Unmarshal([]byte(`{"rating": 4.8}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	patch.ApplyTo(&item)

	if item.Rating != 4.8 {
		t.Errorf("rating: got %v, want 4.8", item.Rating)
	}
	if item.Name != "Green Bazaar" || !item.IsTrending || item.Coordinates == nil {
		t.Errorf("untouched fields changed: %+v", item)
	}
}

func TestItemPatch_ExplicitZeroOverrides(t *testing.T) {
	item := baseItem()

	// rating: 0 is present, so it must win over the prior 4.6.
	var patch ItemPatch
	if err := json.Unmarshal([]byte(`{"rating": 0, "isTrending": false}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	patch.ApplyTo(&item)

	if item.Rating != 0 {
		t.Errorf("rating: got %v, want 0", item.Rating)
	}
	if item.IsTrending {
		t.Error("isTrending: got true, want false")
	}
}

func TestItemPatch_NestedObjectsReplacedWhole(t *testing.T) {
	item := baseItem()

	var patch ItemPatch
	if err := json.Unmarshal([]byte(`{"openingHours": {"open": "09:00"}}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	patch.ApplyTo(&item)

	// Close is absent inside the nested object, so the replacement wipes it.
	want := OpeningHours{Open: "09:00", Close: ""}
	if item.OpeningHours != want {
		t.Errorf("openingHours: got %+v, want %+v", item.OpeningHours, want)
	}
}

func TestItemPatch_TagsReplacedNotMerged(t *testing.T) {
	item := baseItem()

	var patch ItemPatch
	if err := json.Unmarshal([]byte(`{"tags": ["wine"]}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	patch.ApplyTo(&item)

	if !reflect.DeepEqual(item.Tags, []string{"wine"}) {
		t.Errorf("tags: got %v, want [wine]", item.Tags)
	}
}

func TestItemPatch_HasNoIDField(t *testing.T) {
	// A client-supplied id in the body must be ignored by decoding.
	var patch ItemPatch
	if err := json.Unmarshal([]byte(`{"id": "evil", "name": "ok"}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	item := baseItem()
	patch.ApplyTo(&item)
	if item.ID != "id-1" {
		t.Errorf("id changed to %q, ids are immutable", item.ID)
	}
}

func TestLocalItem_WireFieldNames(t *testing.T) {
	data, err := json.Marshal(baseItem())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	_ = json.Unmarshal(data, &m)

	// The browser client reads camelCase keys.
	for _, key := range []string{"imageUrl", "isTrending", "openingHours", "featuredReview", "mysteryScore"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing wire key %q in %v", key, m)
		}
	}
}
