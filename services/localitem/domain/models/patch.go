package models

// ItemPatch is a partial LocalItem used by the update operation. Every
// mutable field is a pointer so "absent" and "zero" stay distinguishable
// after JSON decoding. ID is deliberately missing: ids are immutable.
type ItemPatch struct {
	Name           *string         `json:"name"`
	Type           *ItemType       `json:"type"`
	Description    *string         `json:"description"`
	Location       *string         `json:"location"`
	Rating         *float64        `json:"rating"`
	Tags           *[]string       `json:"tags"`
	ImageURL       *string         `json:"imageUrl"`
	IsTrending     *bool           `json:"isTrending"`
	OpeningHours   *OpeningHours   `json:"openingHours"`
	Coordinates    *Coordinates    `json:"coordinates"`
	FeaturedReview *FeaturedReview `json:"featuredReview"`
	Accessibility  *[]string       `json:"accessibility"`
	MysteryScore   *float64        `json:"mysteryScore"`
}

// ApplyTo shallow-merges the patch onto item. Fields present in the patch
// override; everything else keeps its prior value. Nested objects
// (openingHours, coordinates, featuredReview) are replaced whole, never
// deep-merged.
func (p ItemPatch) ApplyTo(item *LocalItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Type != nil {
		item.Type = *p.Type
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Rating != nil {
		item.Rating = *p.Rating
	}
	if p.Tags != nil {
		item.Tags = *p.Tags
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	if p.IsTrending != nil {
		item.IsTrending = *p.IsTrending
	}
	if p.OpeningHours != nil {
		item.OpeningHours = *p.OpeningHours
	}
	if p.Coordinates != nil {
		c := *p.Coordinates
		item.Coordinates = &c
	}
	if p.FeaturedReview != nil {
		item.FeaturedReview = *p.FeaturedReview
	}
	if p.Accessibility != nil {
		item.Accessibility = *p.Accessibility
	}
	if p.MysteryScore != nil {
		item.MysteryScore = *p.MysteryScore
	}
}
