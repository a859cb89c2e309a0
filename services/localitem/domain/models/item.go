package models

// ItemType classifies a local item. The server carries unknown values
// untouched; the enumeration exists for clients and seed data, not for
// validation.
type ItemType string

// Known item categories.
const (
	TypeRestaurant     ItemType = "restaurant"
	TypeCafe           ItemType = "cafe"
	TypeBar            ItemType = "bar"
	TypeFoodTruck      ItemType = "food_truck"
	TypeBakery         ItemType = "bakery"
	TypePark           ItemType = "park"
	TypeLake           ItemType = "lake"
	TypeGarden         ItemType = "garden"
	TypeBeach          ItemType = "beach"
	TypeHikingTrail    ItemType = "hiking_trail"
	TypeMuseum         ItemType = "museum"
	TypeTheater        ItemType = "theater"
	TypeLandmark       ItemType = "landmark"
	TypeArtGallery     ItemType = "art_gallery"
	TypeHistoricSite   ItemType = "historic_site"
	TypeLibrary        ItemType = "library"
	TypeConcert        ItemType = "concert"
	TypeFestival       ItemType = "festival"
	TypeMarket         ItemType = "market"
	TypeWorkshop       ItemType = "workshop"
	TypeExhibition     ItemType = "exhibition"
	TypeEvent          ItemType = "event"
	TypeBookstore      ItemType = "bookstore"
	TypeSecretSpot     ItemType = "secret_spot"
	TypeUrbanLegend    ItemType = "urban_legend"
	TypeAbandonedPlace ItemType = "abandoned_place"
	TypeStreetArt      ItemType = "street_art"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OpeningHours holds free-text open/close times ("08:00", "late", …).
// Not validated as HH:mm.
type OpeningHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// FeaturedReview is the single highlighted user review shown on an item card.
type FeaturedReview struct {
	Author  string  `json:"author"`
	Comment string  `json:"comment"`
	Stars   float64 `json:"stars"`
}

// LocalItem is the core aggregate: one point of interest on the map.
//
// ID is assigned server-side on creation and never reassigned. Name and
// Coordinates are the only fields required at creation; Coordinates is a
// pointer because legacy documents may carry null coordinates, which the
// map client skips.
type LocalItem struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           ItemType       `json:"type"`
	Description    string         `json:"description"`
	Location       string         `json:"location"`
	Rating         float64        `json:"rating"`
	Tags           []string       `json:"tags"`
	ImageURL       string         `json:"imageUrl"`
	IsTrending     bool           `json:"isTrending"`
	OpeningHours   OpeningHours   `json:"openingHours"`
	Coordinates    *Coordinates   `json:"coordinates"`
	FeaturedReview FeaturedReview `json:"featuredReview"`
	Accessibility  []string       `json:"accessibility"`
	MysteryScore   float64        `json:"mysteryScore"`
}
