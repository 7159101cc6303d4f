package models

// Itinerary is the persisted record of a generated trip. Only the identifying
// metadata is stored; the day-by-day breakdown lives in the response.
type Itinerary struct {
	ItineraryID string `json:"itineraryid" bson:"itineraryid,omitempty"`
	Location    string `json:"location" bson:"location"`
	Description string `json:"description" bson:"description"`
	StartDate   string `json:"startDate" bson:"startDate"`
	EndDate     string `json:"endDate" bson:"endDate"`
}
