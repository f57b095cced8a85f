package models

// Room is a bookable conference room. ID is assigned by the store on
// creation and is immutable afterwards.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Occupied bool   `json:"occupied"`
}
