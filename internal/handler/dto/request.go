package dto

type ReserveRequest struct {
	PropertyID  string `json:"property_id" binding:"required,uuid"`
	RequesterID string `json:"requester_id" binding:"required,uuid"`
	OwnerID     string `json:"owner_id" binding:"required,uuid"`
	Kind        string `json:"kind" binding:"required"`
	// stays: RFC3339 check_in / check_out; inspections: RFC3339 slot_at
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	SlotAt   string `json:"slot_at"`
}

type TransitionRequest struct {
	ActorID string `json:"actor_id" binding:"required,uuid"`
	Reason  string `json:"reason"`
}
