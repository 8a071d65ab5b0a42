package request_models

type AddDeliverableRequest struct {
	Label string `json:"label" binding:"required"`
}

type ToggleDeliverableRequest struct {
	Completed bool `json:"completed"`
}

// An empty proof clears the link.
type UpdateProofRequest struct {
	Proof string `json:"proof"`
}
