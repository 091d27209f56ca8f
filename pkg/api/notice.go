package api

type SendNoticeRequest struct {
	CollectionID string `json:"collection_id" validate:"required"`
	// Message overrides the generated notice text.
	Message string `json:"message,omitempty" validate:"max=1000"`
}

type SendNoticeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LogID   string `json:"log_id"`
}
