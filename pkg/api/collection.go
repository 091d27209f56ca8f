package api

// Collection is a payment collection inside a group.
type Collection struct {
	ID           string `json:"id"`
	GroupID      string `json:"group_id"`
	Title        string `json:"title"`
	Amount       int64  `json:"amount"`
	DueDate      string `json:"due_date"`
	PaymentType  string `json:"payment_type"`
	PaymentValue string `json:"payment_value"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
}

// CollectionSummary is a collection with its member statistics.
type CollectionSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Amount        int64  `json:"amount"`
	DueDate       string `json:"due_date"`
	Status        string `json:"status"`
	PaymentType   string `json:"payment_type"`
	PaymentValue  string `json:"payment_value"`
	TotalMembers  int64  `json:"total_members"`
	ReadMembers   int64  `json:"read_members"`
	PaidMembers   int64  `json:"paid_members"`
	CurrentAmount int64  `json:"current_amount"`
}

type CreateCollectionRequest struct {
	GroupID      string `json:"group_id" validate:"required"`
	Title        string `json:"title" validate:"required,max=200"`
	Amount       int64  `json:"amount" validate:"min=0"`
	DueDate      string `json:"due_date" validate:"required"`
	PaymentType  string `json:"payment_type" validate:"required"`
	PaymentValue string `json:"payment_value" validate:"required,max=500"`
}

type CreateCollectionResponse struct {
	Collection *Collection `json:"collection"`
}

type ListCollectionsRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

type ListCollectionsResponse struct {
	Collections []*Collection `json:"collections"`
}

type GetCollectionRequest struct {
	CollectionID string `json:"collection_id" validate:"required"`
}

type GetCollectionResponse struct {
	Collection *Collection `json:"collection"`
}

type UpdateCollectionRequest struct {
	CollectionID string  `json:"collection_id" validate:"required"`
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Amount       *int64  `json:"amount,omitempty" validate:"omitempty,min=0"`
	DueDate      *string `json:"due_date,omitempty"`
	PaymentType  *string `json:"payment_type,omitempty"`
	PaymentValue *string `json:"payment_value,omitempty" validate:"omitempty,min=1,max=500"`
}

type UpdateCollectionResponse struct {
	Collection *Collection `json:"collection"`
}

type DeleteCollectionRequest struct {
	CollectionID string `json:"collection_id" validate:"required"`
}

type GetCollectionSummaryRequest struct {
	CollectionID string `json:"collection_id" validate:"required"`
}

type GetCollectionSummaryResponse struct {
	Summary *CollectionSummary `json:"summary"`
}
