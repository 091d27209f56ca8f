package api

// Member is a participant's read/paid state within a collection.
type Member struct {
	ID           string `json:"id"`
	CollectionID string `json:"collection_id"`
	DisplayName  string `json:"display_name"`
	Phone        string `json:"phone,omitempty"`
	ReadAt       *int64 `json:"read_at,omitempty"`
	PaidAt       *int64 `json:"paid_at,omitempty"`
	CreatedAt    int64  `json:"created_at"`
}

// NewMember is the input of one member to add.
type NewMember struct {
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,digits,max=20"`
}

type AddMemberRequest struct {
	CollectionID string `json:"collection_id" validate:"required"`
	NewMember
}

type AddMemberResponse struct {
	Member *Member `json:"member"`
}

type ListMembersRequest struct {
	CollectionID string `json:"collection_id" validate:"required"`
}

type ListMembersResponse struct {
	Members []*Member `json:"members"`
}

type UpdateMemberRequest struct {
	MemberID    string  `json:"member_id" validate:"required"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,digits,max=20"`
}

type UpdateMemberResponse struct {
	Member *Member `json:"member"`
}

type DeleteMemberRequest struct {
	MemberID string `json:"member_id" validate:"required"`
}

// BulkAddMembersRequest adds many members at once. Entries are validated
// individually; invalid ones are reported, valid ones are stored.
type BulkAddMembersRequest struct {
	CollectionID string       `json:"collection_id" validate:"required"`
	Members      []*NewMember `json:"members" validate:"required,min=1"`
}

// BulkMemberError describes one rejected entry of a bulk add.
type BulkMemberError struct {
	Index       int    `json:"index"`
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

type BulkAddMembersResponse struct {
	Created int                `json:"created"`
	Failed  int                `json:"failed"`
	Members []*Member          `json:"members"`
	Errors  []*BulkMemberError `json:"errors,omitempty"`
}

type MarkReadRequest struct {
	MemberID string `json:"member_id" validate:"required"`
}

type MarkReadResponse struct {
	Member *Member `json:"member"`
}

type MarkPaidRequest struct {
	MemberID string `json:"member_id" validate:"required"`
}

type MarkPaidResponse struct {
	Member *Member `json:"member"`
}
