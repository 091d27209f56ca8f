package api

// Group is a named container of collections.
type Group struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	CreatedAt int64  `json:"created_at"`
}

// GroupDetail is a group with aggregates over its collections.
type GroupDetail struct {
	Group
	CollectionsCount int64 `json:"collections_count"`
	TotalAmount      int64 `json:"total_amount"`
}

type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

type GetGroupResponse struct {
	Group *GroupDetail `json:"group"`
}

type UpdateGroupRequest struct {
	GroupID string  `json:"group_id" validate:"required"`
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type    *string `json:"type,omitempty"`
}

type UpdateGroupResponse struct {
	Group *Group `json:"group"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}
