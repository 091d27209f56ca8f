package api

// EventLog is an audit entry of a collection.
type EventLog struct {
	ID           string `json:"id"`
	CollectionID string `json:"collection_id"`
	Type         string `json:"type"`
	Message      string `json:"message"`
	CreatedAt    int64  `json:"created_at"`
}

type ListCollectionLogsRequest struct {
	CollectionID string `json:"collection_id" validate:"required"`
}

type ListCollectionLogsResponse struct {
	Logs []*EventLog `json:"logs"`
}

// ListLogsRequest pages through every log the caller owns. Limit defaults
// to 50 when zero.
type ListLogsRequest struct {
	CollectionID string `json:"collection_id,omitempty"`
	Type         string `json:"type,omitempty"`
	Limit        int    `json:"limit,omitempty" validate:"min=0,max=100"`
	Offset       int    `json:"offset,omitempty" validate:"min=0"`
}

type ListLogsResponse struct {
	Logs   []*EventLog `json:"logs"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

type GetLogStatsRequest struct{}

// DailyActivity is the number of logs on one date.
type DailyActivity struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type GetLogStatsResponse struct {
	TotalLogs      int64            `json:"total_logs"`
	ByType         map[string]int64 `json:"by_type"`
	RecentActivity []*DailyActivity `json:"recent_activity"`
}
