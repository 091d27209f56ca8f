package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
	"github.com/mmynk/totalmanager/pkg/api"
	"github.com/mmynk/totalmanager/pkg/api/apiconnect"
)

const (
	// DefaultLogLimit is the page size of ListLogs when none is given.
	DefaultLogLimit = 50
	// RecentActivityDays is how many active days GetLogStats reports.
	RecentActivityDays = 7
)

var _ apiconnect.LogServiceHandler = (*LogService)(nil)

// LogService implements the Connect LogService. Logs are read-only here;
// they are written by the operations they record.
type LogService struct {
	deps
}

// NewLogService creates a new LogService.
func NewLogService(store storage.Store, opts ...Option) *LogService {
	return &LogService{deps: newDeps(store, opts)}
}

// ListCollectionLogs returns every log of one collection, newest first.
func (s *LogService) ListCollectionLogs(ctx context.Context, req *connect.Request[api.ListCollectionLogsRequest]) (*connect.Response[api.ListCollectionLogsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListCollectionLogs request received", "collection_id", req.Msg.CollectionID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("ListCollectionLogs", err)
	}
	if _, err := s.guard.Collection(ctx, req.Msg.CollectionID, userID); err != nil {
		return nil, fail("ListCollectionLogs", err, "collection_id", req.Msg.CollectionID)
	}

	logs, err := s.store.ListEventLogsByCollection(ctx, req.Msg.CollectionID)
	if err != nil {
		return nil, fail("ListCollectionLogs", err, "collection_id", req.Msg.CollectionID)
	}
	return connect.NewResponse(&api.ListCollectionLogsResponse{Logs: toAPIEventLogs(logs)}), nil
}

// ListLogs pages through the logs of every collection the caller owns.
func (s *LogService) ListLogs(ctx context.Context, req *connect.Request[api.ListLogsRequest]) (*connect.Response[api.ListLogsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListLogs request received",
		"user_id", userID,
		"collection_id", req.Msg.CollectionID,
		"type", req.Msg.Type,
		"limit", req.Msg.Limit,
		"offset", req.Msg.Offset,
	)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("ListLogs", err)
	}

	filter := models.LogFilter{
		CollectionID: req.Msg.CollectionID,
		Limit:        req.Msg.Limit,
		Offset:       req.Msg.Offset,
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultLogLimit
	}
	if req.Msg.Type != "" {
		typ, err := models.ParseLogType(req.Msg.Type)
		if err != nil {
			return nil, fail("ListLogs", invalid("type: %v", err))
		}
		filter.Type = typ
	}
	if filter.CollectionID != "" {
		if _, err := s.guard.Collection(ctx, filter.CollectionID, userID); err != nil {
			return nil, fail("ListLogs", err, "collection_id", filter.CollectionID)
		}
	}

	logs, total, err := s.store.ListEventLogsByOwner(ctx, userID, filter)
	if err != nil {
		return nil, fail("ListLogs", err)
	}

	return connect.NewResponse(&api.ListLogsResponse{
		Logs:   toAPIEventLogs(logs),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}), nil
}

// GetLogStats counts the caller's logs by type and by recent day.
func (s *LogService) GetLogStats(ctx context.Context, req *connect.Request[api.GetLogStatsRequest]) (*connect.Response[api.GetLogStatsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetLogStats request received", "user_id", userID)

	stats, err := s.store.GetLogStats(ctx, userID, RecentActivityDays)
	if err != nil {
		return nil, fail("GetLogStats", err)
	}

	byType := make(map[string]int64, len(stats.ByType))
	for typ, n := range stats.ByType {
		byType[string(typ)] = n
	}
	recent := make([]*api.DailyActivity, len(stats.RecentActivity))
	for i, d := range stats.RecentActivity {
		recent[i] = &api.DailyActivity{Date: d.Date, Count: d.Count}
	}

	return connect.NewResponse(&api.GetLogStatsResponse{
		TotalLogs:      stats.Total,
		ByType:         byType,
		RecentActivity: recent,
	}), nil
}
