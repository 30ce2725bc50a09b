package report

import (
	"context"
	"errors"

	"github.com/nitadee/roomreport/internal/domain"
	"github.com/nitadee/roomreport/internal/pkg/constants"
	"github.com/nitadee/roomreport/internal/pkg/logger"
	"github.com/nitadee/roomreport/internal/pkg/querycache"
	"github.com/nitadee/roomreport/internal/pkg/upstream"
)

// Source is the upstream read API the report projections are computed from.
type Source interface {
	FetchRecords(ctx context.Context, params upstream.RecordParams) ([]domain.InstallRecord, error)
	FetchStats(ctx context.Context) (*domain.Stats, error)
	FetchProjects(ctx context.Context) (*domain.ProjectList, error)
	FetchStatusSummary(ctx context.Context) (*domain.StatusSummary, error)
}

type Service struct {
	source Source

	summaries *querycache.Cache[[]domain.RoomSummary]
	details   *querycache.Cache[*domain.RoomDetail]
	stats     *querycache.Cache[*domain.Stats]
	projects  *querycache.Cache[*domain.ProjectList]
	statuses  *querycache.Cache[*domain.StatusSummary]
}

func NewService(source Source, cacheCfg querycache.Config) *Service {
	return &Service{
		source:    source,
		summaries: querycache.New[[]domain.RoomSummary](cacheCfg),
		details:   querycache.New[*domain.RoomDetail](cacheCfg),
		stats:     querycache.New[*domain.Stats](cacheCfg),
		projects:  querycache.New[*domain.ProjectList](cacheCfg),
		statuses:  querycache.New[*domain.StatusSummary](cacheCfg),
	}
}

// ListRooms returns the filtered browsing list. Upstream failures are fully
// recovered here: the browsing view must always render, so after the cache's
// retries are exhausted the fixed demonstration row stands in for real data.
func (s *Service) ListRooms(ctx context.Context, filters Filters) []domain.RoomSummary {
	summaries, err := s.summaries.Get(ctx, "reportData|"+filters.key(), func(ctx context.Context) ([]domain.RoomSummary, error) {
		records, err := s.source.FetchRecords(ctx, upstream.RecordParams{})
		if err != nil {
			return nil, err
		}
		return toSummaries(records), nil
	})
	if err != nil {
		logger.Warnf(ctx, "list rooms: falling back to demo data: %s", err.Error())
		summaries = demoSummaries()
	}

	return filterSummaries(summaries, filters)
}

// GetRoomDetail resolves one room by its composite identifier. A missing or
// malformed identifier surfaces as a coded not-found error; an upstream outage
// surfaces as a coded bad-gateway error, never as a raw transport failure.
func (s *Service) GetRoomDetail(ctx context.Context, id string) (*domain.RoomDetail, error) {
	roomID, err := domain.ParseRoomID(id)
	if err != nil {
		return nil, err
	}

	detail, err := s.details.Get(ctx, "roomDetails|"+roomID.String(), func(ctx context.Context) (*domain.RoomDetail, error) {
		records, err := s.source.FetchRecords(ctx, upstream.RecordParams{})
		if err != nil {
			return nil, err
		}
		// A nil detail (room not found) is a valid, cacheable resolution.
		return resolveDetail(roomID, records), nil
	})
	if err != nil {
		logger.Errorf(ctx, "get room detail %s: %s", id, err.Error())
		return nil, constants.ErrUpstreamFailed
	}

	if detail == nil {
		return nil, constants.ErrRoomNotFound
	}

	return detail, nil
}

// GetStats proxies the upstream aggregates, degrading to an all-zero structure
// when upstream is unreachable.
func (s *Service) GetStats(ctx context.Context) *domain.Stats {
	stats, err := s.stats.Get(ctx, "stats", func(ctx context.Context) (*domain.Stats, error) {
		return s.source.FetchStats(ctx)
	})
	if err != nil {
		logger.Warnf(ctx, "get stats: falling back to empty stats: %s", err.Error())
		return domain.EmptyStats()
	}

	return stats
}

func (s *Service) GetProjects(ctx context.Context) *domain.ProjectList {
	projects, err := s.projects.Get(ctx, "projects", func(ctx context.Context) (*domain.ProjectList, error) {
		return s.source.FetchProjects(ctx)
	})
	if err != nil {
		logger.Warnf(ctx, "get projects: falling back to empty list: %s", err.Error())
		return &domain.ProjectList{Projects: []string{}}
	}

	return projects
}

func (s *Service) GetStatusSummary(ctx context.Context) *domain.StatusSummary {
	summary, err := s.statuses.Get(ctx, "statusSummary", func(ctx context.Context) (*domain.StatusSummary, error) {
		return s.source.FetchStatusSummary(ctx)
	})
	if err != nil {
		logger.Warnf(ctx, "get status summary: falling back to empty list: %s", err.Error())
		return &domain.StatusSummary{StatusSummary: []domain.StatusCount{}}
	}

	return summary
}

// InvalidateRooms drops every cached browsing-list entry for the given
// filters; a later in-flight fetch for the same key will be discarded.
func (s *Service) InvalidateRooms(filters Filters) {
	s.summaries.Invalidate("reportData|" + filters.key())
}

// demoSummaries is the fixed demonstration row shown when upstream is down.
func demoSummaries() []domain.RoomSummary {
	return []domain.RoomSummary{
		{
			RoomNumber:    "70401-0209",
			CustomerName:  "นาย ฉมาดล เดชารัมย์",
			AddressNo:     "177/210",
			Items:         "เครื่องปรับอากาศ SAMSUNG 9400 BTU",
			InstalledDate: "2024-07-25",
			ID:            "70401-0209",
		},
	}
}

// IsNotFound reports whether err is one of the room-not-found outcomes, as
// opposed to an upstream failure.
func IsNotFound(err error) bool {
	return errors.Is(err, constants.ErrRoomNotFound) || errors.Is(err, constants.ErrMalformedRoomID)
}
