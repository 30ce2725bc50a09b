package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nitadee/roomreport/internal/domain"
)

// toSummaries reduces raw records to one summary per unique room. Records are
// walked in input order with an explicit seen-set, so the first record for a
// room wins and later duplicates contribute nothing, even when their customer
// or address fields differ.
func toSummaries(records []domain.InstallRecord) []domain.RoomSummary {
	summaries := make([]domain.RoomSummary, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i := range records {
		rec := &records[i]
		roomID, ok := domain.RoomIDFor(rec)
		if !ok {
			continue
		}

		key := roomID.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		summaries = append(summaries, domain.RoomSummary{
			RoomNumber:    key,
			CustomerName:  rec.ContactName,
			AddressNo:     rec.HouseNumber,
			Items:         rec.ProductDetail,
			Color:         "", // not carried at summary level
			RoomType:      rec.RoomType,
			InstallPoint:  rec.InstallPoint,
			InstalledDate: rec.InstallDate,
			ID:            key,
		})
	}

	sortSummaries(summaries)
	return summaries
}

// sortSummaries orders summaries newest install date first. The room-number
// fallback applies per compared pair whenever either side has no date, so
// undated rooms interleave with dated ones by name rather than sinking to the
// end. Install dates are ISO yyyy-mm-dd strings, so lexicographic comparison
// is chronological.
func sortSummaries(summaries []domain.RoomSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := &summaries[i], &summaries[j]
		if a.InstalledDate != "" && b.InstalledDate != "" {
			return a.InstalledDate > b.InstalledDate
		}
		return a.RoomNumber < b.RoomNumber
	})
}

// Filters are the browsing-list search fields. Each non-empty pattern is
// matched case-insensitively as a substring; all supplied patterns must match.
type Filters struct {
	RoomNumber   string
	CustomerName string
	AddressNo    string
}

func (f Filters) IsZero() bool {
	return f == Filters{}
}

func (f Filters) key() string {
	return f.RoomNumber + "|" + f.CustomerName + "|" + f.AddressNo
}

func (f Filters) matches(s *domain.RoomSummary) bool {
	return containsFold(s.RoomNumber, f.RoomNumber) &&
		containsFold(s.CustomerName, f.CustomerName) &&
		containsFold(s.AddressNo, f.AddressNo)
}

func containsFold(value, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

// filterSummaries returns the matching subset in input order; the source slice
// is never mutated.
func filterSummaries(summaries []domain.RoomSummary, f Filters) []domain.RoomSummary {
	if f.IsZero() {
		return summaries
	}

	filtered := make([]domain.RoomSummary, 0, len(summaries))
	for i := range summaries {
		if f.matches(&summaries[i]) {
			filtered = append(filtered, summaries[i])
		}
	}

	return filtered
}

// resolveDetail assembles the detail view for one room from the full record
// set. Matching is exact equality on both identifier parts, unlike the
// substring matching of the browsing filter. Returns nil when no record
// belongs to the room.
func resolveDetail(roomID domain.RoomID, records []domain.InstallRecord) *domain.RoomDetail {
	key := roomID.String()

	var detail *domain.RoomDetail
	for i := range records {
		rec := &records[i]
		if rec.ProjectCode != roomID.ProjectCode || rec.UnitNo != roomID.UnitNo {
			continue
		}

		if detail == nil {
			detail = &domain.RoomDetail{
				RoomInfo: domain.RoomInfo{
					RoomNumber:   key,
					CustomerName: rec.ContactName,
					AddressNo:    rec.HouseNumber,
				},
			}
		}

		detail.Items = append(detail.Items, domain.RoomDetailItem{
			ItemsGroup:    rec.ItemsGroup,
			Items:         rec.ProductDetail,
			Color:         rec.Color,
			RoomType:      rec.RoomType,
			InstallPoint:  rec.InstallPoint,
			InstalledDate: rec.InstallDate,
			Brand:         rec.Brand,
			Status:        rec.InstallStatus,
			ID:            key + "-" + strconv.Itoa(len(detail.Items)),
		})
	}

	return detail
}
