package report

import (
	"testing"

	"github.com/nitadee/roomreport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(project, unit string) domain.InstallRecord {
	return domain.InstallRecord{ProjectCode: project, UnitNo: unit}
}

func TestToSummaries_FirstRecordWins(t *testing.T) {
	records := []domain.InstallRecord{
		{ProjectCode: "A", UnitNo: "1", ContactName: "X"},
		{ProjectCode: "A", UnitNo: "1", ContactName: "Y"},
	}

	summaries := toSummaries(records)

	require.Len(t, summaries, 1)
	assert.Equal(t, "A-1", summaries[0].RoomNumber)
	assert.Equal(t, "X", summaries[0].CustomerName)
	assert.Equal(t, "A-1", summaries[0].ID)
}

func TestToSummaries_ExcludesRecordsWithoutRoomIdentity(t *testing.T) {
	records := []domain.InstallRecord{
		rec("", "1"),
		rec("A", ""),
		rec("", ""),
		rec("A", "2"),
	}

	summaries := toSummaries(records)

	require.Len(t, summaries, 1)
	assert.Equal(t, "A-2", summaries[0].RoomNumber)
}

func TestToSummaries_SummaryFields(t *testing.T) {
	records := []domain.InstallRecord{
		{
			ProjectCode:   "70401",
			UnitNo:        "0209",
			ContactName:   "นาย ทดสอบ",
			HouseNumber:   "177/210",
			ProductDetail: "เครื่องปรับอากาศ SAMSUNG 9400 BTU",
			RoomType:      "ห้องนอน",
			InstallPoint:  "ผนัง",
			InstallDate:   "2024-07-25",
			Color:         "ขาว",
		},
	}

	summaries := toSummaries(records)

	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, "70401-0209", s.RoomNumber)
	assert.Equal(t, "นาย ทดสอบ", s.CustomerName)
	assert.Equal(t, "177/210", s.AddressNo)
	assert.Equal(t, "เครื่องปรับอากาศ SAMSUNG 9400 BTU", s.Items)
	assert.Equal(t, "ห้องนอน", s.RoomType)
	assert.Equal(t, "ผนัง", s.InstallPoint)
	assert.Equal(t, "2024-07-25", s.InstalledDate)
	// Color is only carried at detail level.
	assert.Equal(t, "", s.Color)
}

func TestSortSummaries_DatedPairsNewestFirst(t *testing.T) {
	summaries := []domain.RoomSummary{
		{RoomNumber: "A-1", InstalledDate: "2024-01-10"},
		{RoomNumber: "A-2", InstalledDate: "2024-06-01"},
		{RoomNumber: "A-3", InstalledDate: "2023-12-31"},
	}

	sortSummaries(summaries)

	assert.Equal(t, "A-2", summaries[0].RoomNumber)
	assert.Equal(t, "A-1", summaries[1].RoomNumber)
	assert.Equal(t, "A-3", summaries[2].RoomNumber)
}

func TestSortSummaries_UndatedPairFallsBackToRoomNumber(t *testing.T) {
	summaries := []domain.RoomSummary{
		{RoomNumber: "B-9", InstalledDate: ""},
		{RoomNumber: "A-1", InstalledDate: ""},
	}

	sortSummaries(summaries)

	assert.Equal(t, "A-1", summaries[0].RoomNumber)
	assert.Equal(t, "B-9", summaries[1].RoomNumber)
}

func TestSortSummaries_MixedPairOrderedByRoomNumberRegardlessOfDate(t *testing.T) {
	// When only one side has a date the comparator falls back to room number,
	// even though the dated side is very recent.
	summaries := []domain.RoomSummary{
		{RoomNumber: "Z-1", InstalledDate: "2099-01-01"},
		{RoomNumber: "A-1", InstalledDate: ""},
	}

	sortSummaries(summaries)

	assert.Equal(t, "A-1", summaries[0].RoomNumber)
	assert.Equal(t, "Z-1", summaries[1].RoomNumber)
}

func TestFilterSummaries_Conjunction(t *testing.T) {
	summaries := []domain.RoomSummary{
		{RoomNumber: "70401-0209", CustomerName: "Somchai", AddressNo: "177/210"},
		{RoomNumber: "70402-0100", CustomerName: "Somchai", AddressNo: "5/1"},
		{RoomNumber: "70401-0303", CustomerName: "Malee", AddressNo: "177/2"},
	}

	got := filterSummaries(summaries, Filters{RoomNumber: "70401", CustomerName: "somchai"})

	require.Len(t, got, 1)
	assert.Equal(t, "70401-0209", got[0].RoomNumber)
}

func TestFilterSummaries_RoomNumberSubstring(t *testing.T) {
	summaries := []domain.RoomSummary{
		{RoomNumber: "70401-0209"},
		{RoomNumber: "70402-0100"},
	}

	got := filterSummaries(summaries, Filters{RoomNumber: "70401"})

	require.Len(t, got, 1)
	assert.Equal(t, "70401-0209", got[0].RoomNumber)
}

func TestFilterSummaries_EmptyFiltersReturnInputUnchanged(t *testing.T) {
	summaries := []domain.RoomSummary{
		{RoomNumber: "B-2"},
		{RoomNumber: "A-1"},
	}

	got := filterSummaries(summaries, Filters{})

	assert.Equal(t, summaries, got)
}

func TestFilterSummaries_PreservesOrderAndInput(t *testing.T) {
	summaries := []domain.RoomSummary{
		{RoomNumber: "C-3", CustomerName: "n"},
		{RoomNumber: "A-1", CustomerName: "n"},
		{RoomNumber: "B-2", CustomerName: "x"},
	}

	got := filterSummaries(summaries, Filters{CustomerName: "N"})

	require.Len(t, got, 2)
	assert.Equal(t, "C-3", got[0].RoomNumber)
	assert.Equal(t, "A-1", got[1].RoomNumber)
	// source slice untouched
	assert.Len(t, summaries, 3)
	assert.Equal(t, "B-2", summaries[2].RoomNumber)
}

func TestResolveDetail_BuildsOrderedItemsWithPositionalIDs(t *testing.T) {
	records := []domain.InstallRecord{
		{ProjectCode: "SKWG2", UnitNo: "B1-308", ContactName: "X", HouseNumber: "9/9", ProductDetail: "aircon", ItemsGroup: "AC", Brand: "SAMSUNG", InstallStatus: "done", InstallDate: "2024-01-01", Color: "white"},
		{ProjectCode: "OTHER", UnitNo: "B1-308", ProductDetail: "ignored"},
		{ProjectCode: "SKWG2", UnitNo: "B1-308", ContactName: "Y", ProductDetail: "curtain", ItemsGroup: "CT"},
	}

	detail := resolveDetail(domain.RoomID{ProjectCode: "SKWG2", UnitNo: "B1-308"}, records)

	require.NotNil(t, detail)
	assert.Equal(t, "SKWG2-B1-308", detail.RoomInfo.RoomNumber)
	// header comes from the first matching record
	assert.Equal(t, "X", detail.RoomInfo.CustomerName)
	assert.Equal(t, "9/9", detail.RoomInfo.AddressNo)

	require.Len(t, detail.Items, 2)
	assert.Equal(t, "aircon", detail.Items[0].Items)
	assert.Equal(t, "SKWG2-B1-308-0", detail.Items[0].ID)
	assert.Equal(t, "curtain", detail.Items[1].Items)
	assert.Equal(t, "SKWG2-B1-308-1", detail.Items[1].ID)
}

func TestResolveDetail_ExactMatchNotSubstring(t *testing.T) {
	records := []domain.InstallRecord{
		{ProjectCode: "70401", UnitNo: "02090"},
		{ProjectCode: "704011", UnitNo: "0209"},
	}

	detail := resolveDetail(domain.RoomID{ProjectCode: "70401", UnitNo: "0209"}, records)

	assert.Nil(t, detail)
}
