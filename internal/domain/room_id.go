package domain

import (
	"fmt"
	"strings"

	"github.com/nitadee/roomreport/internal/pkg/constants"
)

// RoomID is the composite external key of a room: projectCode-unitNo.
type RoomID struct {
	ProjectCode string
	UnitNo      string
}

func (id RoomID) String() string {
	return id.ProjectCode + "-" + id.UnitNo
}

// RoomIDFor builds the identifier for a record; records without a valid room
// identity have no identifier.
func RoomIDFor(r *InstallRecord) (RoomID, bool) {
	if !r.HasRoom() {
		return RoomID{}, false
	}
	return RoomID{ProjectCode: r.ProjectCode, UnitNo: r.UnitNo}, true
}

// ParseRoomID splits an identifier on the first dash only: unit numbers may
// themselves contain dashes (e.g. "SKWG2-B1-308" is project "SKWG2", unit
// "B1-308"), so everything after the first dash belongs to the unit.
func ParseRoomID(s string) (RoomID, error) {
	projectCode, unitNo, found := strings.Cut(s, "-")
	if !found || projectCode == "" || unitNo == "" {
		return RoomID{}, fmt.Errorf("parse room id %q: %w", s, constants.ErrMalformedRoomID)
	}

	return RoomID{ProjectCode: projectCode, UnitNo: unitNo}, nil
}
