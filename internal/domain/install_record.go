package domain

// InstallRecord is one upstream row: a single physical item installed in a room.
// Field names follow the upstream wire format.
type InstallRecord struct {
	OrderNumber    string `json:"order_number"`
	OrderDate      string `json:"order_date"`
	ProjectCode    string `json:"project_code"`
	ProjectName    string `json:"project_name"`
	UnitNo         string `json:"unit_no"`
	HouseNumber    string `json:"house_number"`
	ContactName    string `json:"contact_name"`
	ContactPhone   string `json:"contact_phone"`
	ProductDetail  string `json:"product_detail"`
	Brand          string `json:"brand"`
	ProductSize    string `json:"product_size"`
	InstallDate    string `json:"install_date"`
	InstallStatus  string `json:"install_status"`
	DocumentStatus string `json:"document_status"`
	Building       string `json:"building"`
	FloorLevel     string `json:"floor_level"`
	ItemsGroup     string `json:"items_group"`
	RoomType       string `json:"room_type"`
	InstallPoint   string `json:"install_point"`
	Color          string `json:"color"`
	SyncTimestamp  string `json:"sync_timestamp"`
}

// HasRoom reports whether the record belongs to a valid room. Records missing
// either part of the room identity are excluded from room-level aggregation.
func (r *InstallRecord) HasRoom() bool {
	return r.ProjectCode != "" && r.UnitNo != ""
}

// RoomSummary is one deduplicated, display-ready row per room. The Thai JSON
// keys are part of the wire contract with the existing reporting front-end.
type RoomSummary struct {
	RoomNumber    string `json:"roomNumber"`
	CustomerName  string `json:"customerName"`
	AddressNo     string `json:"addressNo"`
	Items         string `json:"items"`
	Color         string `json:"สีรายการติดตั้ง"`
	RoomType      string `json:"ห้องที่ติดตั้ง"`
	InstallPoint  string `json:"จุดที่ติดตั้ง"`
	InstalledDate string `json:"installedDate"`
	ID            string `json:"id"`
}

type RoomInfo struct {
	RoomNumber   string `json:"roomNumber"`
	CustomerName string `json:"customerName"`
	AddressNo    string `json:"addressNo"`
}

type RoomDetailItem struct {
	ItemsGroup    string `json:"items_group"`
	Items         string `json:"items"`
	Color         string `json:"สีรายการติดตั้ง"`
	RoomType      string `json:"ห้องที่ติดตั้ง"`
	InstallPoint  string `json:"จุดที่ติดตั้ง"`
	InstalledDate string `json:"installedDate"`
	Brand         string `json:"brand"`
	Status        string `json:"status"`
	ID            string `json:"id"`
}

// RoomDetail is the full header plus ordered item list for one room.
type RoomDetail struct {
	RoomInfo RoomInfo         `json:"roomInfo"`
	Items    []RoomDetailItem `json:"items"`
}
