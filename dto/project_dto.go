package dto

// ParseProjectRequest carries the raw intake text for a new project
type ParseProjectRequest struct {
	Text string `json:"text" binding:"required"`
}

// DeleteProjectRequest carries the admin secret for a delete
type DeleteProjectRequest struct {
	Password string `json:"password"`
}

// ProjectUpdateRequest represents a partial update. Only non-nil fields are
// written. Immutable fields (id, job number, created) are not representable
// here, so they can never be patched.
type ProjectUpdateRequest struct {
	Client         *string `json:"client"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	PreparedFor    *string `json:"preparedFor"`
	Address        *string `json:"address"`
	GeoAddress     *string `json:"geoAddress"`
	Parcel         *string `json:"parcel"`
	Area           *string `json:"area"`
	Contact        *string `json:"contact"`
	ServiceType    *string `json:"serviceType"`
	CostEstimate   *string `json:"costEstimate"`
	Status         *string `json:"status"`
	Notes          *string `json:"notes"`
	TravelTime     *string `json:"travelTime"`
	TravelDistance *string `json:"travelDistance"`
	FolderURL      *string `json:"folderUrl"`
}

// Columns translates the request into storage column assignments. Every
// mutable field is listed exactly once, so adding a field here without a
// column entry is a visible omission rather than a silent drop.
func (r ProjectUpdateRequest) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	set := func(column string, value *string) {
		if value != nil {
			cols[column] = *value
		}
	}
	set("client", r.Client)
	set("email", r.Email)
	set("phone", r.Phone)
	set("prepared_for", r.PreparedFor)
	set("address", r.Address)
	set("geo_address", r.GeoAddress)
	set("parcel", r.Parcel)
	set("area", r.Area)
	set("contact", r.Contact)
	set("service_type", r.ServiceType)
	set("cost_estimate", r.CostEstimate)
	set("status", r.Status)
	set("notes", r.Notes)
	set("travel_time", r.TravelTime)
	set("travel_distance", r.TravelDistance)
	set("folder_url", r.FolderURL)
	return cols
}
