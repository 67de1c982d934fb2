package dto

// ProjectFields holds the structured fields pulled out of intake text.
// Empty string means "not found".
type ProjectFields struct {
	Client       string `json:"client"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PreparedFor  string `json:"preparedFor"`
	Address      string `json:"address"`
	Parcel       string `json:"parcel"`
	Area         string `json:"area"`
	ServiceType  string `json:"serviceType"`
	CostEstimate string `json:"costEstimate"`
}

// LLMExtraction is the model's JSON output. Every field is independently
// nullable; the response is never trusted as a whole object.
type LLMExtraction struct {
	Client       *string `json:"client"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	PreparedFor  *string `json:"preparedFor"`
	Address      *string `json:"address"`
	Parcel       *string `json:"parcel"`
	Area         *string `json:"area"`
	ServiceType  *string `json:"serviceType"`
	CostEstimate *string `json:"costEstimate"`
}

// Fields validates the nullable extraction field-by-field into plain values
func (e LLMExtraction) Fields() ProjectFields {
	value := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return ProjectFields{
		Client:       value(e.Client),
		Email:        value(e.Email),
		Phone:        value(e.Phone),
		PreparedFor:  value(e.PreparedFor),
		Address:      value(e.Address),
		Parcel:       value(e.Parcel),
		Area:         value(e.Area),
		ServiceType:  value(e.ServiceType),
		CostEstimate: value(e.CostEstimate),
	}
}

// TravelInfo is a formatted travel estimate from the routing collaborator
type TravelInfo struct {
	Duration string `json:"duration"`
	Distance string `json:"distance"`
}
