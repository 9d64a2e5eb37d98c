package schemas

// RegistrantShort identifies a registrant in status-change requests.
type RegistrantShort struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
}

// Registrant is the full registration record for a meeting.
type Registrant struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Zip       string `json:"zip,omitempty"`
	State     string `json:"state,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Org       string `json:"org,omitempty"`
	JobTitle  string `json:"job_title,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

func (r *Registrant) Validate() error {
	switch {
	case r.Email == "":
		return missingField("Registrant", "email")
	case r.FirstName == "":
		return missingField("Registrant", "first_name")
	case r.LastName == "":
		return missingField("Registrant", "last_name")
	}
	return nil
}

// RegistrantList is the merged envelope of the registrant list endpoint.
type RegistrantList struct {
	PageCount    int          `json:"page_count"`
	PageNumber   int          `json:"page_number"`
	PageSize     int          `json:"page_size"`
	TotalRecords int          `json:"total_records"`
	Registrants  []Registrant `json:"registrants"`
}

// RegistrantConfirmation is the response to adding a meeting registrant.
type RegistrantConfirmation struct {
	RegistrantID string `json:"registrant_id"`
	ID           int64  `json:"id"`
	Topic        string `json:"topic"`
	StartTime    string `json:"start_time"`
	JoinURL      string `json:"join_url"`
}

func (c *RegistrantConfirmation) Validate() error {
	if c.RegistrantID == "" {
		return missingField("RegistrantConfirmation", "registrant_id")
	}
	return nil
}
