package schemas

// User is one account member as returned by the user list endpoint.
type User struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Email       string   `json:"email"`
	Type        int      `json:"type"`
	PMI         int64    `json:"pmi"`
	Timezone    string   `json:"timezone,omitempty"`
	Verified    int      `json:"verified"`
	Dept        string   `json:"dept,omitempty"`
	CreatedAt   string   `json:"created_at"`
	PicURL      string   `json:"pic_url,omitempty"`
	GroupIDs    []string `json:"group_ids,omitempty"`
	Language    string   `json:"language,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	Status      string   `json:"status"`
	RoleID      string   `json:"role_id"`
}

func (u *User) Validate() error {
	switch {
	case u.ID == "":
		return missingField("User", "id")
	case u.Email == "":
		return missingField("User", "email")
	}
	return nil
}

// UserList is the merged envelope of the user list endpoint.
type UserList struct {
	PageCount    int    `json:"page_count"`
	PageNumber   int    `json:"page_number"`
	PageSize     int    `json:"page_size"`
	TotalRecords int    `json:"total_records"`
	Users        []User `json:"users"`
}
