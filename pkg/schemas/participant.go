package schemas

// Participant is one attendee of a past meeting.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UserEmail string `json:"user_email"`
}

// ParticipantList is the merged envelope of the past-meeting participants
// endpoint.
type ParticipantList struct {
	PageCount    int           `json:"page_count"`
	PageSize     int           `json:"page_size"`
	TotalRecords int           `json:"total_records"`
	Participants []Participant `json:"participants"`
}

// Len returns the number of participants.
func (l *ParticipantList) Len() int {
	return len(l.Participants)
}

// FindByID returns the participants with the given ID.
func (l *ParticipantList) FindByID(id string) []Participant {
	var out []Participant
	for _, p := range l.Participants {
		if p.ID == id {
			out = append(out, p)
		}
	}
	return out
}

// FindByEmail returns the participants with the given email.
func (l *ParticipantList) FindByEmail(email string) []Participant {
	var out []Participant
	for _, p := range l.Participants {
		if p.UserEmail == email {
			out = append(out, p)
		}
	}
	return out
}

// FindByName returns the participants with the given display name.
func (l *ParticipantList) FindByName(name string) []Participant {
	var out []Participant
	for _, p := range l.Participants {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}
