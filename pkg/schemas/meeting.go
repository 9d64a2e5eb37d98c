package schemas

import "strings"

// MeetingSettings mirrors the settings object of a scheduled meeting.
type MeetingSettings struct {
	HostVideo                    bool     `json:"host_video"`
	ParticipantVideo             bool     `json:"participant_video"`
	CNMeeting                    bool     `json:"cn_meeting"`
	INMeeting                    bool     `json:"in_meeting"`
	JoinBeforeHost               bool     `json:"join_before_host"`
	MuteUponEntry                bool     `json:"mute_upon_entry"`
	Watermark                    bool     `json:"watermark"`
	UsePMI                       bool     `json:"use_pmi"`
	ApprovalType                 int      `json:"approval_type"`
	RegistrationType             int      `json:"registration_type,omitempty"`
	Audio                        string   `json:"audio"`
	AutoRecording                string   `json:"auto_recording"`
	EnforceLogin                 bool     `json:"enforce_login"`
	EnforceLoginDomains          string   `json:"enforce_login_domains,omitempty"`
	AlternativeHosts             string   `json:"alternative_hosts,omitempty"`
	CloseRegistration            bool     `json:"close_registration,omitempty"`
	WaitingRoom                  bool     `json:"waiting_room"`
	GlobalDialInCountries        []string `json:"global_dial_in_countries,omitempty"`
	ContactName                  string   `json:"contact_name,omitempty"`
	ContactEmail                 string   `json:"contact_email,omitempty"`
	RegistrantsEmailNotification bool     `json:"registrants_email_notification"`
	MeetingAuthentication        bool     `json:"meeting_authentication"`
	AuthenticationOption         string   `json:"authentication_option,omitempty"`
	AuthenticationDomains        string   `json:"authentication_domains,omitempty"`
}

// DefaultSettings returns the settings applied when a meeting is created
// without an explicit settings object.
func DefaultSettings() MeetingSettings {
	return MeetingSettings{
		HostVideo:        true,
		ParticipantVideo: true,
		JoinBeforeHost:   true,
		MuteUponEntry:    true,
		ApprovalType:     0,
		RegistrationType: 1,
		Audio:            "voip",
		AutoRecording:    "none",
		EnforceLogin:     true,

		MeetingAuthentication: true,
	}
}

// MeetingShort is the compact meeting record list endpoints return.
type MeetingShort struct {
	UUID      string `json:"uuid"`
	ID        int64  `json:"id"`
	HostID    string `json:"host_id"`
	Topic     string `json:"topic"`
	Type      int    `json:"type"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	Timezone  string `json:"timezone"`
	CreatedAt string `json:"created_at"`
	JoinURL   string `json:"join_url"`
}

func (m *MeetingShort) Validate() error {
	switch {
	case m.UUID == "":
		return missingField("MeetingShort", "uuid")
	case m.ID == 0:
		return missingField("MeetingShort", "id")
	case m.Topic == "":
		return missingField("MeetingShort", "topic")
	case m.JoinURL == "":
		return missingField("MeetingShort", "join_url")
	}
	return nil
}

// Meeting is the full meeting record returned by the single-meeting
// endpoints.
type Meeting struct {
	MeetingShort

	Status            string          `json:"status"`
	Agenda            string          `json:"agenda,omitempty"`
	StartURL          string          `json:"start_url"`
	RegistrationURL   string          `json:"registration_url,omitempty"`
	Password          string          `json:"password"`
	H323Password      string          `json:"h323_password"`
	PSTNPassword      string          `json:"pstn_password"`
	EncryptedPassword string          `json:"encrypted_password"`
	Settings          MeetingSettings `json:"settings"`
}

func (m *Meeting) Validate() error {
	if err := m.MeetingShort.Validate(); err != nil {
		return err
	}
	if m.StartURL == "" {
		return missingField("Meeting", "start_url")
	}
	return nil
}

// MeetingList is the merged envelope of the meeting list endpoint.
type MeetingList struct {
	PageCount    int            `json:"page_count"`
	PageNumber   int            `json:"page_number"`
	PageSize     int            `json:"page_size"`
	TotalRecords int            `json:"total_records"`
	Meetings     []MeetingShort `json:"meetings"`
}

// FilterByTopic returns the meetings whose topic contains text,
// case-insensitively.
func (l *MeetingList) FilterByTopic(text string) []MeetingShort {
	needle := strings.ToLower(text)
	var out []MeetingShort
	for _, m := range l.Meetings {
		if strings.Contains(strings.ToLower(m.Topic), needle) {
			out = append(out, m)
		}
	}
	return out
}

// FilterByID returns the meetings with the given numeric ID.
func (l *MeetingList) FilterByID(meetingID int64) []MeetingShort {
	var out []MeetingShort
	for _, m := range l.Meetings {
		if m.ID == meetingID {
			out = append(out, m)
		}
	}
	return out
}
