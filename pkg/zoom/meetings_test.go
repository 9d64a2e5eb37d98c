package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licht1stein/gozoom/internal/testutil"
	"github.com/licht1stein/gozoom/pkg/client"
	"github.com/licht1stein/gozoom/pkg/schemas"
)

func newTestZoom(t *testing.T) (*Client, *testutil.MockZoom) {
	t.Helper()

	mock := testutil.NewMockZoom()
	t.Cleanup(mock.Close)

	cfg := client.DefaultConfig("test-key", "test-secret")
	cfg.BaseURL = mock.URL()

	c, err := NewWithConfig(cfg)
	require.NoError(t, err)

	return c, mock
}

const meetingJSON = `{
	"uuid": "abc==", "id": 42, "host_id": "h", "topic": "Kickoff",
	"type": 2, "start_time": "2024-01-15T10:00:00Z", "duration": 30,
	"timezone": "UTC", "created_at": "2024-01-10T09:00:00Z",
	"join_url": "https://zoom.us/j/42", "status": "waiting",
	"start_url": "https://zoom.us/s/42", "password": "secret",
	"h323_password": "1", "pstn_password": "2", "encrypted_password": "3",
	"settings": {"host_video": true, "audio": "voip", "auto_recording": "none"}
}`

func TestMeetings_GetMeeting(t *testing.T) {
	c, mock := newTestZoom(t)

	mock.SetResponse("/meetings/42", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       meetingJSON,
	})

	meeting, err := c.Meetings.GetMeeting(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), meeting.ID)
	assert.Equal(t, "Kickoff", meeting.Topic)
	assert.Equal(t, "https://zoom.us/s/42", meeting.StartURL)
}

func TestMeetings_CreateMeeting_AppliesDefaults(t *testing.T) {
	c, mock := newTestZoom(t)
	c.SetTimezone("Europe/Berlin")

	var gotBody map[string]any
	mock.SetHandler("/users/me/meetings", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(meetingJSON))
	})

	meeting, err := c.Meetings.CreateMeeting(context.Background(), "Kickoff", MeetingOptions{
		StartTime:   "2024-01-15T10:00:00Z",
		DurationMin: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "Kickoff", meeting.Topic)

	require.NotNil(t, gotBody)
	assert.Equal(t, "Kickoff", gotBody["topic"])
	assert.Equal(t, float64(2), gotBody["type"], "meeting type defaults to scheduled")
	assert.Equal(t, "Europe/Berlin", gotBody["timezone"], "service timezone applies as default")

	password, _ := gotBody["password"].(string)
	assert.Len(t, password, 6, "default password is six random characters")

	settings, ok := gotBody["settings"].(map[string]any)
	require.True(t, ok, "default settings object is attached")
	assert.Equal(t, "voip", settings["audio"])
}

func TestMeetings_CreateMeeting_ExplicitOptionsWin(t *testing.T) {
	c, mock := newTestZoom(t)

	var gotBody map[string]any
	mock.SetHandler("/users/me/meetings", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(meetingJSON))
	})

	custom := schemas.DefaultSettings()
	custom.WaitingRoom = true

	_, err := c.Meetings.CreateMeeting(context.Background(), "Kickoff", MeetingOptions{
		StartTime:   "2024-01-15T10:00:00Z",
		DurationMin: 30,
		Timezone:    "US/Pacific",
		Type:        8,
		Password:    "hunter2",
		Settings:    &custom,
	})
	require.NoError(t, err)

	assert.Equal(t, "US/Pacific", gotBody["timezone"])
	assert.Equal(t, float64(8), gotBody["type"])
	assert.Equal(t, "hunter2", gotBody["password"])

	settings := gotBody["settings"].(map[string]any)
	assert.Equal(t, true, settings["waiting_room"])
}

func TestMeetings_UpdateMeeting(t *testing.T) {
	c, mock := newTestZoom(t)

	mock.SetResponse("/meetings/42", testutil.MockResponse{
		StatusCode: http.StatusNoContent,
	})

	err := c.Meetings.UpdateMeeting(context.Background(), 42, "Renamed", MeetingOptions{
		StartTime:   "2024-02-01T10:00:00Z",
		DurationMin: 60,
	})
	require.NoError(t, err)

	last, ok := mock.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPatch, last.Method)
	assert.Equal(t, "/meetings/42", last.Path)
}

func TestMeetings_DeleteMeeting(t *testing.T) {
	c, mock := newTestZoom(t)

	mock.SetResponse("/meetings/42", testutil.MockResponse{
		StatusCode: http.StatusNoContent,
	})

	deleted, err := c.Meetings.DeleteMeeting(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, deleted)

	// A 200 answer is success but not the documented deletion confirmation.
	mock.SetResponse("/meetings/43", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       `{}`,
	})

	deleted, err = c.Meetings.DeleteMeeting(context.Background(), 43)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMeetings_DeleteMeeting_NotFound(t *testing.T) {
	c, mock := newTestZoom(t)

	mock.SetResponse("/meetings/42", testutil.MockResponse{
		StatusCode: http.StatusNotFound,
		Body:       testutil.ErrorBody("Meeting not found"),
	})

	_, err := c.Meetings.DeleteMeeting(context.Background(), 42)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindNotFound, apiErr.Kind)
	assert.Equal(t, "Meeting not found", apiErr.Message)
}

func registrantPage(token string, names ...string) string {
	regs := make([]map[string]any, 0, len(names))
	for i, name := range names {
		regs = append(regs, map[string]any{
			"id":         fmt.Sprintf("r%d", i),
			"email":      name + "@example.com",
			"first_name": name,
			"last_name":  "Tester",
		})
	}

	page := map[string]any{
		"page_count":    2,
		"page_size":     2,
		"total_records": 3,
		"registrants":   regs,
	}
	if token != "" {
		page["next_page_token"] = token
	}

	raw, _ := json.Marshal(page)
	return string(raw)
}

func TestMeetings_ListRegistrants_AllPages(t *testing.T) {
	c, mock := newTestZoom(t)

	mock.SetPaginated("/meetings/42/registrants", map[string]string{
		"":   registrantPage("t2", "ada", "grace"),
		"t2": registrantPage("", "katherine"),
	})

	list, err := c.Meetings.ListRegistrants(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, list.Registrants, 3)
	assert.Equal(t, "ada@example.com", list.Registrants[0].Email)
	assert.Equal(t, "katherine@example.com", list.Registrants[2].Email)
	assert.Equal(t, 3, list.TotalRecords)
}

func TestMeetings_AddRegistrant(t *testing.T) {
	c, mock := newTestZoom(t)

	mock.SetResponse("/meetings/42/registrants", testutil.MockResponse{
		StatusCode: http.StatusCreated,
		Body: `{"registrant_id": "reg-1", "id": 42, "topic": "Kickoff",
			"start_time": "2024-01-15T10:00:00Z", "join_url": "https://zoom.us/j/42?tk=x"}`,
	})

	confirmation, err := c.Meetings.AddRegistrant(context.Background(), 42, schemas.Registrant{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, "reg-1", confirmation.RegistrantID)

	// Invalid registrants are rejected locally, before any network call.
	before := mock.RequestCount()
	_, err = c.Meetings.AddRegistrant(context.Background(), 42, schemas.Registrant{Email: "ada@example.com"})

	var invalid *client.InvalidDataError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, before, mock.RequestCount())
}

func TestMeetings_AddAndConfirmRegistrant(t *testing.T) {
	c, mock := newTestZoom(t)

	mock.SetResponse("/meetings/42/registrants", testutil.MockResponse{
		StatusCode: http.StatusCreated,
		Body: `{"registrant_id": "reg-1", "id": 42, "topic": "Kickoff",
			"start_time": "2024-01-15T10:00:00Z", "join_url": "https://zoom.us/j/42?tk=x"}`,
	})

	var statusBody map[string]any
	mock.SetHandler("/meetings/42/registrants/status", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &statusBody)
		w.WriteHeader(http.StatusNoContent)
	})

	confirmation, err := c.Meetings.AddAndConfirmRegistrant(context.Background(), 42, schemas.Registrant{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, "reg-1", confirmation.RegistrantID)

	require.NotNil(t, statusBody)
	assert.Equal(t, "approve", statusBody["action"])

	registrants := statusBody["registrants"].([]any)
	require.Len(t, registrants, 1)
	first := registrants[0].(map[string]any)
	assert.Equal(t, "reg-1", first["id"])
	assert.Equal(t, "ada@example.com", first["email"])
}

func TestMeetings_CancelRegistration(t *testing.T) {
	c, mock := newTestZoom(t)

	var statusBody map[string]any
	mock.SetHandler("/meetings/42/registrants/status", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &statusBody)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.Meetings.CancelRegistration(context.Background(), 42, "reg-1", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "cancel", statusBody["action"])

	last, _ := mock.LastRequest()
	assert.Equal(t, http.MethodPut, last.Method)
}

func TestMeetings_PastMeetingParticipants(t *testing.T) {
	c, mock := newTestZoom(t)

	mock.SetPaginated("/past_meetings/42/participants", map[string]string{
		"": `{"page_count": 2, "page_size": 1, "total_records": 2, "next_page_token": "t2",
			"participants": [{"id": "p1", "name": "Ada", "user_email": "ada@example.com"}]}`,
		"t2": `{"page_count": 2, "page_size": 1, "total_records": 2,
			"participants": [{"id": "p2", "name": "Grace", "user_email": "grace@example.com"}]}`,
	})

	list, err := c.Meetings.PastMeetingParticipants(context.Background(), 42)
	require.NoError(t, err)

	require.Equal(t, 2, list.Len())
	assert.Equal(t, "Ada", list.Participants[0].Name)
	assert.Equal(t, "Grace", list.Participants[1].Name)

	found := list.FindByEmail("grace@example.com")
	require.Len(t, found, 1)
	assert.Equal(t, "p2", found[0].ID)
}

func TestMeetings_ListMeetings(t *testing.T) {
	c, mock := newTestZoom(t)

	mock.SetResponse("/users/me/meetings", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body: `{"page_count": 1, "page_number": 1, "page_size": 30, "total_records": 1,
			"meetings": [{"uuid": "u1", "id": 42, "host_id": "h", "topic": "Kickoff",
			"type": 2, "start_time": "2024-01-15T10:00:00Z", "duration": 30,
			"timezone": "UTC", "created_at": "2024-01-10T09:00:00Z",
			"join_url": "https://zoom.us/j/42"}]}`,
	})

	list, err := c.Meetings.ListMeetings(context.Background())
	require.NoError(t, err)

	require.Len(t, list.Meetings, 1)
	assert.Equal(t, "Kickoff", list.Meetings[0].Topic)
	assert.Equal(t, 1, list.TotalRecords)
}
