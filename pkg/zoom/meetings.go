package zoom

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lithammer/shortuuid"

	"github.com/licht1stein/gozoom/pkg/client"
	"github.com/licht1stein/gozoom/pkg/pagination"
	"github.com/licht1stein/gozoom/pkg/schemas"
)

// RegistrantAction is a registration status change.
type RegistrantAction string

const (
	// ActionApprove approves a pending or cancelled registration.
	ActionApprove RegistrantAction = "approve"

	// ActionCancel cancels an approved registration.
	ActionCancel RegistrantAction = "cancel"

	// ActionDeny denies a pending registration.
	ActionDeny RegistrantAction = "deny"
)

// defaultMeetingType is type 2, a scheduled meeting.
const defaultMeetingType = 2

// MeetingsService exposes the meeting and registrant endpoints.
type MeetingsService struct {
	raw *client.Client

	// Timezone is applied to created meetings that do not set their own.
	// Not safe for concurrent mutation.
	Timezone string
}

// MeetingOptions carries the scheduling fields of a created or updated
// meeting. Zero values fall back to service defaults: type 2 (scheduled),
// the service timezone, a random six-character password, and
// schemas.DefaultSettings.
type MeetingOptions struct {
	StartTime   string
	DurationMin int
	Timezone    string
	Type        int
	Password    string
	Settings    *schemas.MeetingSettings
}

// ListMeetings lists the authenticated user's meetings.
func (s *MeetingsService) ListMeetings(ctx context.Context) (*schemas.MeetingList, error) {
	res, err := s.raw.GetJSON(ctx, "/users/me/meetings", nil, true)
	if err != nil {
		return nil, err
	}

	var list schemas.MeetingList
	if err := schemas.Decode(res, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetMeeting fetches one meeting by ID.
func (s *MeetingsService) GetMeeting(ctx context.Context, meetingID int64) (*schemas.Meeting, error) {
	resp, err := s.raw.Get(ctx, fmt.Sprintf("/meetings/%d", meetingID), nil, true)
	if err != nil {
		return nil, err
	}

	var meeting schemas.Meeting
	if err := schemas.DecodeBytes(resp.Body, &meeting); err != nil {
		return nil, err
	}
	return &meeting, nil
}

// CreateMeeting schedules a meeting for the authenticated user.
func (s *MeetingsService) CreateMeeting(ctx context.Context, topic string, opts MeetingOptions) (*schemas.Meeting, error) {
	resp, err := s.raw.Post(ctx, "/users/me/meetings", nil, s.meetingBody(topic, opts), true)
	if err != nil {
		return nil, err
	}

	var meeting schemas.Meeting
	if err := schemas.DecodeBytes(resp.Body, &meeting); err != nil {
		return nil, err
	}
	return &meeting, nil
}

// UpdateMeeting reschedules an existing meeting. Zoom answers the PATCH with
// an empty body, so only the error is meaningful.
func (s *MeetingsService) UpdateMeeting(ctx context.Context, meetingID int64, topic string, opts MeetingOptions) error {
	_, err := s.raw.Patch(ctx, fmt.Sprintf("/meetings/%d", meetingID), nil, s.meetingBody(topic, opts), true)
	return err
}

// DeleteMeeting deletes a meeting, reporting true when Zoom confirmed with
// 204 No Content.
func (s *MeetingsService) DeleteMeeting(ctx context.Context, meetingID int64) (bool, error) {
	resp, err := s.raw.Delete(ctx, fmt.Sprintf("/meetings/%d", meetingID), nil, true)
	if err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusNoContent, nil
}

// ListRegistrants fetches every page of a meeting's registrants.
func (s *MeetingsService) ListRegistrants(ctx context.Context, meetingID int64) (*schemas.RegistrantList, error) {
	res, err := pagination.FetchAllPages(ctx, s.raw, fmt.Sprintf("/meetings/%d/registrants", meetingID), nil, true)
	if err != nil {
		return nil, err
	}

	var list schemas.RegistrantList
	if err := schemas.Decode(res, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// AddRegistrant registers an attendee for a meeting.
func (s *MeetingsService) AddRegistrant(ctx context.Context, meetingID int64, registrant schemas.Registrant) (*schemas.RegistrantConfirmation, error) {
	if err := registrant.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.raw.Post(ctx, fmt.Sprintf("/meetings/%d/registrants", meetingID), nil, registrant, true)
	if err != nil {
		return nil, err
	}

	var confirmation schemas.RegistrantConfirmation
	if err := schemas.DecodeBytes(resp.Body, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// UpdateRegistrantStatus applies a status action to a batch of registrants.
func (s *MeetingsService) UpdateRegistrantStatus(ctx context.Context, meetingID int64, action RegistrantAction, registrants []schemas.RegistrantShort) error {
	body := map[string]any{
		"action":      action,
		"registrants": registrants,
	}
	_, err := s.raw.Put(ctx, fmt.Sprintf("/meetings/%d/registrants/status", meetingID), nil, body, true)
	return err
}

// AddAndConfirmRegistrant registers an attendee and immediately approves the
// registration.
func (s *MeetingsService) AddAndConfirmRegistrant(ctx context.Context, meetingID int64, registrant schemas.Registrant) (*schemas.RegistrantConfirmation, error) {
	confirmation, err := s.AddRegistrant(ctx, meetingID, registrant)
	if err != nil {
		return nil, err
	}

	err = s.UpdateRegistrantStatus(ctx, meetingID, ActionApprove, []schemas.RegistrantShort{
		{ID: confirmation.RegistrantID, Email: registrant.Email},
	})
	if err != nil {
		return nil, err
	}
	return confirmation, nil
}

// ApproveRegistration approves a single registration.
func (s *MeetingsService) ApproveRegistration(ctx context.Context, meetingID int64, registrantID, email string) error {
	return s.UpdateRegistrantStatus(ctx, meetingID, ActionApprove, []schemas.RegistrantShort{
		{ID: registrantID, Email: email},
	})
}

// CancelRegistration cancels a single registration.
func (s *MeetingsService) CancelRegistration(ctx context.Context, meetingID int64, registrantID, email string) error {
	return s.UpdateRegistrantStatus(ctx, meetingID, ActionCancel, []schemas.RegistrantShort{
		{ID: registrantID, Email: email},
	})
}

// PastMeetingParticipants fetches every page of a past meeting's attendees.
func (s *MeetingsService) PastMeetingParticipants(ctx context.Context, meetingID int64) (*schemas.ParticipantList, error) {
	res, err := pagination.FetchAllPages(ctx, s.raw, fmt.Sprintf("/past_meetings/%d/participants", meetingID), nil, true)
	if err != nil {
		return nil, err
	}

	var list schemas.ParticipantList
	if err := schemas.Decode(res, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// meetingBody assembles the create/update payload, applying service defaults.
func (s *MeetingsService) meetingBody(topic string, opts MeetingOptions) map[string]any {
	meetingType := opts.Type
	if meetingType == 0 {
		meetingType = defaultMeetingType
	}

	timezone := opts.Timezone
	if timezone == "" {
		timezone = s.Timezone
	}

	password := opts.Password
	if password == "" {
		password = shortuuid.New()[:6]
	}

	settings := schemas.DefaultSettings()
	if opts.Settings != nil {
		settings = *opts.Settings
	}

	return map[string]any{
		"topic":      topic,
		"type":       meetingType,
		"start_time": opts.StartTime,
		"duration":   opts.DurationMin,
		"timezone":   timezone,
		"password":   password,
		"settings":   settings,
	}
}
