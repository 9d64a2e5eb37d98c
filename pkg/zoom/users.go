package zoom

import (
	"context"
	"fmt"
	"net/http"

	"github.com/licht1stein/gozoom/pkg/client"
	"github.com/licht1stein/gozoom/pkg/pagination"
	"github.com/licht1stein/gozoom/pkg/schemas"
)

// UsersService exposes the account user endpoints.
type UsersService struct {
	raw *client.Client
}

// GetUsers fetches every page of account users with the given status
// (active, inactive or pending).
func (s *UsersService) GetUsers(ctx context.Context, status string) (*schemas.UserList, error) {
	res, err := pagination.FetchAllPages(ctx, s.raw, "/users", map[string]string{"status": status}, true)
	if err != nil {
		return nil, err
	}

	var list schemas.UserList
	if err := schemas.Decode(res, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteUser permanently removes a user from the account, reporting true
// when Zoom confirmed with 204 No Content.
func (s *UsersService) DeleteUser(ctx context.Context, userID string) (bool, error) {
	resp, err := s.raw.Delete(ctx, fmt.Sprintf("/users/%s", userID), map[string]string{"action": "delete"}, true)
	if err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusNoContent, nil
}
