package storeapi

import (
	"context"

	"github.com/savorworks/storefront-client/internal/models"
)

func (c *restClient) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthUser, error) {
	var user models.AuthUser

	resp, err := c.auth.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&user).
		Post(endpointLogin)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *restClient) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthUser, error) {
	var user models.AuthUser

	resp, err := c.auth.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&user).
		Post(endpointSignup)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return &user, nil
}

// profileEnvelope wraps the profile update response; the backend nests the
// updated user under "data".
type profileEnvelope struct {
	Data models.AuthUser `json:"data"`
}

func (c *restClient) UpdateProfile(ctx context.Context, req *models.ProfileUpdate) (*models.AuthUser, error) {
	var envelope profileEnvelope

	resp, err := c.auth.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&envelope).
		Put(endpointProfile)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

func (c *restClient) SaveUserData(ctx context.Context, userID int64, form *models.AddressForm) error {
	resp, err := c.auth.R().
		SetContext(ctx).
		SetBody(form).
		Post(path(endpointUserData, userID))

	return c.check(resp, err)
}
