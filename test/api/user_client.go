/*
Copyright 2025-2026 the Petstore Conformance Suite Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// UserClient wraps the /user endpoints.
type UserClient struct {
	api *APIClient
}

// CreateUser creates a user and expects 200. The service echoes the user ID
// in the message envelope rather than the created entity.
func (c *UserClient) CreateUser(ctx context.Context, user *User) (*APIResponse, error) {
	resp, err := c.api.doRequest(ctx, http.MethodPost, c.api.endpoints.CreateUser(), nil, user, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return resp.APIResponse()
}

// CreateUserRaw creates a user without any assertion, for negative paths.
func (c *UserClient) CreateUserRaw(ctx context.Context, user *User) (*Response, error) {
	return c.api.doRequest(ctx, http.MethodPost, c.api.endpoints.CreateUser(), nil, user, 0)
}

// CreateUsersWithList batch-creates users from an ordered sequence.
func (c *UserClient) CreateUsersWithList(ctx context.Context, users []User) (*APIResponse, error) {
	resp, err := c.api.doRequest(ctx, http.MethodPost, c.api.endpoints.CreateUsersWithList(), nil, users, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("creating users with list: %w", err)
	}

	return resp.APIResponse()
}

// CreateUsersWithArray batch-creates users via the array endpoint.
// Functionally equivalent to CreateUsersWithList for a JSON API, but the
// service exposes both routes so the suite exercises both.
func (c *UserClient) CreateUsersWithArray(ctx context.Context, users []User) (*APIResponse, error) {
	resp, err := c.api.doRequest(ctx, http.MethodPost, c.api.endpoints.CreateUsersWithArray(), nil, users, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("creating users with array: %w", err)
	}

	return resp.APIResponse()
}

// GetUserRaw retrieves a user by username without any assertion or retry.
func (c *UserClient) GetUserRaw(ctx context.Context, username string) (*Response, error) {
	return c.api.doRequest(ctx, http.MethodGet, c.api.endpoints.GetUser(username), nil, nil, 0)
}

// GetUser retrieves a user by username, polling until the service returns
// 200.
func (c *UserClient) GetUser(ctx context.Context, username string) (*User, error) {
	resp, err := c.api.await(ctx, func(ctx context.Context) (*Response, error) {
		return c.GetUserRaw(ctx, username)
	}, http.StatusOK, AwaitOptions{
		Timeout:  c.api.config.AwaitTimeout,
		Interval: c.api.config.AwaitPollInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("getting user %q: %w", username, err)
	}

	user := &User{}
	if err := resp.JSON(user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserExpectingNotFound polls until a read for username reports 404.
func (c *UserClient) GetUserExpectingNotFound(ctx context.Context, username string) (*Response, error) {
	resp, err := c.api.await(ctx, func(ctx context.Context) (*Response, error) {
		return c.GetUserRaw(ctx, username)
	}, http.StatusNotFound, AwaitOptions{
		Timeout:  c.api.config.AwaitTimeout,
		Interval: c.api.config.AwaitPollInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("user %q still present: %w", username, err)
	}

	return resp, nil
}

// UpdateUserRaw updates a user without retry, keyed by the username carried
// in the user itself.
func (c *UserClient) UpdateUserRaw(ctx context.Context, user *User) (*Response, error) {
	return c.api.doRequest(ctx, http.MethodPut, c.api.endpoints.UpdateUser(user.Username), nil, user, 0)
}

// UpdateUser updates a user, polling until the service acknowledges with
// 200. The user store lags writes the same way the pet store does.
func (c *UserClient) UpdateUser(ctx context.Context, user *User) (*Response, error) {
	resp, err := c.api.await(ctx, func(ctx context.Context) (*Response, error) {
		return c.UpdateUserRaw(ctx, user)
	}, http.StatusOK, AwaitOptions{
		Timeout:  c.api.config.DeleteAwaitTimeout,
		Interval: c.api.config.AwaitPollInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("updating user %q: %w", user.Username, err)
	}

	return resp, nil
}

// AwaitFirstName polls the user until the read reflects the expected first
// name, proving an update has propagated. Uses the fast interval since field
// updates usually converge in well under a second.
func (c *UserClient) AwaitFirstName(ctx context.Context, username, firstName string, timeout time.Duration) (*User, error) {
	type userObservation struct {
		resp *Response
		user User
	}

	observed, err := Await(ctx, func(ctx context.Context) (userObservation, error) {
		resp, err := c.GetUserRaw(ctx, username)
		if err != nil {
			return userObservation{}, err
		}

		observation := userObservation{resp: resp}
		if resp.StatusCode == http.StatusOK {
			// A body that fails to decode counts as not yet converged.
			_ = resp.JSON(&observation.user)
		}

		return observation, nil
	}, func(o userObservation) bool {
		return o.resp.StatusCode == http.StatusOK && o.user.FirstName == firstName
	}, AwaitOptions{
		Timeout:  timeout,
		Interval: c.api.config.FastPollInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("user %q never reflected firstName %q: %w", username, firstName, err)
	}

	return &observed.user, nil
}

// DeleteUser deletes a user by username and returns the raw response.
// Cleanup paths tolerate 404 here, so no status is asserted.
func (c *UserClient) DeleteUser(ctx context.Context, username string) (*Response, error) {
	return c.api.doRequest(ctx, http.MethodDelete, c.api.endpoints.DeleteUser(username), nil, nil, 0)
}

// Login logs a user in and expects 200. The session token is embedded in
// the message field; the service does not use cookies or headers for it.
func (c *UserClient) Login(ctx context.Context, username, password string) (*APIResponse, error) {
	query := url.Values{
		"username": []string{username},
		"password": []string{password},
	}

	resp, err := c.api.doRequest(ctx, http.MethodGet, c.api.endpoints.LoginUser(), query, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("logging in user %q: %w", username, err)
	}

	return resp.APIResponse()
}

// LoginRaw performs a login without any assertion, for negative paths such
// as missing credentials.
func (c *UserClient) LoginRaw(ctx context.Context, username, password string) (*Response, error) {
	query := url.Values{}
	if username != "" {
		query.Set("username", username)
	}

	if password != "" {
		query.Set("password", password)
	}

	return c.api.doRequest(ctx, http.MethodGet, c.api.endpoints.LoginUser(), query, nil, 0)
}

// Logout logs out the current session and expects 200.
func (c *UserClient) Logout(ctx context.Context) (*APIResponse, error) {
	resp, err := c.api.doRequest(ctx, http.MethodGet, c.api.endpoints.LogoutUser(), nil, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("logging out: %w", err)
	}

	return resp.APIResponse()
}
