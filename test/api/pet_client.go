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
)

// PetClient wraps the /pet endpoints.
type PetClient struct {
	api *APIClient
}

// AddPet creates a pet and expects the service to acknowledge with 200.
func (c *PetClient) AddPet(ctx context.Context, pet *Pet) (*Pet, error) {
	resp, err := c.api.doRequest(ctx, http.MethodPost, c.api.endpoints.AddPet(), nil, pet, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("adding pet: %w", err)
	}

	created := &Pet{}
	if err := resp.JSON(created); err != nil {
		return nil, err
	}

	return created, nil
}

// GetPetRaw retrieves a pet by ID without any assertion or retry. It is the
// primitive polled by GetPet and GetPetExpectingNotFound.
func (c *PetClient) GetPetRaw(ctx context.Context, petID int64) (*Response, error) {
	return c.api.doRequest(ctx, http.MethodGet, c.api.endpoints.GetPet(petID), nil, nil, 0)
}

// GetPet retrieves a pet by ID, polling until the service returns 200. A
// read issued straight after AddPet can still miss the write, hence the wait.
func (c *PetClient) GetPet(ctx context.Context, petID int64) (*Pet, error) {
	resp, err := c.api.await(ctx, func(ctx context.Context) (*Response, error) {
		return c.GetPetRaw(ctx, petID)
	}, http.StatusOK, AwaitOptions{
		Timeout:  c.api.config.AwaitTimeout,
		Interval: c.api.config.AwaitPollInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("getting pet %d: %w", petID, err)
	}

	pet := &Pet{}
	if err := resp.JSON(pet); err != nil {
		return nil, err
	}

	return pet, nil
}

// GetPetExpectingNotFound polls until a read for petID reports 404,
// confirming a deletion has propagated.
func (c *PetClient) GetPetExpectingNotFound(ctx context.Context, petID int64) (*Response, error) {
	resp, err := c.api.await(ctx, func(ctx context.Context) (*Response, error) {
		return c.GetPetRaw(ctx, petID)
	}, http.StatusNotFound, AwaitOptions{
		Timeout:  c.api.config.DeleteAwaitTimeout,
		Interval: c.api.config.AwaitPollInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("pet %d still present: %w", petID, err)
	}

	return resp, nil
}

// UpdatePet updates an existing pet and expects 200.
func (c *PetClient) UpdatePet(ctx context.Context, pet *Pet) (*Pet, error) {
	resp, err := c.api.doRequest(ctx, http.MethodPut, c.api.endpoints.UpdatePet(), nil, pet, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("updating pet: %w", err)
	}

	updated := &Pet{}
	if err := resp.JSON(updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdatePetRaw updates a pet without any assertion, for negative paths.
func (c *PetClient) UpdatePetRaw(ctx context.Context, pet *Pet) (*Response, error) {
	return c.api.doRequest(ctx, http.MethodPut, c.api.endpoints.UpdatePet(), nil, pet, 0)
}

// AddPetRaw creates a pet without any assertion, for negative paths.
func (c *PetClient) AddPetRaw(ctx context.Context, pet *Pet) (*Response, error) {
	return c.api.doRequest(ctx, http.MethodPost, c.api.endpoints.AddPet(), nil, pet, 0)
}

// DeletePetRaw deletes a pet by ID without any assertion or retry, used for
// cleanup where the pet may already be gone.
func (c *PetClient) DeletePetRaw(ctx context.Context, petID int64) (*Response, error) {
	return c.api.doRequest(ctx, http.MethodDelete, c.api.endpoints.DeletePet(petID), nil, nil, 0)
}

// DeletePet deletes a pet, polling until the service acknowledges with 200.
// The service occasionally 404s a delete for a pet it has not finished
// indexing yet.
func (c *PetClient) DeletePet(ctx context.Context, petID int64) (*APIResponse, error) {
	resp, err := c.api.await(ctx, func(ctx context.Context) (*Response, error) {
		return c.DeletePetRaw(ctx, petID)
	}, http.StatusOK, AwaitOptions{
		Timeout:  c.api.config.DeleteAwaitTimeout,
		Interval: c.api.config.AwaitPollInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting pet %d: %w", petID, err)
	}

	return resp.APIResponse()
}

// FindPetsByStatus queries pets by status and expects 200. Doubles as the
// suite's service health probe.
func (c *PetClient) FindPetsByStatus(ctx context.Context, status string) ([]Pet, error) {
	query := url.Values{"status": []string{status}}

	resp, err := c.api.doRequest(ctx, http.MethodGet, c.api.endpoints.FindPetsByStatus(), query, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("finding pets by status %q: %w", status, err)
	}

	var pets []Pet
	if err := resp.JSON(&pets); err != nil {
		return nil, err
	}

	return pets, nil
}
