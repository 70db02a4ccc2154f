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
)

// StoreClient wraps the /store endpoints.
type StoreClient struct {
	api *APIClient
}

// PlaceOrder places an order and expects the service to echo it with 200.
func (c *StoreClient) PlaceOrder(ctx context.Context, order *Order) (*Order, error) {
	resp, err := c.api.doRequest(ctx, http.MethodPost, c.api.endpoints.PlaceOrder(), nil, order, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("placing order: %w", err)
	}

	placed := &Order{}
	if err := resp.JSON(placed); err != nil {
		return nil, err
	}

	return placed, nil
}

// GetOrderRaw retrieves an order by ID without any assertion or retry.
func (c *StoreClient) GetOrderRaw(ctx context.Context, orderID int64) (*Response, error) {
	return c.api.doRequest(ctx, http.MethodGet, c.api.endpoints.GetOrder(orderID), nil, nil, 0)
}

// AwaitOrderPetID polls an order until the read returns 200 with the
// expected pet reference, proving the placed order has propagated.
func (c *StoreClient) AwaitOrderPetID(ctx context.Context, orderID, petID int64) (*Order, error) {
	type orderObservation struct {
		resp  *Response
		order Order
	}

	observed, err := Await(ctx, func(ctx context.Context) (orderObservation, error) {
		resp, err := c.GetOrderRaw(ctx, orderID)
		if err != nil {
			return orderObservation{}, err
		}

		observation := orderObservation{resp: resp}
		if resp.StatusCode == http.StatusOK {
			// A body that fails to decode counts as not yet converged.
			_ = resp.JSON(&observation.order)
		}

		return observation, nil
	}, func(o orderObservation) bool {
		return o.resp.StatusCode == http.StatusOK && o.order.PetID == petID
	}, AwaitOptions{
		Timeout:  c.api.config.AwaitTimeout,
		Interval: c.api.config.AwaitPollInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("order %d never reflected petId %d: %w", orderID, petID, err)
	}

	return &observed.order, nil
}

// DeleteOrder deletes an order by ID and returns the raw response. Negative
// paths assert on 404 themselves.
func (c *StoreClient) DeleteOrder(ctx context.Context, orderID int64) (*Response, error) {
	return c.api.doRequest(ctx, http.MethodDelete, c.api.endpoints.DeleteOrder(orderID), nil, nil, 0)
}

// InventoryRaw retrieves the inventory without any assertion or retry.
func (c *StoreClient) InventoryRaw(ctx context.Context) (*Response, error) {
	return c.api.doRequest(ctx, http.MethodGet, c.api.endpoints.Inventory(), nil, nil, 0)
}

// Inventory returns the per-status pet counts and expects 200.
func (c *StoreClient) Inventory(ctx context.Context) (Inventory, error) {
	resp, err := c.api.doRequest(ctx, http.MethodGet, c.api.endpoints.Inventory(), nil, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting inventory: %w", err)
	}

	var inventory Inventory
	if err := resp.JSON(&inventory); err != nil {
		return nil, err
	}

	return inventory, nil
}

// AwaitInventoryCount polls the inventory until the count for status reaches
// expectedCount. Inventory aggregation lags pet writes by a few seconds.
func (c *StoreClient) AwaitInventoryCount(ctx context.Context, status string, expectedCount int) (Inventory, error) {
	type inventoryObservation struct {
		resp      *Response
		inventory Inventory
	}

	observed, err := Await(ctx, func(ctx context.Context) (inventoryObservation, error) {
		resp, err := c.InventoryRaw(ctx)
		if err != nil {
			return inventoryObservation{}, err
		}

		observation := inventoryObservation{resp: resp}
		if resp.StatusCode == http.StatusOK {
			_ = resp.JSON(&observation.inventory)
		}

		return observation, nil
	}, func(o inventoryObservation) bool {
		return o.resp.StatusCode == http.StatusOK && o.inventory[status] == expectedCount
	}, AwaitOptions{
		Timeout:  c.api.config.DeleteAwaitTimeout,
		Interval: c.api.config.AwaitPollInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("inventory count for %q never reached %d: %w", status, expectedCount, err)
	}

	return observed.inventory, nil
}
