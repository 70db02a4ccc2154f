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
	"fmt"
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Pet endpoints.
func (e *Endpoints) AddPet() string {
	return "/pet"
}

func (e *Endpoints) UpdatePet() string {
	return "/pet"
}

func (e *Endpoints) GetPet(petID int64) string {
	return fmt.Sprintf("/pet/%s", url.PathEscape(strconv.FormatInt(petID, 10)))
}

func (e *Endpoints) DeletePet(petID int64) string {
	return fmt.Sprintf("/pet/%s", url.PathEscape(strconv.FormatInt(petID, 10)))
}

func (e *Endpoints) FindPetsByStatus() string {
	return "/pet/findByStatus"
}

// User endpoints.
func (e *Endpoints) CreateUser() string {
	return "/user"
}

func (e *Endpoints) CreateUsersWithList() string {
	return "/user/createWithList"
}

func (e *Endpoints) CreateUsersWithArray() string {
	return "/user/createWithArray"
}

func (e *Endpoints) GetUser(username string) string {
	return fmt.Sprintf("/user/%s", url.PathEscape(username))
}

func (e *Endpoints) UpdateUser(username string) string {
	return fmt.Sprintf("/user/%s", url.PathEscape(username))
}

func (e *Endpoints) DeleteUser(username string) string {
	return fmt.Sprintf("/user/%s", url.PathEscape(username))
}

func (e *Endpoints) LoginUser() string {
	return "/user/login"
}

func (e *Endpoints) LogoutUser() string {
	return "/user/logout"
}

// Store endpoints.
func (e *Endpoints) PlaceOrder() string {
	return "/store/order"
}

func (e *Endpoints) GetOrder(orderID int64) string {
	return fmt.Sprintf("/store/order/%s", url.PathEscape(strconv.FormatInt(orderID, 10)))
}

func (e *Endpoints) DeleteOrder(orderID int64) string {
	return fmt.Sprintf("/store/order/%s", url.PathEscape(strconv.FormatInt(orderID, 10)))
}

func (e *Endpoints) Inventory() string {
	return "/store/inventory"
}
