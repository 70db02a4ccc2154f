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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// shipDateLayout matches the millisecond-precision, explicit-offset format
// the store echoes back.
const shipDateLayout = "2006-01-02T15:04:05.000-0700"

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	pet Pet
}

// NewPetPayload creates a pet payload builder with a random ID, a unique
// name and the documented mandatory fields populated.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		pet: Pet{
			ID:   RandomPetID(),
			Name: generateRandomName("testpet"),
			Category: Category{
				ID:   1,
				Name: "Dogs",
			},
			PhotoUrls: []string{
				"http://example.com/photo1.jpg",
				"http://example.com/photo2.jpg",
			},
			Tags: []Tag{
				{ID: 10, Name: "Friendly"},
				{ID: 11, Name: "Cute"},
			},
			Status: PetStatusAvailable,
		},
	}
}

func (b *PetPayloadBuilder) WithID(id int64) *PetPayloadBuilder {
	b.pet.ID = id
	return b
}

func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.pet.Name = name
	return b
}

func (b *PetPayloadBuilder) WithStatus(status string) *PetPayloadBuilder {
	b.pet.Status = status
	return b
}

func (b *PetPayloadBuilder) WithPhotoUrls(urls ...string) *PetPayloadBuilder {
	b.pet.PhotoUrls = urls
	return b
}

func (b *PetPayloadBuilder) WithTag(id int64, name string) *PetPayloadBuilder {
	b.pet.Tags = append(b.pet.Tags, Tag{ID: id, Name: name})
	return b
}

// WithoutName clears the mandatory name field, for validation probes.
func (b *PetPayloadBuilder) WithoutName() *PetPayloadBuilder {
	b.pet.Name = ""
	return b
}

// WithoutPhotoUrls clears the mandatory photoUrls field, for validation probes.
func (b *PetPayloadBuilder) WithoutPhotoUrls() *PetPayloadBuilder {
	b.pet.PhotoUrls = nil
	return b
}

// Build returns the completed pet payload.
func (b *PetPayloadBuilder) Build() *Pet {
	pet := b.pet
	return &pet
}

// UserPayloadBuilder builds user payloads for testing.
type UserPayloadBuilder struct {
	user User
}

// NewUserPayload creates a user payload builder with a random ID and a
// unique username and email.
func NewUserPayload() *UserPayloadBuilder {
	username := generateRandomName("testuser")

	return &UserPayloadBuilder{
		user: User{
			ID:         RandomUserID(),
			Username:   username,
			FirstName:  "John",
			LastName:   "Doe",
			Email:      fmt.Sprintf("%s@example.com", username),
			Password:   "password123",
			Phone:      "123-456-7890",
			UserStatus: 1,
		},
	}
}

func (b *UserPayloadBuilder) WithUsername(username string) *UserPayloadBuilder {
	b.user.Username = username
	return b
}

func (b *UserPayloadBuilder) WithFirstName(firstName string) *UserPayloadBuilder {
	b.user.FirstName = firstName
	return b
}

func (b *UserPayloadBuilder) WithEmail(email string) *UserPayloadBuilder {
	b.user.Email = email
	return b
}

func (b *UserPayloadBuilder) WithPhone(phone string) *UserPayloadBuilder {
	b.user.Phone = phone
	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() *User {
	user := b.user
	return &user
}

// NewOrderPayload creates an order for petID with a random order ID and a
// ship date in the format the store echoes back.
func NewOrderPayload(petID int64) *Order {
	return &Order{
		ID:       RandomOrderID(),
		PetID:    petID,
		Quantity: 1,
		ShipDate: time.Now().UTC().Format(shipDateLayout),
		Status:   "placed",
		Complete: false,
	}
}

// CreatePetWithCleanup creates a pet and schedules automatic deletion. The
// service occasionally rewrites the requested ID; the returned pet carries
// the ID the service actually assigned, and cleanup targets that one.
func CreatePetWithCleanup(client *APIClient, ctx context.Context, pet *Pet) *Pet {
	created, err := client.Pets.AddPet(ctx, pet)
	Expect(err).NotTo(HaveOccurred())

	if created.ID != pet.ID {
		GinkgoWriter.Printf("Warning: service changed pet ID from %d to %d\n", pet.ID, created.ID)
	}

	// Cleanup runs whether the test passes or fails. The pet being gone
	// already is fine - delete tests remove it themselves.
	DeferCleanup(func(ctx context.Context) {
		GinkgoWriter.Printf("Cleaning up pet: %d\n", created.ID)

		resp, deleteErr := client.Pets.DeletePetRaw(ctx, created.ID)
		if deleteErr != nil {
			GinkgoWriter.Printf("Warning: failed to delete pet %d: %v\n", created.ID, deleteErr)
			return
		}

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
			GinkgoWriter.Printf("Warning: unexpected status %d deleting pet %d\n", resp.StatusCode, created.ID)
		}
	})

	return created
}

// CreateUserWithCleanup creates a user, verifies the service echoed its ID
// in the message envelope, and schedules automatic deletion.
func CreateUserWithCleanup(client *APIClient, ctx context.Context, user *User) *User {
	result, err := client.Users.CreateUser(ctx, user)
	Expect(err).NotTo(HaveOccurred())
	Expect(result.Message).To(Equal(strconv.FormatInt(user.ID, 10)))

	RegisterUserCleanup(client, user.Username)

	return user
}

// RegisterUserCleanup schedules deletion of a user by username, tolerating
// the user already being gone. Batch-create tests call this per username.
func RegisterUserCleanup(client *APIClient, username string) {
	DeferCleanup(func(ctx context.Context) {
		GinkgoWriter.Printf("Cleaning up user: %s\n", username)

		resp, deleteErr := client.Users.DeleteUser(ctx, username)
		if deleteErr != nil {
			GinkgoWriter.Printf("Warning: failed to delete user %s: %v\n", username, deleteErr)
			return
		}

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
			GinkgoWriter.Printf("Warning: unexpected status %d deleting user %s\n", resp.StatusCode, username)
		}
	})
}
