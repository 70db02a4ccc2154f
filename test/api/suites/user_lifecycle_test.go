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

//nolint:testpackage,revive // dot imports are standard for Ginkgo/Gomega test code
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/myapi/petstore-conformance/test/api"
)

var _ = Describe("User Lifecycle", func() {
	Context("When creating a new user", func() {
		It("should create the user and return it on a subsequent read", func() {
			user := api.CreateUserWithCleanup(client, ctx, api.NewUserPayload().Build())

			retrieved, err := client.Users.GetUser(ctx, user.Username)
			Expect(err).NotTo(HaveOccurred())

			Expect(retrieved.ID).To(Equal(user.ID))
			Expect(retrieved.Username).To(Equal(user.Username))
			Expect(retrieved.FirstName).To(Equal(user.FirstName))
			Expect(retrieved.LastName).To(Equal(user.LastName))
			Expect(retrieved.Email).To(Equal(user.Email))
			Expect(retrieved.Phone).To(Equal(user.Phone))
			Expect(retrieved.UserStatus).To(Equal(user.UserStatus))
		})
	})

	Context("When updating an existing user", func() {
		It("should converge to the updated fields", func() {
			user := api.CreateUserWithCleanup(client, ctx, api.NewUserPayload().Build())

			user.FirstName = "Kate"
			user.Email = "updated-" + user.Username + "@example.com"
			user.Phone = "987-654-3210"

			resp, err := client.Users.UpdateUser(ctx, user)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			updated, err := client.Users.AwaitFirstName(ctx, user.Username, "Kate", config.DeleteAwaitTimeout)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Email).To(Equal(user.Email))
			Expect(updated.Phone).To(Equal(user.Phone))
		})
	})

	Context("When deleting a user", func() {
		It("should converge to not found", func() {
			user := api.CreateUserWithCleanup(client, ctx, api.NewUserPayload().Build())

			// Prove the user is readable before deleting it.
			_, err := client.Users.GetUser(ctx, user.Username)
			Expect(err).NotTo(HaveOccurred())

			resp, err := client.Users.DeleteUser(ctx, user.Username)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			gone, err := client.Users.GetUserExpectingNotFound(ctx, user.Username)
			Expect(err).NotTo(HaveOccurred())
			Expect(gone.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Context("When retrieving a non-existent user", func() {
		It("should report not found with the service's error envelope", func() {
			username := api.GenerateTestID() + "-missing"

			resp, err := client.Users.GetUserRaw(ctx, username)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

			errBody, err := resp.APIResponse()
			Expect(err).NotTo(HaveOccurred())
			Expect(errBody.Message).To(Equal("User not found"))
		})
	})

	Context("When deleting a non-existent user", func() {
		It("should report not found", func() {
			username := api.GenerateTestID() + "-missing"

			resp, err := client.Users.DeleteUser(ctx, username)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Context("When logging in and out", func() {
		It("should open a session and close it", func() {
			user := api.CreateUserWithCleanup(client, ctx, api.NewUserPayload().Build())

			login, err := client.Users.Login(ctx, user.Username, user.Password)
			Expect(err).NotTo(HaveOccurred())
			Expect(login.Message).To(HavePrefix("logged in user session:"))

			logout, err := client.Users.Logout(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(logout.Message).To(Equal("ok"))
		})
	})

	Context("When batch-creating users", func() {
		Describe("Given the list endpoint", func() {
			It("should create every user in the sequence", func() {
				users := []api.User{
					*api.NewUserPayload().Build(),
					*api.NewUserPayload().Build(),
					*api.NewUserPayload().Build(),
				}

				for _, user := range users {
					api.RegisterUserCleanup(client, user.Username)
				}

				_, err := client.Users.CreateUsersWithList(ctx, users)
				Expect(err).NotTo(HaveOccurred())

				for _, user := range users {
					retrieved, getErr := client.Users.GetUser(ctx, user.Username)
					Expect(getErr).NotTo(HaveOccurred())
					Expect(retrieved.Username).To(Equal(user.Username))
				}
			})
		})

		Describe("Given the array endpoint", func() {
			It("should create every user in the sequence", func() {
				users := []api.User{
					*api.NewUserPayload().Build(),
					*api.NewUserPayload().Build(),
					*api.NewUserPayload().Build(),
				}

				for _, user := range users {
					api.RegisterUserCleanup(client, user.Username)
				}

				_, err := client.Users.CreateUsersWithArray(ctx, users)
				Expect(err).NotTo(HaveOccurred())

				for _, user := range users {
					retrieved, getErr := client.Users.GetUser(ctx, user.Username)
					Expect(getErr).NotTo(HaveOccurred())
					Expect(retrieved.Username).To(Equal(user.Username))
				}
			})
		})
	})
})
