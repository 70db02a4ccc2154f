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
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/myapi/petstore-conformance/test/api"
)

var _ = Describe("Store Orders", func() {
	Context("When placing an order for an existing pet", func() {
		It("should place, retrieve and delete the order end to end", func() {
			By("creating a pet to order")
			pet := api.CreatePetWithCleanup(client, ctx, api.NewPetPayload().Build())

			By("placing the order")
			payload := api.NewOrderPayload(pet.ID)
			placed, err := client.Store.PlaceOrder(ctx, payload)
			Expect(err).NotTo(HaveOccurred())

			Expect(placed.ID).To(Equal(payload.ID))
			Expect(placed.PetID).To(Equal(pet.ID))
			Expect(placed.Quantity).To(Equal(payload.Quantity))
			Expect(placed.ShipDate).To(Equal(payload.ShipDate))
			Expect(placed.Status).To(Equal("placed"))
			Expect(placed.Complete).To(Equal(payload.Complete))

			By("retrieving the order once it reflects the pet reference")
			retrieved, err := client.Store.AwaitOrderPetID(ctx, payload.ID, pet.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.ID).To(Equal(payload.ID))
			Expect(retrieved.PetID).To(Equal(pet.ID))

			By("deleting the order")
			resp, err := client.Store.DeleteOrder(ctx, payload.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			result, err := resp.APIResponse()
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Code).To(Equal(200))
			Expect(result.Message).To(Equal(strconv.FormatInt(payload.ID, 10)))
		})
	})

	Context("When retrieving a non-existent order", func() {
		It("should report not found with the service's error envelope", func() {
			resp, err := client.Store.GetOrderRaw(ctx, -1)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

			errBody, err := resp.APIResponse()
			Expect(err).NotTo(HaveOccurred())
			Expect(errBody.Code).To(Equal(1))
			Expect(errBody.Type).To(Equal("error"))
			Expect(errBody.Message).To(Equal("Order not found"))
		})
	})

	Context("When deleting a non-existent order", func() {
		It("should report not found with the service's error envelope", func() {
			resp, err := client.Store.DeleteOrder(ctx, -1)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

			// The delete path uses a different envelope than the read path.
			errBody, err := resp.APIResponse()
			Expect(err).NotTo(HaveOccurred())
			Expect(errBody.Code).To(Equal(404))
			Expect(errBody.Type).To(Equal("unknown"))
			Expect(errBody.Message).To(Equal("Order Not Found"))
		})
	})

	Context("When checking the inventory", func() {
		It("should increment the count for a newly created status", func() {
			// A unique status string starts from a count of zero, isolating
			// this test from everything else running against the shared
			// public instance.
			status := api.GenerateTestID() + "-status"

			initial, err := client.Store.Inventory(ctx)
			Expect(err).NotTo(HaveOccurred())
			initialCount := initial[status]

			api.CreatePetWithCleanup(client, ctx, api.NewPetPayload().WithStatus(status).Build())

			inventory, err := client.Store.AwaitInventoryCount(ctx, status, initialCount+1)
			Expect(err).NotTo(HaveOccurred())
			Expect(inventory[status]).To(Equal(initialCount + 1))
		})
	})
})
