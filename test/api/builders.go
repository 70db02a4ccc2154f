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
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	rand.Read(bytes)
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// randomInt64 returns a random value in [min, min+span).
func randomInt64(min, span int64) int64 {
	bytes := make([]byte, 8)
	rand.Read(bytes)

	value := int64(binary.BigEndian.Uint64(bytes) >> 1) // keep it non-negative

	return min + value%span
}

// RandomPetID picks an ID well above the service's seeded data so suites
// running in parallel against the shared public instance rarely collide.
func RandomPetID() int64 {
	return randomInt64(1_000_000, 99_000_000)
}

// RandomUserID picks an ID in the range the user store accepts.
func RandomUserID() int64 {
	return randomInt64(1_000_000, 1_000_000_000)
}

// RandomOrderID picks an ID in [1, 1000); the store rejects larger order IDs.
func RandomOrderID() int64 {
	return randomInt64(1, 999)
}
