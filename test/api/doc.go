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

// Package api provides conformance test utilities for the Swagger Petstore
// API.
//
// The package maintains its own thin HTTP client (APIClient) rather than a
// generated or third-party petstore client. The suite's job is to observe
// exactly what the service puts on the wire - status codes, bodies, error
// envelopes - and a hand-rolled client keeps that observation unmediated:
//   - Raw call variants return the status code and body with no assertion,
//     for negative-path tests and as the primitive the polling variants wrap.
//   - Expected-status variants turn a mismatch into an error carrying
//     expected vs actual detail.
//   - Request/response logging can be switched on per run for debugging.
//
// The petstore acknowledges writes before reads reflect them. Await is the
// bounded-polling primitive that compensates: resource clients wrap their
// raw calls in it with per-endpoint timeout and interval choices. Transport
// failures are never retried; only a predicate that has not yet accepted an
// observation keeps the loop going.
//
// Cleanup of created entities is scheduled per test via Ginkgo's
// DeferCleanup, so it runs on failure too and stays scoped to the one test
// that created the entity.
package api
