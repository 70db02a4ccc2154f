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

//nolint:err113 // dynamic errors acceptable in test code
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

// contentTypeJSON is the media type the service is required to accept and
// produce for every body the suite exchanges with it.
const contentTypeJSON = "application/json"

// Response is one observation of the remote service: the status code and
// raw body of a single HTTP exchange. Raw client variants return it without
// any assertion so negative-path tests and await predicates can inspect it.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("unmarshaling response body %q: %w", string(r.Body), err)
	}

	return nil
}

// APIResponse decodes the service's generic message envelope.
func (r *Response) APIResponse() (*APIResponse, error) {
	result := &APIResponse{}
	if err := r.JSON(result); err != nil {
		return nil, err
	}

	return result, nil
}

// APIClient issues requests against the petstore service. It holds no
// entity state; every observation comes from the remote service.
type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints

	Pets  *PetClient
	Users *UserClient
	Store *StoreClient
}

func NewAPIClient(baseURL string) *APIClient {
	config := LoadTestConfig()
	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL)
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}

	c.Pets = &PetClient{api: c}
	c.Users = &UserClient{api: c}
	c.Store = &StoreClient{api: c}

	return c
}

// logError logs a transport-level failure.
func (c *APIClient) logError(method, path string, duration time.Duration, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s error=%v\n", method, path, context, duration, err)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s\n", method, path, expectedStatus, actualStatus, body)
}

// logUnexpectedContentType logs an unexpected response content type.
func (c *APIClient) logUnexpectedContentType(method, path, contentType, body string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED CONTENT TYPE expected=%s got=%s body=%s\n", method, path, contentTypeJSON, contentType, body)
}

// doRequest performs one HTTP exchange. A non-nil body is marshaled to JSON.
// When expectedStatus is positive, a different status code is a contract
// violation and surfaces as an error carrying expected vs actual detail; the
// observation is still returned for diagnostics. expectedStatus zero means
// raw: the response is returned unconditionally.
func (c *APIClient) doRequest(ctx context.Context, method, path string, query url.Values, body any, expectedStatus int) (*Response, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader

	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	req.Header.Set("Accept", contentTypeJSON)

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s\n", method, path, resp.StatusCode, duration)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	observation := &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        respBody,
	}

	if expectedStatus > 0 {
		if resp.StatusCode != expectedStatus {
			c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody))
			return observation, fmt.Errorf("unexpected status code: expected %d, got %d, body: %s", expectedStatus, resp.StatusCode, string(respBody))
		}

		// The success criterion is status AND content type: a 200 carrying
		// an HTML error page must not pass as a conforming response.
		if !strings.Contains(observation.ContentType, contentTypeJSON) {
			c.logUnexpectedContentType(method, path, observation.ContentType, string(respBody))
			return observation, fmt.Errorf("unexpected content type: expected %s, got %q, body: %s", contentTypeJSON, observation.ContentType, string(respBody))
		}
	}

	return observation, nil
}

// await wraps a raw call in the polling protocol with a status-code
// predicate. Every wait-until-success and expecting-error variant funnels
// through here so the raw and retrying paths share one transport.
func (c *APIClient) await(ctx context.Context, action func(context.Context) (*Response, error), wantStatus int, opts AwaitOptions) (*Response, error) {
	return Await(ctx, action, func(resp *Response) bool {
		return resp.StatusCode == wantStatus
	}, opts)
}
