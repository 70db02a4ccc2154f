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
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the public Swagger Petstore instance the suite runs
// against when PETSTORE_BASE_URL is not set.
const DefaultBaseURL = "https://petstore.swagger.io/v2"

type TestConfig struct {
	BaseURL string

	// RequestTimeout bounds a single HTTP exchange. It is distinct from the
	// await timeouts below, which bound how long we poll for the service to
	// converge after a write.
	RequestTimeout time.Duration

	// AwaitTimeout and AwaitPollInterval are the coarse polling defaults used
	// by wait-until-success reads. FastPollInterval is used where the service
	// usually converges in well under a second, e.g. verifying a field update.
	AwaitTimeout      time.Duration
	AwaitPollInterval time.Duration
	FastPollInterval  time.Duration

	// DeleteAwaitTimeout bounds polls that confirm a resource is gone. The
	// live service propagates deletions faster than creations, so this is
	// shorter than AwaitTimeout.
	DeleteAwaitTimeout time.Duration

	LogRequests  bool
	LogResponses bool
}

// LoadTestConfig loads configuration from environment variables and an
// optional .env file. Every value has a working default, so construction
// never fails.
func LoadTestConfig() *TestConfig {
	loadEnvFile()

	baseURL := os.Getenv("PETSTORE_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &TestConfig{
		BaseURL:            baseURL,
		RequestTimeout:     getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		AwaitTimeout:       getDurationWithDefault("AWAIT_TIMEOUT", 20*time.Second),
		AwaitPollInterval:  getDurationWithDefault("AWAIT_POLL_INTERVAL", time.Second),
		FastPollInterval:   getDurationWithDefault("FAST_POLL_INTERVAL", 100*time.Millisecond),
		DeleteAwaitTimeout: getDurationWithDefault("DELETE_AWAIT_TIMEOUT", 10*time.Second),
		LogRequests:        getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:       getBoolWithDefault("LOG_RESPONSES", false),
	}
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
