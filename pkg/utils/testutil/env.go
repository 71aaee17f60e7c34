package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of key, skipping the test when it is unset.
// Integration tests against a live Chronocode API use it for their endpoints.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		t.Skipf("%s is not set", key)
	}
	return v
}
