package testutil_test

import (
	"testing"

	"github.com/m-mizutani/chronocode/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Setenv("TEST_CHRONOCODE_DUMMY", "http://localhost:8080")
	gt.V(t, testutil.GetEnvOrSkip(t, "TEST_CHRONOCODE_DUMMY")).Equal("http://localhost:8080")
}
