package navigator_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-mizutani/chronocode/pkg/infra/navigator"
	"github.com/m-mizutani/gt"
)

func TestNavigate(t *testing.T) {
	testCases := map[string]struct {
		base   string
		dest   string
		expect string
	}{
		"absolute": {
			base:   "http://localhost:3000",
			dest:   "http://localhost:8080/auth/github",
			expect: "Open http://localhost:8080/auth/github\n",
		},
		"relative root": {
			base:   "http://localhost:3000/home",
			dest:   "/",
			expect: "Open http://localhost:3000/\n",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			nav := gt.R1(navigator.New(&buf, tc.base)).NoError(t)
			gt.NoError(t, nav.Navigate(context.Background(), tc.dest))
			gt.V(t, buf.String()).Equal(tc.expect)
		})
	}

	t.Run("invalid base", func(t *testing.T) {
		_, err := navigator.New(&bytes.Buffer{}, "http://[::1")
		gt.Error(t, err)
	})
}
