package navigator

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/m-mizutani/chronocode/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Writer navigates by printing the destination for the user to open.
// Relative destinations are resolved against the base URL.
type Writer struct {
	w    io.Writer
	base *url.URL
}

var _ interfaces.Navigator = (*Writer)(nil)

func New(w io.Writer, baseURL string) (*Writer, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid base URL", goerr.V("url", baseURL))
	}
	return &Writer{w: w, base: base}, nil
}

func (x *Writer) Navigate(ctx context.Context, dest string) error {
	ref, err := url.Parse(dest)
	if err != nil {
		return goerr.Wrap(err, "invalid destination", goerr.V("url", dest))
	}

	if _, err := fmt.Fprintf(x.w, "Open %s\n", x.base.ResolveReference(ref).String()); err != nil {
		return goerr.Wrap(err, "failed to write destination")
	}
	return nil
}
