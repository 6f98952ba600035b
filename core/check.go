package core

import (
	"bytes"
	"fmt"
	"io"

	"go.hacdias.com/signpost/opengraph"
)

// Check fetches every destination in the redirects file and writes a short
// report to w. Unlike [Core.Build], a destination that cannot be reached does
// not stop the run: it is reported and the remaining entries are still
// checked. Nothing is written to the output directory.
func (co *Core) Check(w io.Writer) error {
	redirects, err := co.LoadRedirects()
	if err != nil {
		return err
	}

	unreachable := 0

	for _, r := range redirects {
		body, status, err := co.fetcher.Fetch(r.URL)
		if err != nil {
			unreachable++
			fmt.Fprintf(w, "ERR %s %s: %s\n", r.Name, r.URL, err)
			continue
		}

		line := fmt.Sprintf("%d %s %s", status, r.Name, r.URL)

		props, err := opengraph.ExtractReader(bytes.NewReader(body))
		if err == nil {
			if title := plainText(props.Get("og:title")); title != "" {
				line += " " + truncateStringWithEllipsis(title, 60)
			}
		}

		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\nChecked %d redirects, %d unreachable.\n", len(redirects), unreachable)
	return nil
}
