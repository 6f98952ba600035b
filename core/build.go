package core

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"go.hacdias.com/signpost/opengraph"
)

// Build loads the redirects file and generates one HTML page per redirect in
// the output directory. Redirects are processed in file order and the first
// failure aborts the whole build: pages already written stay on disk.
func (co *Core) Build() error {
	co.buildMu.Lock()
	defer co.buildMu.Unlock()

	redirects, err := co.LoadRedirects()
	if err != nil {
		return err
	}

	err = co.outFS.MkdirAll(".", 0777)
	if err != nil {
		return err
	}

	for _, r := range redirects {
		err = co.buildRedirect(r)
		if err != nil {
			return err
		}
	}

	return nil
}

func (co *Core) buildRedirect(r *Redirect) error {
	body, _, err := co.fetcher.Fetch(r.URL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", r.URL, err)
	}

	props, err := opengraph.ExtractReader(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", r.URL, err)
	}

	co.log.Debugw("extracted properties", "url", r.URL, "properties", lo.Map(props, func(p opengraph.Property, _ int) string {
		return p.Name
	}))

	filename := r.Filename()
	err = co.outFS.WriteFile(filename, []byte(redirectPage(r.URL, props)), 0644)
	if err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}

	co.log.Infof("wrote %s: redirect to %s", filepath.Join(co.cfg.OutDirectory, filename), r.URL)
	return nil
}
