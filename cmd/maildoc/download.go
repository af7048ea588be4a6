package main

import (
	"fmt"

	"github.com/fwojciec/maildoc"
	"github.com/fwojciec/maildoc/extract"
)

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	svc := &extract.Service{
		DocumentID: c.DocumentID,
		Exporter:   deps.Exporter,
		Store:      deps.Store,
		Logger:     deps.Logger,
	}

	location, err := svc.Download(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", maildoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, location)
	return nil
}
