package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/maildoc"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.History == nil {
		err := maildoc.Errorf(maildoc.EINVALID, "history requires --store=sqlite")
		fmt.Fprintf(deps.Stderr, "error: %s\n", maildoc.ErrorMessage(err))
		return err
	}

	copies, err := deps.History.FindCopies(deps.Ctx, c.DocumentID, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", maildoc.ErrorMessage(err))
		return err
	}

	if len(copies) == 0 {
		fmt.Fprintf(deps.Stdout, "No copies of %s. Use 'maildoc download' to store one.\n", c.DocumentID)
		return nil
	}

	for _, tc := range copies {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d bytes  %s\n",
			tc.ID, tc.SavedAt.Format(time.RFC3339), tc.Size, tc.ContentHash)
	}
	return nil
}
