package main

import (
	"fmt"

	"github.com/draftdiff/draftdiff"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return draftdiff.Errorf(draftdiff.EINVALID, "use --force to confirm deletion")
	}

	v, err := findVersionByName(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Versions.DeleteVersion(deps.Ctx, v.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", draftdiff.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted version %q\n", v.Name)
	return nil
}
