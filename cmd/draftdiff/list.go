package main

import (
	"fmt"

	"github.com/draftdiff/draftdiff"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	versions, err := deps.Versions.FindVersions(deps.Ctx, draftdiff.VersionFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", draftdiff.ErrorMessage(err))
		return err
	}

	if len(versions) == 0 {
		fmt.Fprintln(deps.Stdout, "No versions found. Use 'draftdiff add' or 'draftdiff fetch' to store one.")
		return nil
	}

	for _, v := range versions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n",
			v.ID, v.Name, v.Kind, v.CreatedAt.Format("2006-01-02 15:04"), v.Source)
	}

	return nil
}
