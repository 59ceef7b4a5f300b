package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hassan/semcore/internal/symindex"
)

func newIndexCmd(c *cli) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "index <manifest>...",
		Short: "Store the symbols bound by each manifest in the SQLite index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := symindex.Open(c.cfg.Index)
			if err != nil {
				return err
			}
			defer store.Close()

			for _, path := range args {
				res, err := c.analyze(path)
				if err != nil {
					return err
				}
				if err := c.report(cmd, res); err != nil && !force {
					return err
				}
				n, err := store.SaveScope(res.file.Name, res.global)
				if err != nil {
					return err
				}
				c.logger.Printf("indexed %d symbols from %s into %s", n, res.file.Name, c.cfg.Index)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d symbols\n", res.file.Name, n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Index what was bound even when analysis reports errors")
	return cmd
}

func newLookupCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name>",
		Short: "Find indexed symbols by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := symindex.Open(c.cfg.Index)
			if err != nil {
				return err
			}
			defer store.Close()

			rows, err := store.Lookup(args[0])
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("no symbol named %s in %s", args[0], c.cfg.Index)
			}
			out := cmd.OutOrStdout()
			for _, row := range rows {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n",
					row.File, row.Qualified(), row.Kind, c.styles.dim.Render(row.Description))
			}
			return nil
		},
	}
}
