package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hassan/semcore/internal/ast"
)

func newBindCmd(c *cli) *cobra.Command {
	var unparse bool
	cmd := &cobra.Command{
		Use:   "bind <manifest>",
		Short: "Bind a manifest's declarations and print the scope tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.analyze(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c.styles.header.Render(res.file.Name))
			fmt.Fprint(out, res.global.Dump())

			if unparse || c.cfg.Unparse {
				fmt.Fprintln(out)
				if err := ast.Unparse(out, res.file); err != nil {
					return err
				}
			}
			return c.report(cmd, res)
		},
	}
	cmd.Flags().BoolVar(&unparse, "unparse", false, "Also print the annotated declarations")
	return cmd
}

func newUnparseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "unparse <manifest>",
		Short: "Print declarations with each bound name followed by its symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.analyze(args[0])
			if err != nil {
				return err
			}
			if err := ast.Unparse(cmd.OutOrStdout(), res.file); err != nil {
				return err
			}
			return c.report(cmd, res)
		},
	}
}
