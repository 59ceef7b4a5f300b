// Command symdump runs name analysis over a declaration manifest and reports
// the symbols it binds.
//
// Usage:
//
//	symdump bind shapes.yaml          # print the scope tree
//	symdump unparse shapes.yaml       # print declarations annotated with symbols
//	symdump index shapes.yaml ...     # store the bindings in a SQLite index
//	symdump lookup add                # query the index by name
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/hassan/semcore/internal/ast"
	"github.com/hassan/semcore/internal/config"
	"github.com/hassan/semcore/internal/manifest"
	"github.com/hassan/semcore/internal/semantic"
	"github.com/hassan/semcore/internal/symtab"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cli carries the settings resolved for one invocation.
type cli struct {
	configPath string
	index      string
	plain      bool
	verbose    bool

	cfg    config.Config
	logger *log.Logger
	styles styles
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "symdump",
		Short:         "Bind declarations to symbols and inspect the result",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", config.Path("."), "Settings file")
	root.PersistentFlags().StringVar(&c.index, "index", "", "SQLite symbol index (default from settings or SYMDUMP_INDEX)")
	root.PersistentFlags().BoolVar(&c.plain, "plain", false, "Disable styled output")
	root.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "Log each step to stderr")

	root.AddCommand(newBindCmd(c), newUnparseCmd(c), newIndexCmd(c), newLookupCmd(c))
	return root
}

// setup merges settings: flags win over the environment, which wins over the
// settings file, which wins over the defaults.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	cfg.Index = envOrDefault("SYMDUMP_INDEX", cfg.Index)

	flags := cmd.Flags()
	if flags.Changed("index") {
		cfg.Index = c.index
	}
	if flags.Changed("plain") {
		cfg.Plain = c.plain
	}
	if flags.Changed("verbose") {
		cfg.Verbose = c.verbose
	}
	c.cfg = cfg

	var logOut io.Writer = io.Discard
	if cfg.Verbose {
		logOut = cmd.ErrOrStderr()
	}
	c.logger = log.New(logOut, "symdump ", log.LstdFlags)
	c.styles = newStyles(cfg.Plain)
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// analysis is the outcome of binding one manifest.
type analysis struct {
	file        *ast.File
	global      *symtab.Scope
	diagnostics []error
}

// analyze loads a manifest and runs name analysis on it. Diagnostics are
// returned in the result; only load failures are errors.
func (c *cli) analyze(path string) (*analysis, error) {
	c.logger.Printf("loading %s", path)
	file, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}

	analyzer := semantic.New()
	diagnostics := analyzer.Analyze(file)
	c.logger.Printf("%s: %d declarations, %d diagnostics", file.Name, len(file.Decls), len(diagnostics))
	return &analysis{file: file, global: analyzer.Global(), diagnostics: diagnostics}, nil
}

// report prints diagnostics and returns an error if there were any.
func (c *cli) report(cmd *cobra.Command, res *analysis) error {
	if len(res.diagnostics) == 0 {
		return nil
	}
	for _, d := range res.diagnostics {
		fmt.Fprintln(cmd.ErrOrStderr(), c.styles.diagnostic.Render(d.Error()))
	}
	return fmt.Errorf("%s: %d name analysis errors", res.file.Name, len(res.diagnostics))
}
