// Package main is the CLI entry point for opencmd.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/iyulab/opencmd"
	"github.com/iyulab/opencmd/internal/config"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "opencmd [target]",
		Short: "Open a file or URL in the default system handler",
		Long: `opencmd resolves a path or URI to the command that opens it in the
system default handler (xdg-open, open, or cmd /c start), honoring the
BROWSER and EDITOR environment variables, and runs it.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolP("browser", "b", false, "open in the web browser ($BROWSER if set)")
	rootCmd.Flags().BoolP("editor", "e", false, "open in the text editor ($EDITOR if set)")
	rootCmd.Flags().String("env", "", "environment variable naming the handler to use")
	rootCmd.Flags().String("with", "", "open with this program instead of the default handler")
	rootCmd.Flags().BoolP("dry-run", "n", false, "print the resolved command without running it")
	rootCmd.Flags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.Flags().StringP("config", "c", "", "path to config file")
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.AddCommand(newHandlersCmd())
	rootCmd.AddCommand(newUpdateCmd(version))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	browser, _ := cmd.Flags().GetBool("browser")
	editor, _ := cmd.Flags().GetBool("editor")
	envVar, _ := cmd.Flags().GetString("env")
	with, _ := cmd.Flags().GetString("with")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath, _ := cmd.Flags().GetString("config")

	if browser && editor {
		return fmt.Errorf("--browser and --editor are mutually exclusive")
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	resolver := &opencmd.Resolver{}
	if verbose {
		resolver.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	target := opencmd.Parse(args[0])
	spec, err := resolveTarget(resolver, cfg, target, with, envVar, browser, editor)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Println(spec)
		return nil
	}

	c := spec.Cmd()
	if editor {
		// Editors own the terminal; run attached and wait.
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	}
	return c.Start()
}

// resolveTarget applies the handler precedence: --with, then --env, then the
// BROWSER/EDITOR environment variables, then the config file, then the
// platform default.
func resolveTarget(r *opencmd.Resolver, cfg *config.Config, target opencmd.PathOrURI,
	with, envVar string, browser, editor bool) (opencmd.CommandSpec, error) {
	if with != "" {
		return r.OpenWith(with, target)
	}
	if envVar != "" {
		return r.OpenEnv(envVar, target)
	}
	switch {
	case browser:
		if os.Getenv(opencmd.BrowserEnv) == "" && cfg.Handlers.Browser != "" {
			return r.OpenWith(cfg.Handlers.Browser, target)
		}
		return r.OpenBrowser(target)
	case editor:
		if os.Getenv(opencmd.EditorEnv) == "" && cfg.Handlers.Editor != "" {
			return r.OpenWith(cfg.Handlers.Editor, target)
		}
		return r.OpenEditor(target)
	default:
		if cfg.Handlers.Default != "" {
			return r.OpenWith(cfg.Handlers.Default, target)
		}
		return r.Open(target)
	}
}
