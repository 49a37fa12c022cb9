package main

import (
	"os"

	"github.com/iyulab/opencmd"
	"github.com/iyulab/opencmd/internal/handlers"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func newHandlersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "handlers",
		Short: "List known handler programs and whether they are installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			hs := handlers.Current()
			for _, env := range []string{opencmd.BrowserEnv, opencmd.EditorEnv} {
				if v := os.Getenv(env); v != "" {
					hs = append(hs, handlers.FromEnv(env, v))
				}
			}

			tbl := table.New("Handler", "Program", "Source", "Found", "Path")
			for _, s := range handlers.Probe(hs, nil) {
				found := "no"
				if s.Found {
					found = "yes"
				}
				tbl.AddRow(s.Name, s.Program, s.Source, found, s.Path)
			}
			tbl.Print()
			return nil
		},
	}
}
