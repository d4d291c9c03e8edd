package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newServerCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServerCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "codebro-server",
		Short: "Serve the CodeBro chat backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := InitializeApp()
			if err != nil {
				return err
			}
			defer cleanup()

			if port != 0 {
				app.Config.Port = port
			}

			addr := fmt.Sprintf(":%d", app.Config.Port)
			app.Logger.Info().Str("addr", addr).Msg("server starting")
			return http.ListenAndServe(addr, app.Router)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Override the listen port")
	return cmd
}
