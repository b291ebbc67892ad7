package cmd

import (
	"fmt"

	"github.com/khanhvo/mathgenius/internal/app"
	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the tutor service, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	svc, err := tutor.New(ctx, st)
	if err != nil {
		return fmt.Errorf("init tutor service: %w", err)
	}

	return app.Run(ctx, svc)
}
