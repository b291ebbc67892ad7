package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the learner profile and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("Delete the profile, learning path, and history? A backup snapshot is kept. [y/N] ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc, err := tutor.New(cmd.Context(), st)
		if err != nil {
			return fmt.Errorf("init tutor service: %w", err)
		}
		if err := svc.ResetProfile(cmd.Context()); err != nil {
			return fmt.Errorf("reset profile: %w", err)
		}
		fmt.Println("Profile reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
