package cmd

import (
	"fmt"
	"strings"

	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc, err := tutor.New(cmd.Context(), st)
		if err != nil {
			return fmt.Errorf("init tutor service: %w", err)
		}

		profile, err := svc.LoadProfile(cmd.Context())
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if profile == nil {
			fmt.Println("No profile yet. Run mathgenius to set one up.")
			return nil
		}
		if len(profile.History) == 0 {
			fmt.Println("No quizzes completed yet.")
			return nil
		}

		fmt.Printf("%-17s  %-40s  %-7s  %-7s  %s\n",
			"Date", "Unit", "Score", "Time", "Result")
		fmt.Println(strings.Repeat("─", 90))
		for _, r := range profile.History {
			verdict := "Chưa đạt"
			if r.Ratio() >= learner.PassThreshold {
				verdict = "Đạt"
			}
			title := r.UnitTitle
			if len([]rune(title)) > 40 {
				title = string([]rune(title)[:40])
			}
			fmt.Printf("%-17s  %-40s  %3d/%-3d  %3dm%02ds  %s\n",
				r.Timestamp.Local().Format("02/01/2006 15:04"),
				title,
				r.Score, r.TotalQuestions,
				r.TimeSpentSeconds/60, r.TimeSpentSeconds%60,
				verdict,
			)
		}
		return nil
	},
}
