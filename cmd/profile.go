package cmd

import (
	"fmt"
	"strings"

	"github.com/khanhvo/mathgenius/internal/numerology"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile <dob>",
	Short: "Show the numerology learning profile for a date of birth",
	Long:  "Computes the life path number from a date of birth (dd/mm/yyyy) and prints the derived learning profile.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dob := args[0]
		if numerology.LifePath(dob) == 0 {
			return fmt.Errorf("invalid date of birth %q: need at least six digits", dob)
		}
		p := numerology.Analyze(dob)

		sep := strings.Repeat("─", 60)
		fmt.Printf("Số chủ đạo: %d — %s\n", p.LifePathNumber, p.Title)
		fmt.Println(sep)
		fmt.Println(p.Overview)
		fmt.Println()
		fmt.Printf("Phong cách học:      %s\n", p.LearningStyle)
		fmt.Printf("Tư duy Toán:         %s\n", p.MathApproach)
		fmt.Printf("Động lực:            %s\n", p.Motivation)
		fmt.Printf("Phương pháp hiệu quả: %s\n", p.EffectiveMethod)
		fmt.Println()
		fmt.Println("Điểm mạnh:")
		for _, s := range p.Strengths {
			fmt.Printf("  • %s\n", s)
		}
		fmt.Println("Thách thức:")
		for _, c := range p.Challenges {
			fmt.Printf("  • %s\n", c)
		}
		fmt.Println(sep)
		fmt.Println(p.Conclusion)
		return nil
	},
}
