package cmd

import (
	"workstudy/internal/engine"
	"workstudy/internal/store"

	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Performance feedback on student work",
}

var feedbackAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Leave feedback for a student (admin)",
	Long: `Leave a 1 to 5 star performance review for a student on one of their jobs.

Example:
  swms feedback add --student student-1 --job job-2 --rating 5 --comment "Great work"`,
	Run: func(cmd *cobra.Command, args []string) {
		if !requireAdmin(cmd) {
			return
		}
		flags := cmd.Flags()
		in := engine.FeedbackInput{}
		in.StudentID, _ = flags.GetString("student")
		in.JobID, _ = flags.GetString("job")
		in.Rating, _ = flags.GetInt("rating")
		in.Comment, _ = flags.GetString("comment")

		fb, err := current.engine.AddFeedback(cmd.Context(), in)
		if err != nil {
			printError(cmd, err)
			return
		}
		cmd.Printf("✓ Feedback recorded for %s\nID: %s\nRating: %s\n", userName(fb.StudentID), fb.ID, stars(fb.Rating))
	},
}

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List feedback",
	Long:  `List feedback. Students see the reviews they received; admins see all reviews, optionally narrowed with --student.`,
	Run: func(cmd *cobra.Command, args []string) {
		userID, isAdmin, ok := requireUser(cmd)
		if !ok {
			return
		}
		studentFilter, _ := cmd.Flags().GetString("student")

		var entries []store.Feedback
		subject := ""
		switch {
		case !isAdmin:
			entries = current.engine.StudentFeedback(userID)
			subject = userID
		case studentFilter != "":
			entries = current.engine.StudentFeedback(studentFilter)
			subject = studentFilter
		default:
			entries = current.engine.Feedback()
		}
		if len(entries) == 0 {
			cmd.Println("No feedback yet")
			return
		}

		for _, f := range entries {
			cmd.Printf("%s %s  %s%s%s\n", stars(f.Rating), jobTitle(f.JobID), colorDim, f.Date, colorReset)
			if isAdmin {
				cmd.Printf("  %sstudent:%s %s\n", colorDim, colorReset, userName(f.StudentID))
			}
			cmd.Printf("  %s\n", f.Comment)
			cmd.Printf("  %s- %s%s\n", colorDim, userName(f.AdminID), colorReset)
		}
		if subject != "" {
			if avg, ok := current.engine.StudentAverageRating(subject); ok {
				cmd.Printf("Average rating: %.1f\n", avg)
			}
		}
	},
}

func init() {
	flags := feedbackAddCmd.Flags()
	flags.String("student", "", "Student being reviewed")
	flags.String("job", "", "Job the review is about")
	flags.Int("rating", 0, "Rating from 1 to 5")
	flags.String("comment", "", "Review text")

	feedbackListCmd.Flags().String("student", "", "Only show feedback for this student (admin)")

	feedbackCmd.AddCommand(feedbackAddCmd, feedbackListCmd)
	rootCmd.AddCommand(feedbackCmd)
}
