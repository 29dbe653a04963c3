package cmd

import (
	"time"

	"workstudy/internal/engine"
	"workstudy/internal/store"

	"github.com/spf13/cobra"
)

// timeNow supplies the default --date for hours log.
var timeNow = time.Now

var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Log and approve work hours",
}

var hoursLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log hours worked on an approved job (student)",
	Long: `Log hours worked on one of your approved jobs. The entry waits for admin approval.

Example:
  swms hours log --job job-2 --date 2026-01-26 --hours 3.5 --notes "Help desk shift"`,
	Run: func(cmd *cobra.Command, args []string) {
		studentID, ok := requireStudent(cmd)
		if !ok {
			return
		}
		flags := cmd.Flags()
		jobID, _ := flags.GetString("job")
		date, _ := flags.GetString("date")
		hours, _ := flags.GetFloat64("hours")
		notes, _ := flags.GetString("notes")

		approved := current.engine.StudentApprovedJobs(studentID)
		if len(approved) == 0 {
			cmd.Println("You have no approved jobs to log hours against")
			return
		}
		if jobID != "" && !containsJob(approved, jobID) {
			cmd.Printf("Error: you are not approved for job %s\n", jobID)
			return
		}
		if date == "" {
			date = store.DateOf(timeNow()).String()
		}

		log, err := current.engine.SubmitWorkLog(cmd.Context(), engine.WorkLogInput{
			StudentID: studentID,
			JobID:     jobID,
			Date:      date,
			Hours:     hours,
			Notes:     notes,
		})
		if err != nil {
			printError(cmd, err)
			return
		}
		cmd.Printf("✓ Logged %s hours on %s for %s\nLog ID: %s\nStatus: %s\n",
			formatHours(log.Hours), log.Date, jobTitle(log.JobID), log.ID, approvalLabel(log.Approved))
	},
}

var hoursListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work logs",
	Long: `List work logs. Students see their own logs; admins see every log, optionally
narrowed with --student. Use --pending to show only logs awaiting approval.`,
	Run: func(cmd *cobra.Command, args []string) {
		userID, isAdmin, ok := requireUser(cmd)
		if !ok {
			return
		}
		pending, _ := cmd.Flags().GetBool("pending")
		studentFilter, _ := cmd.Flags().GetString("student")

		var logs []store.WorkLog
		switch {
		case !isAdmin:
			logs = current.engine.StudentWorkLogs(userID)
		case studentFilter != "":
			logs = current.engine.StudentWorkLogs(studentFilter)
		default:
			logs = current.engine.WorkLogs()
		}

		shown := 0
		for _, l := range logs {
			if pending && l.Approved {
				continue
			}
			shown++
			cmd.Printf("%-10s %s  %5sh  %-30s %s\n", l.ID, l.Date, formatHours(l.Hours), jobTitle(l.JobID), approvalLabel(l.Approved))
			if isAdmin {
				cmd.Printf("  %sstudent:%s %s\n", colorDim, colorReset, userName(l.StudentID))
			}
			if l.Notes != "" {
				cmd.Printf("  %s\n", l.Notes)
			}
		}
		if shown == 0 {
			cmd.Println("No work logs found")
		}
	},
}

var hoursApproveCmd = &cobra.Command{
	Use:   "approve [log_id]",
	Short: "Approve a submitted work log (admin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !requireAdmin(cmd) {
			return
		}
		if !current.engine.ApproveWorkLog(cmd.Context(), args[0]) {
			cmd.Printf("No work log with ID %s\n", args[0])
			return
		}
		cmd.Printf("✓ Work log %s approved\n", args[0])
	},
}

var hoursTotalCmd = &cobra.Command{
	Use:   "total",
	Short: "Show approved hours",
	Long:  `Show approved hours for the signed-in student, for --student, or across everyone when an admin runs it without --student.`,
	Run: func(cmd *cobra.Command, args []string) {
		userID, isAdmin, ok := requireUser(cmd)
		if !ok {
			return
		}
		studentFilter, _ := cmd.Flags().GetString("student")

		switch {
		case !isAdmin:
			cmd.Printf("Approved hours: %s\n", formatHours(current.engine.StudentTotalHours(userID)))
			cmd.Printf("Pending hours:  %s\n", formatHours(current.engine.StudentPendingHours(userID)))
		case studentFilter != "":
			cmd.Printf("Approved hours for %s: %s\n", userName(studentFilter), formatHours(current.engine.StudentTotalHours(studentFilter)))
			cmd.Printf("Pending hours for %s:  %s\n", userName(studentFilter), formatHours(current.engine.StudentPendingHours(studentFilter)))
		default:
			cmd.Printf("Approved hours (all students): %s\n", formatHours(current.engine.TotalApprovedHours()))
			cmd.Printf("Pending hours (all students):  %s\n", formatHours(current.engine.PendingHours()))
		}
	},
}

var hoursSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show approved and pending hours per student (admin)",
	Run: func(cmd *cobra.Command, args []string) {
		if !requireAdmin(cmd) {
			return
		}
		rows := current.engine.StudentHoursSummary()
		if len(rows) == 0 {
			cmd.Println("No hours logged yet")
			return
		}
		for _, r := range rows {
			cmd.Printf("%-10s %-16s %sh approved · %sh pending\n", r.StudentID, r.Name, formatHours(r.Approved), formatHours(r.Pending))
		}
	},
}

func containsJob(jobs []store.Job, jobID string) bool {
	for _, j := range jobs {
		if j.ID == jobID {
			return true
		}
	}
	return false
}

func init() {
	flags := hoursLogCmd.Flags()
	flags.String("job", "", "Approved job the hours were worked on")
	flags.String("date", "", "Date worked, YYYY-MM-DD (default: today)")
	flags.Float64("hours", 0, "Hours worked, 0.5 to 12")
	flags.String("notes", "", "What you worked on")

	hoursListCmd.Flags().Bool("pending", false, "Only show logs awaiting approval")
	hoursListCmd.Flags().String("student", "", "Only show logs from this student (admin)")

	hoursTotalCmd.Flags().String("student", "", "Show hours for this student (admin)")

	hoursCmd.AddCommand(hoursLogCmd, hoursListCmd, hoursApproveCmd, hoursTotalCmd, hoursSummaryCmd)
	rootCmd.AddCommand(hoursCmd)
}
