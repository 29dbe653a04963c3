package cmd

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the admin dashboard counters",
	Run: func(cmd *cobra.Command, args []string) {
		if !requireAdmin(cmd) {
			return
		}
		s := current.engine.Summary()

		cmd.Printf("%sWork-Study Overview%s\n", colorBold, colorReset)
		cmd.Printf("%sJobs:%s            %d active / %d total\n", colorCyan, colorReset, s.ActiveJobs, s.Jobs)
		cmd.Printf("%sApplications:%s    %d total\n", colorCyan, colorReset, s.Applications)
		cmd.Printf("  pending:  %d\n", s.PendingApplications)
		cmd.Printf("  approved: %d\n", s.ApprovedApplications)
		cmd.Printf("  rejected: %d\n", s.RejectedApplications)
		cmd.Printf("%sActive students:%s %d\n", colorCyan, colorReset, s.ActiveStudents)
		cmd.Printf("%sWork logs:%s       %d submitted / %d pending\n", colorCyan, colorReset, s.WorkLogs, s.PendingWorkLogs)
		cmd.Printf("%sApproved hours:%s  %s\n", colorCyan, colorReset, formatHours(s.TotalApprovedHours))
		cmd.Printf("%sPending hours:%s   %s\n", colorCyan, colorReset, formatHours(s.PendingHours))
		cmd.Printf("%sJobs by department:%s\n", colorCyan, colorReset)
		for _, d := range s.JobsByDepartment {
			cmd.Printf("  %-26s %d\n", d.Department, d.Jobs)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
