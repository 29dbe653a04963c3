package cmd

import (
	"workstudy/internal/store"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply [job_id]",
	Short: "Apply to a job (student)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		studentID, ok := requireStudent(cmd)
		if !ok {
			return
		}
		jobID := args[0]
		job, found := current.engine.Job(jobID)
		if !found {
			cmd.Printf("No job with ID %s\n", jobID)
			return
		}
		if job.Status != store.JobStatusActive {
			cmd.Printf("Error: %s is %s and no longer accepts applications\n", job.Title, job.Status)
			return
		}

		note, _ := cmd.Flags().GetString("note")
		res := current.engine.ApplyForJob(cmd.Context(), studentID, jobID, note)
		if !res.OK {
			cmd.Printf("Error: %s\n", res.Message)
			return
		}
		cmd.Printf("✓ Applied to %s\nApplication ID: %s\nStatus: %s\n",
			job.Title, res.Application.ID, colorizeApplicationStatus(res.Application.Status))
	},
}

var applicationsCmd = &cobra.Command{
	Use:     "applications",
	Aliases: []string{"apps"},
	Short:   "Review job applications",
}

var applicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
	Long: `List applications. Students see their own applications; admins see every
application, optionally narrowed with --student or --status.`,
	Run: func(cmd *cobra.Command, args []string) {
		userID, isAdmin, ok := requireUser(cmd)
		if !ok {
			return
		}
		studentFilter, _ := cmd.Flags().GetString("student")
		statusFilter, _ := cmd.Flags().GetString("status")

		var apps []store.Application
		switch {
		case !isAdmin:
			apps = current.engine.StudentApplications(userID)
		case studentFilter != "":
			apps = current.engine.StudentApplications(studentFilter)
		default:
			apps = current.engine.Applications()
		}

		shown := 0
		for _, a := range apps {
			if statusFilter != "" && string(a.Status) != statusFilter {
				continue
			}
			shown++
			cmd.Printf("%-10s %-30s %s\n", a.ID, jobTitle(a.JobID), colorizeApplicationStatus(a.Status))
			if isAdmin {
				cmd.Printf("  %sstudent:%s %s\n", colorDim, colorReset, userName(a.StudentID))
			}
			cmd.Printf("  %sapplied:%s %s\n", colorDim, colorReset, a.AppliedDate)
			if a.CoverNote != "" {
				cmd.Printf("  %q\n", a.CoverNote)
			}
		}
		if shown == 0 {
			cmd.Println("No applications found")
		}
	},
}

var applicationsStatusCmd = &cobra.Command{
	Use:   "status [application_id] [pending|approved|rejected]",
	Short: "Set the decision on an application (admin)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if !requireAdmin(cmd) {
			return
		}
		status := store.ApplicationStatus(args[1])
		found, err := current.engine.UpdateApplicationStatus(cmd.Context(), args[0], status)
		if err != nil {
			printError(cmd, err)
			return
		}
		if !found {
			cmd.Printf("No application with ID %s\n", args[0])
			return
		}
		cmd.Printf("✓ Application %s is now %s\n", args[0], colorizeApplicationStatus(status))
	},
}

func init() {
	applyCmd.Flags().String("note", "", "Cover note for the application")

	applicationsListCmd.Flags().String("student", "", "Only show applications from this student (admin)")
	applicationsListCmd.Flags().String("status", "", "Only show applications with this status")

	applicationsCmd.AddCommand(applicationsListCmd, applicationsStatusCmd)
	rootCmd.AddCommand(applyCmd, applicationsCmd)
}
