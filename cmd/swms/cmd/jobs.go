package cmd

import (
	"workstudy/internal/engine"
	"workstudy/internal/store"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and manage job postings",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings, most recent first",
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		var f engine.JobFilter
		f.IncludeInactive, _ = flags.GetBool("all")
		f.Department, _ = flags.GetString("department")
		f.Search, _ = flags.GetString("search")

		jobs := current.engine.SearchJobs(f)
		if len(jobs) == 0 {
			if f.Department != "" || f.Search != "" {
				cmd.Println("No jobs match your filters")
				return
			}
			cmd.Println("No jobs posted")
			return
		}

		applied := map[string]store.ApplicationStatus{}
		if u, ok := current.session.Current(); ok && !u.IsAdmin() {
			for _, a := range current.engine.StudentApplications(u.ID) {
				applied[a.JobID] = a.Status
			}
		}

		for _, j := range jobs {
			cmd.Printf("%s%s%s  %s%s%s\n", colorBold, j.Title, colorReset, colorDim, j.ID, colorReset)
			cmd.Printf("  %s · %s · up to %dh/week · posted %s\n", j.Department, formatRate(j.HourlyRate), j.MaxHours, j.PostedDate)
			if j.Location != "" {
				cmd.Printf("  %s\n", j.Location)
			}
			if j.Status != store.JobStatusActive {
				cmd.Printf("  %sstatus: %s%s\n", colorRed, j.Status, colorReset)
			}
			if status, ok := applied[j.ID]; ok {
				cmd.Printf("  applied: %s\n", colorizeApplicationStatus(status))
			}
		}
	},
}

var jobsDepartmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "List departments and how many jobs each has posted",
	Run: func(cmd *cobra.Command, args []string) {
		counts := map[string]int{}
		for _, d := range current.engine.JobsByDepartment() {
			counts[d.Department] = d.Jobs
		}
		active := map[string]bool{}
		for _, d := range current.engine.ActiveDepartments() {
			active[d] = true
		}

		for _, d := range store.Departments() {
			marker := " "
			if active[d] {
				marker = colorGreen + "●" + colorReset
			}
			cmd.Printf("%s %-26s %d\n", marker, d, counts[d])
		}
	},
}

var jobsPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a new job (admin)",
	Long: `Post a new work-study position. The job starts active and is credited to you.

Example:
  swms jobs post --title "Mail Room Clerk" --department "Student Affairs" \
    --description "Sort and deliver campus mail." --rate 11.75 --max-hours 15`,
	Run: func(cmd *cobra.Command, args []string) {
		if !requireAdmin(cmd) {
			return
		}
		flags := cmd.Flags()
		in := engine.JobInput{}
		in.Title, _ = flags.GetString("title")
		in.Description, _ = flags.GetString("description")
		in.Department, _ = flags.GetString("department")
		in.HourlyRate, _ = flags.GetFloat64("rate")
		in.MaxHours, _ = flags.GetInt("max-hours")
		in.Requirements, _ = flags.GetString("requirements")
		in.Location, _ = flags.GetString("location")

		job, err := current.engine.PostJob(cmd.Context(), in)
		if err != nil {
			printError(cmd, err)
			return
		}
		cmd.Printf("✓ Job posted!\nID: %s\nTitle: %s\n", job.ID, job.Title)
	},
}

var jobsUpdateCmd = &cobra.Command{
	Use:   "update [job_id]",
	Short: "Change fields of an existing job (admin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !requireAdmin(cmd) {
			return
		}
		flags := cmd.Flags()
		var changes engine.JobChanges
		if flags.Changed("title") {
			v, _ := flags.GetString("title")
			changes.Title = &v
		}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			changes.Description = &v
		}
		if flags.Changed("department") {
			v, _ := flags.GetString("department")
			changes.Department = &v
		}
		if flags.Changed("rate") {
			v, _ := flags.GetFloat64("rate")
			changes.HourlyRate = &v
		}
		if flags.Changed("max-hours") {
			v, _ := flags.GetInt("max-hours")
			changes.MaxHours = &v
		}
		if flags.Changed("requirements") {
			v, _ := flags.GetString("requirements")
			changes.Requirements = &v
		}
		if flags.Changed("location") {
			v, _ := flags.GetString("location")
			changes.Location = &v
		}
		if flags.Changed("status") {
			v, _ := flags.GetString("status")
			status := store.JobStatus(v)
			changes.Status = &status
		}

		found, err := current.engine.UpdateJob(cmd.Context(), args[0], changes)
		if err != nil {
			printError(cmd, err)
			return
		}
		if !found {
			cmd.Printf("No job with ID %s\n", args[0])
			return
		}
		cmd.Printf("✓ Job %s updated\n", args[0])
	},
}

func addJobFields(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("title", "", "Job title")
	flags.String("description", "", "What the job involves")
	flags.String("department", "", "Hiring department (see: swms jobs departments)")
	flags.Float64("rate", 0, "Hourly rate in dollars")
	flags.Int("max-hours", 0, "Maximum hours per week")
	flags.String("requirements", "", "Requirements (optional)")
	flags.String("location", "", "Location (optional)")
}

func init() {
	jobsListCmd.Flags().Bool("all", false, "Include jobs that are no longer active")
	jobsListCmd.Flags().String("department", "", "Only show jobs in this department")
	jobsListCmd.Flags().String("search", "", "Match title, department or description")

	addJobFields(jobsPostCmd)
	addJobFields(jobsUpdateCmd)
	jobsUpdateCmd.Flags().String("status", "", "Lifecycle status, e.g. active or closed")

	jobsCmd.AddCommand(jobsListCmd, jobsDepartmentsCmd, jobsPostCmd, jobsUpdateCmd)
	rootCmd.AddCommand(jobsCmd)
}
