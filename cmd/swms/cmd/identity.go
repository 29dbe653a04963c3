package cmd

import (
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the identities you can log in as",
	Run: func(cmd *cobra.Command, args []string) {
		active, _ := current.session.Current()
		for _, u := range current.session.Roster() {
			marker := " "
			if u.ID == active.ID {
				marker = "*"
			}
			cmd.Printf("%s %-10s %-8s %s %s(%s)%s\n", marker, u.ID, u.Role, u.Name, colorDim, u.Department, colorReset)
		}
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [user_id]",
	Short: "Act as one of the pre-provisioned identities",
	Long:  `Switch the active identity. There is no password: this is a demonstration identity switcher, not authentication.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u, ok := current.session.Login(cmd.Context(), args[0])
		if !ok {
			cmd.Printf("Error: unknown user %q. Run: swms users\n", args[0])
			return
		}
		cmd.Printf("✓ Logged in as %s (%s)\n", u.Name, u.Role)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the active identity",
	Run: func(cmd *cobra.Command, args []string) {
		current.session.Logout(cmd.Context())
		cmd.Println("✓ Logged out")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active identity",
	Run: func(cmd *cobra.Command, args []string) {
		u, ok := current.session.Current()
		if !ok {
			cmd.Println("Not logged in")
			return
		}
		cmd.Printf("%s%s%s\n", colorBold, u.Name, colorReset)
		cmd.Printf("%sID:%s          %s\n", colorDim, colorReset, u.ID)
		cmd.Printf("%sRole:%s        %s\n", colorDim, colorReset, u.Role)
		cmd.Printf("%sEmail:%s       %s\n", colorDim, colorReset, u.Email)
		cmd.Printf("%sDepartment:%s  %s\n", colorDim, colorReset, u.Department)
	},
}

func init() {
	rootCmd.AddCommand(usersCmd, loginCmd, logoutCmd, whoamiCmd)
}
