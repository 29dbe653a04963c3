// Package main is the entry point for the swms CLI.
// The CLI drives the work-study core in-process: admins post jobs and review
// applications and hours, students apply and log hours.
package main

import (
	"os"

	"workstudy/cmd/swms/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
