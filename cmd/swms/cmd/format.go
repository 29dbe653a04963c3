package cmd

import (
	"strconv"

	"workstudy/internal/store"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

func colorizeApplicationStatus(status store.ApplicationStatus) string {
	switch status {
	case store.ApplicationStatusApproved:
		return colorGreen + "✓ " + string(status) + colorReset
	case store.ApplicationStatusRejected:
		return colorRed + "✗ " + string(status) + colorReset
	case store.ApplicationStatusPending:
		return colorYellow + "◯ " + string(status) + colorReset
	default:
		return string(status)
	}
}

func approvalLabel(approved bool) string {
	if approved {
		return colorGreen + "✓ approved" + colorReset
	}
	return colorYellow + "◯ pending" + colorReset
}

// formatHours prints hours without trailing zeros: 4, 4.5, 12.25.
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// printer groups digits in amounts, e.g. $1,250.00.
var printer = message.NewPrinter(language.AmericanEnglish)

func formatRate(r float64) string {
	return printer.Sprintf("$%.2f/hr", r)
}

func stars(rating int) string {
	out := ""
	for i := 1; i <= 5; i++ {
		if i <= rating {
			out += "★"
		} else {
			out += "☆"
		}
	}
	return out
}

func userName(id string) string {
	if current != nil {
		if u, ok := current.session.Lookup(id); ok {
			return u.Name
		}
	}
	return id
}

func jobTitle(id string) string {
	if current != nil {
		if j, ok := current.engine.Job(id); ok {
			return j.Title
		}
	}
	return id
}
