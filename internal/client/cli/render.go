package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/cghdev/userdesk/internal/client/models"
	"github.com/cghdev/userdesk/internal/client/session"
	"github.com/cghdev/userdesk/internal/client/validation"
)

// renderTable formats the user list as an aligned text table.
func renderTable(users []models.User) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 2, 4, 2, ' ', 0)

	fmt.Fprintln(w, paint(headerStyle, "ID\tNAME\tEMAIL\tPHONE"))
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.PhoneNumber)
	}
	w.Flush()

	if len(users) == 0 {
		sb.WriteString(paint(dimStyle, "(no users)") + "\n")
	}
	sb.WriteString(paint(dimStyle, fmt.Sprintf("%d record(s)", len(users))) + "\n")
	return sb.String()
}

// renderToast formats an operation-outcome toast with its kind's style.
func renderToast(toast session.Toast) string {
	if toast.Message == "" {
		return ""
	}
	if toast.Kind == session.ToastError {
		return paint(errorStyle, "✗ "+toast.Message) + "\n"
	}
	return paint(successStyle, "✓ "+toast.Message) + "\n"
}

// renderFieldErrors lists field errors one per line in a stable order.
func renderFieldErrors(errs validation.FieldErrors) string {
	var sb strings.Builder
	for _, field := range []string{validation.FieldName, validation.FieldEmail, validation.FieldPhone} {
		if msg, ok := errs[field]; ok {
			sb.WriteString(paint(warnStyle, fmt.Sprintf("  %s: %s", field, msg)) + "\n")
		}
	}
	return sb.String()
}

// renderUser formats a single user's details.
func renderUser(u models.User) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d\n", paint(dimStyle, "ID:"), u.ID)
	fmt.Fprintf(&sb, "%s %s\n", paint(dimStyle, "Name:"), u.Name)
	fmt.Fprintf(&sb, "%s %s\n", paint(dimStyle, "Email:"), u.Email)
	fmt.Fprintf(&sb, "%s %s\n", paint(dimStyle, "Phone:"), u.PhoneNumber)
	return sb.String()
}
