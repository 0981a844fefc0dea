package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/cghdev/userdesk/internal/client/form"
	"github.com/cghdev/userdesk/internal/client/session"
	"github.com/cghdev/userdesk/internal/client/validation"
)

// ListUsers reloads the list from the server and prints the table. A load
// failure is reported but the last-known-good table is still shown.
func (a *App) ListUsers(ctx context.Context) error {
	err := a.session.Load(ctx)
	st := a.session.State()
	if err != nil {
		fmt.Fprint(a.out, paint(errorStyle, "Error: "+st.Err)+"\n")
	}
	fmt.Fprint(a.out, renderTable(st.Items))
	return err
}

// AddUser opens the create panel and runs the form workflow.
func (a *App) AddUser(ctx context.Context) error {
	a.session.OpenCreate()
	return a.runPanel(ctx)
}

// EditUser opens the edit panel for the user with the given id.
func (a *App) EditUser(ctx context.Context, id int64) error {
	u, ok := a.session.FindUser(id)
	if !ok {
		fmt.Fprintf(a.out, "No user with id %d\n", id)
		return nil
	}
	a.session.OpenEdit(u)
	return a.runPanel(ctx)
}

// ShowUser fetches and prints a single user from the server.
func (a *App) ShowUser(ctx context.Context, id int64) error {
	u, err := a.api.Get(ctx, id)
	if err != nil {
		fmt.Fprint(a.out, paint(errorStyle, "Error: "+err.Error())+"\n")
		return err
	}
	fmt.Fprint(a.out, renderUser(*u))
	return nil
}

// DeleteUser runs the confirmation dialog for the user with the given id.
// The dialog survives a failed delete so the user can retry or cancel.
func (a *App) DeleteUser(ctx context.Context, id int64) error {
	u, ok := a.session.FindUser(id)
	if !ok {
		fmt.Fprintf(a.out, "No user with id %d\n", id)
		return nil
	}
	a.session.RequestDelete(u)

	prompt := fmt.Sprintf("Delete %q? This cannot be undone. [y/N]", u.Name)
	for {
		confirmed, err := GetYesNo(a.reader, prompt, a.out, false)
		if err != nil {
			a.session.CancelDelete()
			return err
		}
		if !confirmed {
			a.session.CancelDelete()
			fmt.Fprint(a.out, paint(dimStyle, "Cancelled")+"\n")
			return nil
		}

		err = a.session.ConfirmDelete(ctx)
		a.showToast()
		if err == nil {
			return nil
		}
		prompt = fmt.Sprintf("Retry deleting %q? [y/N]", u.Name)
	}
}

// runPanel drives the side-panel form until the draft is saved or the user
// stops editing. Validation failures and server errors both keep the panel
// open.
func (a *App) runPanel(ctx context.Context) error {
	st := a.session.State()
	if !st.Panel.Open || st.Panel.Data == nil {
		return errors.New("panel is not open")
	}

	f := form.New()
	f.SetValue(*st.Panel.Data)

	submit := a.session.Create
	if st.Panel.Mode == session.ModeEdit {
		submit = a.session.Update
	}

	for {
		if err := a.promptFields(f); err != nil {
			a.session.ClosePanel()
			return err
		}

		emails, phones := a.session.Taken()
		err := f.Submit(ctx, emails, phones, submit)
		if err == nil {
			// The session closed the panel and set the success toast.
			a.showToast()
			return nil
		}

		if errors.Is(err, form.ErrInvalidDraft) {
			fmt.Fprint(a.out, renderFieldErrors(f.Errors()))
		} else {
			a.showToast()
		}

		keep, perr := GetYesNo(a.reader, "Keep editing? [Y/n]", a.out, true)
		if perr != nil || !keep {
			a.session.ClosePanel()
			return perr
		}
	}
}

// promptFields asks for each field in turn. Enter keeps the shown current
// value; a single "-" clears the field.
func (a *App) promptFields(f *form.Controller) error {
	d := f.Draft()
	prompts := []struct {
		field   string
		label   string
		current string
	}{
		{validation.FieldName, "Name", d.Name},
		{validation.FieldEmail, "Email", d.Email},
		{validation.FieldPhone, "Phone number", d.PhoneNumber},
	}

	for _, p := range prompts {
		label := p.label
		if p.current != "" {
			label = fmt.Sprintf("%s [%s]", p.label, p.current)
		}
		value, err := GetSimpleText(a.reader, label, a.out)
		if err != nil {
			return err
		}
		switch value {
		case "":
			value = p.current
		case "-":
			value = ""
		}
		if err := f.SetField(p.field, value); err != nil {
			return err
		}
	}
	return nil
}

// showToast prints and clears the session's pending toast.
func (a *App) showToast() {
	st := a.session.State()
	if out := renderToast(st.Toast); out != "" {
		fmt.Fprint(a.out, out)
		a.session.DismissToast()
	}
}
