package tui

import (
	"context"
	"strings"

	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/api"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
)

func newSignupView() authView {
	vals := &authValues{}
	return authView{
		form:     newSignupForm(vals),
		vals:     vals,
		busyText: "Creating account...",
	}
}

func newSignupForm(v *authValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&v.name).
				Validate(notEmpty("name")),
			huh.NewInput().
				Title("Email").
				Value(&v.email).
				Validate(notEmpty("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&v.password).
				Validate(notEmpty("password")),
		),
	).WithWidth(authFormWidth).WithShowHelp(false)
}

func (a App) updateSignup(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		a.signup.submitting = false
		if msg.err != nil {
			a.logger.Warn("sign up failed", zap.Error(msg.err))
			a.signup.errMsg = authErrorText(msg.err)
			a.signup.form = newSignupForm(a.signup.vals)
			return a, a.signup.form.Init()
		}
		return a.handleAuthSuccess(msg.user)

	case tea.KeyMsg:
		if msg.String() == "ctrl+b" && !a.signup.submitting {
			a.logger.Info("navigating to login")
			a.login = newLoginView()
			a.login.setSize(a.width, a.height)
			a.page = pageLogin
			return a, a.login.form.Init()
		}
	}

	if a.signup.submitting {
		return a, nil
	}

	form, cmd := a.signup.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.signup.form = f
	}

	switch a.signup.form.State {
	case huh.StateCompleted:
		a.signup.submitting = true
		a.signup.errMsg = ""
		req := api.SignUpRequest{
			Name:     strings.TrimSpace(a.signup.vals.name),
			Email:    strings.TrimSpace(a.signup.vals.email),
			Password: a.signup.vals.password,
		}
		return a, signUpCmd(a.client, req)

	case huh.StateAborted:
		return a, tea.Quit
	}

	return a, cmd
}

// signUpCmd calls the registration endpoint in the background.
func signUpCmd(client *api.Client, req api.SignUpRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		user, err := client.SignUp(ctx, req)
		return authResultMsg{user: user, err: err}
	}
}
