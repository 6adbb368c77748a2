package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/api"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/config"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/expense"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func newTestApp(store session.Store) App {
	cfg := config.DefaultConfig()
	return NewApp(api.NewClient("http://127.0.0.1:1"), store, zap.NewNop(), cfg)
}

func asApp(t *testing.T, m tea.Model) App {
	t.Helper()
	a, ok := m.(App)
	if !ok {
		t.Fatalf("model is %T, want App", m)
	}
	return a
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// signIn drives an app from the login page onto the dashboard.
func signIn(t *testing.T, a App, userID string) App {
	t.Helper()
	m, _ := a.Update(authResultMsg{user: api.UserData{UserID: userID, AccessToken: "tok"}})
	got := asApp(t, m)
	if got.page != pageDashboard {
		t.Fatalf("page = %v after auth success, want dashboard", got.page)
	}
	return got
}

func TestStartsAtLogin(t *testing.T) {
	a := newTestApp(session.NewMemoryStore())
	if a.page != pageLogin {
		t.Fatalf("initial page = %v, want login", a.page)
	}
	if a.user != nil {
		t.Fatal("initial user must be absent")
	}
}

func TestLoginToSignupAndBack(t *testing.T) {
	a := newTestApp(session.NewMemoryStore())

	m, _ := a.Update(key(tea.KeyCtrlN))
	a = asApp(t, m)
	if a.page != pageSignup {
		t.Fatalf("page = %v after ctrl+n, want signup", a.page)
	}

	m, _ = a.Update(key(tea.KeyCtrlB))
	a = asApp(t, m)
	if a.page != pageLogin {
		t.Fatalf("page = %v after ctrl+b, want login", a.page)
	}
}

func TestSignInSuccessEntersDashboard(t *testing.T) {
	store := session.NewMemoryStore()
	a := signIn(t, newTestApp(store), "user-1")

	if a.user == nil || a.user.UserID != "user-1" {
		t.Fatalf("user = %+v, want user-1", a.user)
	}
	if a.dash.userID != "user-1" {
		t.Errorf("dashboard userID = %q", a.dash.userID)
	}
	if !a.dash.loading {
		t.Error("dashboard must enter loading state")
	}
	if !session.HasLogin(store) {
		t.Error("both session keys must be persisted")
	}
}

func TestSignUpSuccessEntersDashboard(t *testing.T) {
	store := session.NewMemoryStore()
	a := newTestApp(store)

	m, _ := a.Update(key(tea.KeyCtrlN))
	a = asApp(t, m)

	m, _ = a.Update(authResultMsg{user: api.UserData{UserID: "user-2", AccessToken: "tok"}})
	a = asApp(t, m)
	if a.page != pageDashboard {
		t.Fatalf("page = %v, want dashboard", a.page)
	}
	if uid, _ := session.UserID(store); uid != "user-2" {
		t.Errorf("persisted user id = %q", uid)
	}
}

func TestAuthFailureStaysOnLogin(t *testing.T) {
	a := newTestApp(session.NewMemoryStore())

	m, _ := a.Update(authResultMsg{err: api.ErrUnauthorized})
	a = asApp(t, m)
	if a.page != pageLogin {
		t.Fatalf("page = %v, want login", a.page)
	}
	if a.login.errMsg == "" {
		t.Error("an auth failure must surface an error message")
	}
}

func TestLogoutClearsSessionAndReturnsToLogin(t *testing.T) {
	store := session.NewMemoryStore()
	a := signIn(t, newTestApp(store), "user-1")

	m, _ := a.Update(key(tea.KeyCtrlL))
	a = asApp(t, m)

	if a.page != pageLogin {
		t.Fatalf("page = %v after logout, want login", a.page)
	}
	if a.user != nil {
		t.Error("user must be reset to absent on logout")
	}
	if _, ok := store.Get(session.KeyAccessToken); ok {
		t.Error("access token must be cleared on logout")
	}
	if _, ok := store.Get(session.KeyUserID); ok {
		t.Error("user id must be cleared on logout")
	}
}

func TestResumeSessionStartsOnDashboard(t *testing.T) {
	store := session.NewMemoryStore()
	if err := session.SaveLogin(store, "tok", "user-9"); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.General.ResumeSession = true
	a := NewApp(api.NewClient("http://127.0.0.1:1"), store, zap.NewNop(), cfg)

	if a.page != pageDashboard {
		t.Fatalf("page = %v, want dashboard when resuming", a.page)
	}
	if a.dash.userID != "user-9" {
		t.Errorf("dashboard userID = %q, want persisted value", a.dash.userID)
	}
}

func TestFetchFailureShowsErrorNeverATable(t *testing.T) {
	a := signIn(t, newTestApp(session.NewMemoryStore()), "user-1")

	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	a = asApp(t, m)

	m, _ = a.Update(expensesMsg{reqID: a.dash.reqID, err: errors.New("boom")})
	a = asApp(t, m)

	if a.dash.loading {
		t.Error("loading must end on failure")
	}
	if a.dash.errMsg != "Failed to load expenses" {
		t.Errorf("errMsg = %q", a.dash.errMsg)
	}

	view := a.View()
	if !strings.Contains(view, "Failed to load expenses") {
		t.Error("view must show the error message")
	}
	if strings.Contains(view, "MERCHANT") {
		t.Error("error state must not render the table")
	}
}

func TestEmptyListShowsEmptyState(t *testing.T) {
	a := signIn(t, newTestApp(session.NewMemoryStore()), "user-1")

	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	a = asApp(t, m)

	m, _ = a.Update(expensesMsg{reqID: a.dash.reqID, list: []expense.Expense{}})
	a = asApp(t, m)

	view := a.View()
	if !strings.Contains(view, "No expenses") {
		t.Error("empty list must render the explicit empty-state message")
	}
	if strings.Contains(view, "MERCHANT") {
		t.Error("empty list must not render table rows")
	}
}

func TestListRendersRowsAndSummary(t *testing.T) {
	a := signIn(t, newTestApp(session.NewMemoryStore()), "user-1")

	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	a = asApp(t, m)

	m, _ = a.Update(expensesMsg{reqID: a.dash.reqID, list: []expense.Expense{
		{Merchant: "Cafe", Amount: 12.5, Currency: "INR", CreatedAt: "2024-01-15T10:00:00Z"},
		{Merchant: "", Amount: 30, CreatedAt: "2024-01-16T10:00:00Z"},
	}})
	a = asApp(t, m)

	view := a.View()
	for _, want := range []string{"Cafe", "N/A", "Jan 15, 2024", "Total Expenses", "Transactions", "Average Expense", "INR"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStaleFetchResultIsDropped(t *testing.T) {
	a := signIn(t, newTestApp(session.NewMemoryStore()), "user-1")

	// Complete fetch #1, then start fetch #2 with a manual refresh.
	m, _ := a.Update(expensesMsg{reqID: a.dash.reqID, list: nil})
	a = asApp(t, m)
	m, _ = a.Update(runeKey('r'))
	a = asApp(t, m)
	if !a.dash.loading || a.dash.reqID != 2 {
		t.Fatalf("refresh should start request 2, got reqID=%d loading=%v", a.dash.reqID, a.dash.loading)
	}

	// A late result from request 1 must not be applied.
	stale := []expense.Expense{{Merchant: "Old", Amount: 1}}
	m, _ = a.Update(expensesMsg{reqID: 1, list: stale})
	a = asApp(t, m)
	if !a.dash.loading {
		t.Error("stale result must not end the newer fetch's loading state")
	}
	if len(a.dash.list) != 0 {
		t.Error("stale result must not overwrite state")
	}

	// The newest request's result is applied.
	fresh := []expense.Expense{{Merchant: "New", Amount: 2}}
	m, _ = a.Update(expensesMsg{reqID: 2, list: fresh})
	a = asApp(t, m)
	if a.dash.loading || len(a.dash.list) != 1 || a.dash.list[0].Merchant != "New" {
		t.Errorf("fresh result not applied: loading=%v list=%+v", a.dash.loading, a.dash.list)
	}
}

func TestAddModalCancelResetsDraft(t *testing.T) {
	a := signIn(t, newTestApp(session.NewMemoryStore()), "user-1")
	m, _ := a.Update(expensesMsg{reqID: a.dash.reqID, list: nil})
	a = asApp(t, m)

	m, _ = a.Update(runeKey('a'))
	a = asApp(t, m)
	if !a.dash.showAdd {
		t.Fatal("'a' must open the add modal")
	}

	a.dash.draft.Merchant = "Cafe"
	a.dash.draft.Amount = "12.50"

	m, _ = a.Update(key(tea.KeyEsc))
	a = asApp(t, m)
	if a.dash.showAdd {
		t.Fatal("esc must close the modal")
	}
	if a.dash.draft.Merchant != "" || a.dash.draft.Amount != "" {
		t.Errorf("draft must reset on cancel: %+v", *a.dash.draft)
	}
}

func TestAddSuccessClosesModalAndRefetches(t *testing.T) {
	a := signIn(t, newTestApp(session.NewMemoryStore()), "user-1")
	m, _ := a.Update(expensesMsg{reqID: a.dash.reqID, list: nil})
	a = asApp(t, m)
	m, _ = a.Update(runeKey('a'))
	a = asApp(t, m)

	a.dash.draft.Merchant = "Cafe"
	a.dash.draft.Amount = "12.50"

	m, cmd := a.Update(expenseAddedMsg{})
	a = asApp(t, m)
	if a.dash.showAdd {
		t.Error("modal must close on success")
	}
	if a.dash.draft.Merchant != "" {
		t.Error("draft must reset on success")
	}
	if !a.dash.loading || a.dash.reqID != 2 {
		t.Errorf("success must trigger an authoritative refetch, reqID=%d loading=%v",
			a.dash.reqID, a.dash.loading)
	}
	if cmd == nil {
		t.Error("refetch command must be issued")
	}
}

func TestAddFailureKeepsModalAndValues(t *testing.T) {
	a := signIn(t, newTestApp(session.NewMemoryStore()), "user-1")
	m, _ := a.Update(expensesMsg{reqID: a.dash.reqID, list: nil})
	a = asApp(t, m)
	m, _ = a.Update(runeKey('a'))
	a = asApp(t, m)

	a.dash.draft.Merchant = "Cafe"
	a.dash.draft.Amount = "12.50"

	m, _ = a.Update(expenseAddedMsg{err: errors.New("boom")})
	a = asApp(t, m)
	if !a.dash.showAdd {
		t.Error("modal must stay open on failure")
	}
	if a.dash.addErr == "" {
		t.Error("failure must surface an error message in the modal")
	}
	if a.dash.draft.Merchant != "Cafe" || a.dash.draft.Amount != "12.50" {
		t.Errorf("entered values must be kept on failure: %+v", *a.dash.draft)
	}
	if a.dash.list != nil {
		t.Error("a failed create must not change the displayed list")
	}
}
