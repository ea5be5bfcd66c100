package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	failWith error

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.failWith
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(_ context.Context, args []string) error {
	f.loggedIn = true
	return f.record("register", args)
}
func (f *fakeExec) Login(_ context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Logout(_ context.Context, args []string) error {
	f.loggedIn = false
	return f.record("logout", args)
}
func (f *fakeExec) WhoAmI(_ context.Context, args []string) error { return f.record("whoami", args) }
func (f *fakeExec) List(_ context.Context, args []string) error   { return f.record("list", args) }
func (f *fakeExec) Add(_ context.Context, args []string) error    { return f.record("add", args) }
func (f *fakeExec) Edit(_ context.Context, args []string) error   { return f.record("edit", args) }
func (f *fakeExec) Pay(_ context.Context, args []string) error    { return f.record("pay", args) }
func (f *fakeExec) Delete(_ context.Context, args []string) error { return f.record("delete", args) }
func (f *fakeExec) Report(_ context.Context, args []string) error { return f.record("report", args) }
func (f *fakeExec) Months(_ context.Context, args []string) error { return f.record("months", args) }
func (f *fakeExec) Positions(_ context.Context, args []string) error {
	return f.record("positions", args)
}
func (f *fakeExec) Export(_ context.Context, args []string) error { return f.record("export", args) }

// capturePrints swaps printlnFn for a recorder.
func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func run(exec *fakeExec, input string) {
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{}
	run(exec, strings.Join([]string{
		"help",
		"login",
		"help",
		"add",
		"l",
		"list",
		"edit 42",
		"pay 42",
		"delete 42",
		"rm 43",
		"report",
		"months",
		"positions",
		"export csv",
		"whoami",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"login", "add", "list", "list", "edit", "pay", "delete", "delete",
		"report", "months", "positions", "export", "whoami", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"42"}, exec.args[4])
	assert.Equal(t, []string{"43"}, exec.args[7])
	assert.Equal(t, []string{"csv"}, exec.args[11])
}

func TestRunREPL_RequiresLogin(t *testing.T) {
	lines := capturePrints(t)

	exec := &fakeExec{}
	run(exec, "list\nadd\npay 1\nlogout\nwhoami\nquit\n")

	assert.Equal(t, []string{"whoami"}, exec.calls)
	assert.Contains(t, *lines, "Please log in first (login or register)")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrints(t)

	run(&fakeExec{}, "help\nexit\n")
	assert.Contains(t, *lines, helpLoggedOut)

	run(&fakeExec{loggedIn: true}, "HELP\nexit\n")
	assert.Contains(t, *lines, helpLoggedIn)
}

func TestRunREPL_PrintsHandlerErrors(t *testing.T) {
	lines := capturePrints(t)

	exec := &fakeExec{loggedIn: true, failWith: errors.New("disk full")}
	run(exec, "add\nexit\n")

	assert.Contains(t, *lines, "Error: disk full")
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	lines := capturePrints(t)

	exec := &fakeExec{loggedIn: true}
	run(exec, "get 1\nexit\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Unknown command: get")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{loggedIn: true}
	run(exec, "\n\nreport")

	assert.Equal(t, []string{"report"}, exec.calls)
}

func TestRunREPL_ShowsStatusInPrompt(t *testing.T) {
	lines := capturePrints(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "(alice) " },
		bufio.NewReader(strings.NewReader("exit\n")))

	assert.Equal(t, "paybook (alice) > ", (*lines)[0])
}
