package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) WhoAmI(context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Provision(context.Context) error {
	f.calls = append(f.calls, "provision")
	return nil
}
func (f *fakeExec) Pending(context.Context) error {
	f.calls = append(f.calls, "pending")
	return nil
}
func (f *fakeExec) Reissue(_ context.Context, id string) error {
	f.calls = append(f.calls, "reissue:"+id)
	return nil
}
func (f *fakeExec) CreateTenant(context.Context) error {
	f.calls = append(f.calls, "create-tenant")
	return nil
}
func (f *fakeExec) Tenants(context.Context) error {
	f.calls = append(f.calls, "tenants")
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func capturePrintln(t *testing.T) *[]string {
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

func TestRunREPL_Dispatch(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"",
		"help",
		"whoami",
		"provision",
		"pending",
		"reissue",
		"reissue 42",
		"create-tenant",
		"tenants",
		"foobar",
		"logout",
		"exit",
		"whoami",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	want := []string{"login", "whoami", "provision", "pending", "reissue:42", "create-tenant", "tenants", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}

	out := strings.Join(*lines, "\n")
	for _, s := range []string{
		"unictl status> ",
		"Available commands: login, exit",
		"Available commands: whoami,",
		"Usage: reissue <account-id>",
		"Unknown command: foobar",
		"Bye!",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestRunREPL_EOF(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))
	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls %v", exec.calls)
	}
}
