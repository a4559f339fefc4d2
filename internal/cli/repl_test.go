package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) record(name string, args ...string) {
	f.calls = append(f.calls, name)
	f.args = args
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.record("register")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Search(ctx context.Context, args []string) error {
	f.record("search", args...)
	return nil
}
func (f *fakeExec) Fav(ctx context.Context, args []string) error {
	f.record("fav", args...)
	return nil
}
func (f *fakeExec) Favs(ctx context.Context) error        { f.record("favs"); return nil }
func (f *fakeExec) Profile(ctx context.Context) error     { f.record("profile"); return nil }
func (f *fakeExec) EditProfile(ctx context.Context) error { f.record("edit"); return nil }
func (f *fakeExec) Dark(ctx context.Context, args []string) error {
	f.record("dark", args...)
	return nil
}
func (f *fakeExec) Sounds(ctx context.Context, args []string) error {
	f.record("sounds", args...)
	return nil
}
func (f *fakeExec) Prefs(ctx context.Context) error { f.record("prefs"); return nil }

func muteOutput(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	muteOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"search go concurrency",
		"fav 2",
		"favs",
		"profile",
		"dark on",
		"",
		"unknowncmd",
		"logout",
		"exit",
	}, "\n")

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(input))

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"login", "search", "fav", "favs", "profile", "dark", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %+v, want %+v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (all: %+v)", i, exec.calls[i], want[i], exec.calls)
		}
	}
}

func TestRunREPL_PassesArguments(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("search distributed systems\nexit\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.args) != 2 || exec.args[0] != "distributed" || exec.args[1] != "systems" {
		t.Fatalf("args = %+v", exec.args)
	}
}

func TestRunREPL_PromptRendering(t *testing.T) {
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		if len(a) == 1 {
			if s, ok := a[0].(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	status := ""
	sc := bufio.NewScanner(strings.NewReader("login\nexit\n"))

	runREPL(context.Background(), exec, func() string {
		if exec.loggedIn {
			status = "(Alice)"
		}
		return status
	}, sc)

	if len(lines) < 2 {
		t.Fatalf("prompt lines = %+v", lines)
	}
	if lines[0] != "cm>" {
		t.Fatalf("empty-status prompt = %q, want %q", lines[0], "cm>")
	}
	if lines[1] != "cm> (Alice)" {
		t.Fatalf("logged-in prompt = %q, want %q", lines[1], "cm> (Alice)")
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("favs\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "favs" {
		t.Fatalf("calls = %+v", exec.calls)
	}
}
