package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/crmkeeper/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	err      error

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool                    { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error  { return f.record("register") }
func (f *fakeExec) WhoAmI(ctx context.Context) error    { return f.record("whoami") }
func (f *fakeExec) Dashboard(ctx context.Context) error { return f.record("dashboard") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) List(ctx context.Context, kind string) error   { return f.record("list " + kind) }
func (f *fakeExec) Add(ctx context.Context, kind string) error    { return f.record("add " + kind) }
func (f *fakeExec) Update(ctx context.Context, kind string) error { return f.record("update " + kind) }
func (f *fakeExec) Delete(ctx context.Context, kind string) error { return f.record("delete " + kind) }

func TestRunREPL_Dispatch(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	in := lines(
		"help",
		"login",
		"help",
		"",
		"dashboard",
		"d",
		"list applications",
		"l tasks",
		"add project",
		"edit courses",
		"update app",
		"rm tasks",
		"delete",
		"whoami",
		"register",
		"foobar",
		"logout",
		"exit",
		"login",
	)

	runREPL(context.Background(), exec, func() string { return "(alice)" }, rdr(in), &out)

	assert.Equal(t, []string{
		"login",
		"dashboard",
		"dashboard",
		"list applications",
		"list tasks",
		"add project",
		"update courses",
		"update app",
		"delete tasks",
		"delete ",
		"whoami",
		"register",
		"logout",
	}, exec.calls)

	s := out.String()
	assert.Contains(t, s, helpLoggedOut)
	assert.Contains(t, s, helpLoggedIn)
	assert.Contains(t, s, "Unknown command: foobar")
	assert.Contains(t, s, "crm (alice)> ")
	assert.Contains(t, s, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("register"), &out)
	assert.Equal(t, []string{"register"}, exec.calls)
	assert.NotContains(t, out.String(), "Bye!")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "" }, rdr(lines("login", "exit")), &out)
	assert.Empty(t, exec.calls)
	assert.Empty(t, out.String())
}

func TestRunREPL_ErrorReporting(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantPrint bool
	}{
		{"unexpected", errors.New("boom"), true},
		{"validation", common.ErrRequiredField, true},
		{"not logged in", common.ErrNotLoggedIn, false},
		{"taken", fmt.Errorf("register: %w", common.ErrUsernameTaken), false},
		{"credentials", common.ErrInvalidCredentials, false},
		{"not found", fmt.Errorf("update 3: %w", common.ErrorNotFound), false},
		{"kind", common.ErrUnknownKind, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExec{err: tt.err}
			var out bytes.Buffer
			runREPL(context.Background(), exec, func() string { return "" }, rdr(lines("whoami", "whoami", "exit")), &out)

			assert.Len(t, exec.calls, 2, "errors must not stop the loop")
			if tt.wantPrint {
				assert.Contains(t, out.String(), "Error: "+tt.err.Error())
			} else {
				assert.NotContains(t, out.String(), "Error:")
			}
		})
	}
}
