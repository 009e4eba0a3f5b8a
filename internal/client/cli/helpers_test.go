package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/crmkeeper/internal/client/records"
	"github.com/dmitrijs2005/crmkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/crmkeeper/internal/client/services"
	"github.com/dmitrijs2005/crmkeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

// newTestApp builds an App over an in-memory repository reading input.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	log := logging.Discard()
	as := services.NewAuthService(context.Background(), metadata.NewMemoryRepository(), log)
	var out bytes.Buffer
	a := newApp(as, records.NewBook(log), log, rdr(input), &out)
	a.now = func() time.Time { return testNow }
	return a, &out
}

// loggedInApp is newTestApp with alice already registered and logged in.
func loggedInApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	a, out := newTestApp(t, input)
	_, err := a.authService.Register(context.Background(), "alice", []byte("secret1"), "Alice", "Smith")
	require.NoError(t, err)
	return a, out
}

// stubPasswords makes getPassword return pws in order, each as a fresh slice.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if i >= len(pws) {
			return nil, io.EOF
		}
		pw := []byte(pws[i])
		i++
		return pw, nil
	}
	t.Cleanup(func() { getPassword = orig })
}
