// ABOUTME: Shared helpers for tui tests: an AppModel wired to the in-process fake backend and a
// ABOUTME: message-loop driver that runs every tea.Cmd synchronously until the app settles.
package tui

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2389-research/gifbox/core"
	"github.com/2389-research/gifbox/rpc"
	"github.com/2389-research/gifbox/rpc/rpctest"
	"github.com/2389-research/gifbox/session"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T, start string, opts ...rpctest.Option) (AppModel, *session.MemoryStore) {
	t.Helper()
	backend := rpctest.New(opts...)
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	client, err := rpc.NewClient(srv.URL+"/api", time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	store := session.NewMemoryStore()
	return NewAppModel(context.Background(), core.NewExecutor(client, store), store, start), store
}

// boot runs Init and everything it triggers.
func boot(t *testing.T, m AppModel) AppModel {
	t.Helper()
	return settle(t, m, drain(m.Init()))
}

// send delivers msg and runs every resulting command to completion.
func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	return settle(t, m, []tea.Msg{msg})
}

func settle(t *testing.T, m AppModel, queue []tea.Msg) AppModel {
	t.Helper()
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("message loop did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		updated, cmd := m.Update(next)
		m = updated.(AppModel)
		queue = append(queue, drain(cmd)...)
	}
	return m
}

// drain runs cmd and returns the EventMsgs it produced, expanding batches.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	case EventMsg:
		return []tea.Msg{msg}
	default:
		return nil
	}
}

func typeText(t *testing.T, m AppModel, s string) AppModel {
	t.Helper()
	for _, r := range s {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(t *testing.T, m AppModel, k tea.KeyType) AppModel {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: k})
}

// signUp registers a@b.com through the login page.
func signUp(t *testing.T, m AppModel) AppModel {
	t.Helper()
	m = typeText(t, m, "a@b.com")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "secret1")
	return press(t, m, tea.KeyCtrlR)
}
