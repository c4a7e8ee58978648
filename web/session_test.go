package web

import "testing"

func TestSessionManager(t *testing.T) {
	t.Parallel()

	manager := NewSessionManager()
	session, err := manager.Create("admin")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if session.Token == "" || session.Username != "admin" {
		t.Fatalf("unexpected session: %+v", session)
	}

	found, ok := manager.Lookup(session.Token)
	if !ok || found.Token != session.Token {
		t.Fatalf("lookup must return the created session")
	}

	manager.Destroy(session.Token)
	if _, ok := manager.Lookup(session.Token); ok {
		t.Fatalf("destroyed session must not resolve")
	}
}

func TestSessionTokensAreUnique(t *testing.T) {
	t.Parallel()

	manager := NewSessionManager()
	first, err := manager.Create("admin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := manager.Create("admin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Token == second.Token {
		t.Fatalf("two logins must not share a token")
	}
}
