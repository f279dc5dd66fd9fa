package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionIDCtxKey(t *testing.T) {
	if SessionIDCtxKey.String() != "sessionID" {
		t.Errorf("expected 'sessionID', got '%s'", SessionIDCtxKey.String())
	}
}

func TestGetSessionIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, "session-token")

	sessionID, ok := GetSessionIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if sessionID != "session-token" {
		t.Errorf("expected sessionID='session-token', got '%s'", sessionID)
	}
}

func TestGetSessionIDFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	sessionID, ok := GetSessionIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if sessionID != "" {
		t.Errorf("expected empty sessionID, got '%s'", sessionID)
	}
}

func TestGetSessionIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, int64(42))

	sessionID, ok := GetSessionIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if sessionID != "" {
		t.Errorf("expected empty sessionID, got '%s'", sessionID)
	}
}

func TestGetSessionIDFromContext_EmptyValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, "")

	_, ok := GetSessionIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for empty session id, got true")
	}
}

func TestGetSessionIDFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, "other-session")

	sessionID, ok := GetSessionIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
	if sessionID != "" {
		t.Errorf("expected empty sessionID, got '%s'", sessionID)
	}
}
