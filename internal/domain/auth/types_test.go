package auth

import (
	"testing"
	"time"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"ADMIN":         RoleAdmin,
		"admin":         RoleAdmin,
		" STORE_OWNER ": RoleStoreOwner,
		"OWNER":         RoleOwner,
		"customer":      RoleCustomer,
		"":              RoleUnknown,
		"USER":          RoleUnknown,
		"superuser":     RoleUnknown,
	}
	for raw, want := range cases {
		if got := ParseRole(raw); got != want {
			t.Fatalf("ParseRole(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleStoreOwner, RoleOwner, RoleCustomer} {
		if !r.Valid() {
			t.Fatalf("expected %v to be valid", r)
		}
	}
	if RoleUnknown.Valid() {
		t.Fatalf("did not expect unknown role to be valid")
	}
	if Role("USER").Valid() {
		t.Fatalf("did not expect free-form role to be valid")
	}
}

func TestRole_IsStoreOwner(t *testing.T) {
	if !RoleStoreOwner.IsStoreOwner() || !RoleOwner.IsStoreOwner() {
		t.Fatalf("expected both owner spellings to grant store access")
	}
	if RoleCustomer.IsStoreOwner() {
		t.Fatalf("did not expect customer to grant store access")
	}
}

func TestSession_SimpleFields(t *testing.T) {
	s := Session{ID: "s", UserID: "42", Role: RoleAdmin, Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	if !s.IsAdmin() || !s.HasToken() {
		t.Fatalf("unexpected session: %+v", s)
	}
	if (Session{Role: RoleCustomer}).IsAdmin() {
		t.Fatalf("did not expect admin")
	}
	if (Session{}).HasToken() {
		t.Fatalf("did not expect token")
	}
}
