package auth

import "testing"

func TestUserValidate(t *testing.T) {
	u := User{ID: "u1", Email: "user@gmail.com", Role: RoleUser, Status: StatusActive}
	if err := u.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := []User{
		{Email: "e", Role: RoleUser, Status: StatusActive},
		{ID: "u1", Role: RoleUser, Status: StatusActive},
		{ID: "u1", Email: "e", Status: StatusActive},
		{ID: "u1", Email: "e", Role: RoleUser},
	}
	for i, m := range missing {
		if err := m.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestUserIsActive(t *testing.T) {
	u := User{Status: StatusActive}
	if !u.IsActive() {
		t.Error("active user should be active")
	}
	u.Status = StatusDisabled
	if u.IsActive() {
		t.Error("disabled user should not be active")
	}
}
