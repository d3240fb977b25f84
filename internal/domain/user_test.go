package domain

import (
	"testing"
)

func strPtr(s string) *string { return &s }

func TestUser_FullName(t *testing.T) {
	tests := []struct {
		name     string
		first    *string
		last     *string
		expected string
	}{
		{"both names", strPtr("Jane"), strPtr("Doe"), "Jane Doe"},
		{"first only", strPtr("Jane"), nil, "Jane"},
		{"last only", nil, strPtr("Doe"), "Doe"},
		{"neither", nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{FirstName: tt.first, LastName: tt.last}
			if got := u.FullName(); got != tt.expected {
				t.Errorf("FullName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPermission_Valid(t *testing.T) {
	tests := []struct {
		name       string
		permission Permission
		expected   bool
	}{
		{"full access", PermissionFullAccess, true},
		{"can edit", PermissionCanEdit, true},
		{"can view", PermissionCanView, true},
		{"read only", PermissionReadOnly, true},
		{"unknown", Permission("SUPERUSER"), false},
		{"empty", Permission(""), false},
		{"lowercase", Permission("can_edit"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.permission.Valid(); got != tt.expected {
				t.Errorf("Valid() = %v, want %v", got, tt.expected)
			}
		})
	}
}
