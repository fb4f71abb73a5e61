package entity

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"patient", RolePatient},
		{"loggedPatient", RoleLoggedPatient},
		{"doctor", RoleDoctor},
		{"admin", RoleAdmin},
		{"anonymous", RoleAnonymous},
		{"", RoleAnonymous},
		{"superuser", RoleAnonymous},
		{"Admin", RoleAnonymous},
	}

	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRequiresToken(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAnonymous, false},
		{RolePatient, false},
		{RoleLoggedPatient, true},
		{RoleDoctor, true},
		{RoleAdmin, true},
	}

	for _, tt := range tests {
		if got := tt.role.RequiresToken(); got != tt.want {
			t.Errorf("%s.RequiresToken() = %v, want %v", tt.role, got, tt.want)
		}
	}
}
