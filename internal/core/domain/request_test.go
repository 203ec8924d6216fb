package domain

import "testing"

func TestRequestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to RequestStatus
		want     bool
	}{
		{RequestPending, RequestApproved, true},
		{RequestPending, RequestRejected, true},
		{RequestApproved, RequestRejected, false},
		{RequestApproved, RequestApproved, false},
		{RequestRejected, RequestApproved, false},
		{RequestPending, RequestPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestRequestTypeValid(t *testing.T) {
	for _, valid := range []RequestType{TypeLeave, TypeSickLeave, TypeVacation, TypeEmergency, TypeOther} {
		if !valid.Valid() {
			t.Errorf("%s should be valid", valid)
		}
	}
	if RequestType("SABBATICAL").Valid() {
		t.Error("unknown type should be invalid")
	}
}

func TestIsAdmin(t *testing.T) {
	for _, role := range []string{"admin", "Admin", "ADMIN"} {
		if !IsAdmin(role) {
			t.Errorf("IsAdmin(%q) = false, want true", role)
		}
	}
	if IsAdmin("employee") || IsAdmin("") {
		t.Error("non-admin roles must not grant admin access")
	}
}
