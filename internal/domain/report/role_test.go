package report

import "testing"

func TestClassifyDecisionTable(t *testing.T) {
	cases := []struct {
		name     string
		coaches  []uint
		drivers  []uint
		memberID uint
		facility bool
		want     Role
	}{
		{
			name:     "coach with explicit driver present",
			coaches:  []uint{1},
			drivers:  []uint{2},
			memberID: 1,
			want:     RoleCoach,
		},
		{
			name:     "explicit driver with coach present",
			coaches:  []uint{1},
			drivers:  []uint{2},
			memberID: 2,
			want:     RoleDriver,
		},
		{
			name:     "coach without driver drives implicitly",
			coaches:  []uint{1},
			drivers:  nil,
			memberID: 1,
			want:     RoleBoth,
		},
		{
			name:     "coach without driver on facility stays coach",
			coaches:  []uint{1},
			drivers:  nil,
			memberID: 1,
			facility: true,
			want:     RoleCoach,
		},
		{
			name:     "member is both coach and explicit driver",
			coaches:  []uint{1},
			drivers:  []uint{1},
			memberID: 1,
			want:     RoleBoth,
		},
		{
			name:     "explicit driver with no coach reports both",
			coaches:  nil,
			drivers:  []uint{2},
			memberID: 2,
			want:     RoleBoth,
		},
		{
			name:     "explicit driver with no coach on facility reports both",
			coaches:  nil,
			drivers:  []uint{2},
			memberID: 2,
			facility: true,
			want:     RoleBoth,
		},
		{
			name:     "unassigned member",
			coaches:  []uint{1},
			drivers:  []uint{2},
			memberID: 3,
			want:     RoleNone,
		},
		{
			name:     "no assignments at all",
			coaches:  nil,
			drivers:  nil,
			memberID: 1,
			want:     RoleNone,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.coaches, tc.drivers, tc.memberID, tc.facility)
			if got != tc.want {
				t.Errorf("Classify() = %v, want %v", got, tc.want)
			}
		})
	}
}

// Assigning an explicit driver must revoke a coach's implicit-driver
// presumption on the next classification.
func TestClassifyImplicitDriverRevoked(t *testing.T) {
	coaches := []uint{1}

	if got := Classify(coaches, nil, 1, false); got != RoleBoth {
		t.Fatalf("before driver assignment: got %v, want %v", got, RoleBoth)
	}

	drivers := []uint{2}
	if got := Classify(coaches, drivers, 1, false); got != RoleCoach {
		t.Errorf("coach after driver assignment: got %v, want %v", got, RoleCoach)
	}
	if got := Classify(coaches, drivers, 2, false); got != RoleDriver {
		t.Errorf("driver after assignment: got %v, want %v", got, RoleDriver)
	}
}

// The outcome must not depend on list ordering.
func TestClassifyOrderIndependent(t *testing.T) {
	a := Classify([]uint{1, 3, 5}, []uint{2, 4}, 3, false)
	b := Classify([]uint{5, 1, 3}, []uint{4, 2}, 3, false)
	if a != b {
		t.Errorf("ordering changed the result: %v vs %v", a, b)
	}
}

func TestRoleIncludes(t *testing.T) {
	if !RoleBoth.IncludesCoach() || !RoleBoth.IncludesDriver() {
		t.Error("RoleBoth must include both halves")
	}
	if !RoleCoach.IncludesCoach() || RoleCoach.IncludesDriver() {
		t.Error("RoleCoach includes only the coach half")
	}
	if RoleDriver.IncludesCoach() || !RoleDriver.IncludesDriver() {
		t.Error("RoleDriver includes only the driver half")
	}
	if RoleNone.IncludesCoach() || RoleNone.IncludesDriver() {
		t.Error("RoleNone includes nothing")
	}
}

func TestRoleString(t *testing.T) {
	for role, want := range map[Role]string{
		RoleNone:   "none",
		RoleCoach:  "coach",
		RoleDriver: "driver",
		RoleBoth:   "both",
	} {
		if got := role.String(); got != want {
			t.Errorf("Role(%d).String() = %q, want %q", role, got, want)
		}
	}
}
