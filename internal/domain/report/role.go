package report

// ===============================
// Report Role
// ===============================

// Role is the reporting obligation a staff member carries on a booking.
// It is a closed set; never compare raw strings.
type Role int

const (
	RoleNone Role = iota
	RoleCoach
	RoleDriver
	RoleBoth
)

func (r Role) String() string {
	switch r {
	case RoleCoach:
		return "coach"
	case RoleDriver:
		return "driver"
	case RoleBoth:
		return "both"
	default:
		return "none"
	}
}

func (r Role) IncludesCoach() bool {
	return r == RoleCoach || r == RoleBoth
}

func (r Role) IncludesDriver() bool {
	return r == RoleDriver || r == RoleBoth
}

// ===============================
// Classification
// ===============================

// Classify decides what memberID must report on a booking, given the
// booking's coach ids, driver ids and whether the boat is a stationary
// facility (no driving concept applies there).
//
// A coach on a boat with no designated driver is presumed to have
// driven it too ("implicit driver"). That presumption is revoked the
// instant an explicit driver is assigned: re-running Classify on the
// updated lists flips the coach back to RoleCoach, and submission
// deletes any driver report filed under the old classification.
//
// A booking with no coach at all still requires a teaching report from
// its explicit driver, since someone must account for who used the
// boat.
func Classify(coachIDs, driverIDs []uint, memberID uint, facilityBoat bool) Role {
	isCoach := containsID(coachIDs, memberID)
	isExplicitDriver := containsID(driverIDs, memberID)
	hasNoDriver := len(driverIDs) == 0
	isImplicitDriver := isCoach && hasNoDriver && !facilityBoat

	if len(coachIDs) == 0 && isExplicitDriver {
		return RoleBoth
	}

	switch {
	case isCoach && (isExplicitDriver || isImplicitDriver):
		return RoleBoth
	case isCoach:
		return RoleCoach
	case isExplicitDriver || isImplicitDriver:
		return RoleDriver
	default:
		return RoleNone
	}
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
