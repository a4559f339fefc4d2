// Package controller orchestrates the domain state of the client. Every
// operation the presentation layer can issue (register, login, logout,
// profile edit, favourite toggle, preference change, catalog fetch) runs
// through a uniform envelope: status goes to loading, the relevant store is
// invoked, and on success the in-memory projection is replaced and the
// status becomes succeeded; on failure the status becomes failed with a
// typed error and the previous projection stays untouched.
package controller

import "github.com/coursemate/coursemate/internal/models"

// Status is the lifecycle of one operation family.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Family identifies an independent group of operations. Mutations are
// serialized within a family and run independently across families.
type Family int

const (
	FamilyAuth Family = iota
	FamilyFavourites
	FamilyPrefs
	FamilyCatalog

	familyCount
)

// OpState is the status machine attached to one family, with the typed
// error recorded by the most recent failure.
type OpState struct {
	Status  Status
	LastErr error
}

// State is the immutable snapshot the controller exposes. Reducers return a
// new State for every transition and never mutate in place; observers and
// callers must treat slices as read-only.
type State struct {
	Session       *models.SessionIdentity
	Courses       []models.Course
	Favourites    []models.Course
	DarkMode      bool
	Notifications models.NotificationPrefs
	Security      models.SecurityPrefs
	Settings      models.SettingsPrefs

	Ops [familyCount]OpState
}

// NewState returns the initial state: logged out, empty lists, default
// preference values, every family idle.
func NewState() State {
	s := State{
		Favourites:    []models.Course{},
		Notifications: models.DefaultNotificationPrefs(),
		Security:      models.DefaultSecurityPrefs(),
		Settings:      models.DefaultSettingsPrefs(),
	}
	for i := range s.Ops {
		s.Ops[i] = OpState{Status: StatusIdle}
	}
	return s
}

// Op returns the status machine for one family.
func (s State) Op(f Family) OpState {
	return s.Ops[f]
}

// A reducer produces the next state from the previous one.
type reducer func(State) State

func setLoading(f Family) reducer {
	return func(s State) State {
		s.Ops[f] = OpState{Status: StatusLoading}
		return s
	}
}

func setSucceeded(f Family) reducer {
	return func(s State) State {
		s.Ops[f] = OpState{Status: StatusSucceeded}
		return s
	}
}

func setFailed(f Family, err error) reducer {
	return func(s State) State {
		s.Ops[f] = OpState{Status: StatusFailed, LastErr: err}
		return s
	}
}

func setSession(identity *models.SessionIdentity) reducer {
	return func(s State) State {
		s.Session = identity
		return s
	}
}

func clearSession() reducer {
	return func(s State) State {
		s.Session = nil
		// Logout resets the auth machine rather than reporting success,
		// matching the idle screen the user lands on.
		s.Ops[FamilyAuth] = OpState{Status: StatusIdle}
		return s
	}
}

func setCourses(courses []models.Course) reducer {
	return func(s State) State {
		s.Courses = courses
		return s
	}
}

func setFavourites(favs []models.Course) reducer {
	return func(s State) State {
		s.Favourites = favs
		return s
	}
}

func setDarkMode(on bool) reducer {
	return func(s State) State {
		s.DarkMode = on
		return s
	}
}

func setNotifications(p models.NotificationPrefs) reducer {
	return func(s State) State {
		s.Notifications = p
		return s
	}
}

func setSecurity(p models.SecurityPrefs) reducer {
	return func(s State) State {
		s.Security = p
		return s
	}
}

func setSettings(p models.SettingsPrefs) reducer {
	return func(s State) State {
		s.Settings = p
		return s
	}
}
