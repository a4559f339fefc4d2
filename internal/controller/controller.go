package controller

import (
	"context"
	"sync"

	"github.com/coursemate/coursemate/internal/catalog"
	"github.com/coursemate/coursemate/internal/favourites"
	"github.com/coursemate/coursemate/internal/logging"
	"github.com/coursemate/coursemate/internal/models"
	"github.com/coursemate/coursemate/internal/prefs"
	"github.com/coursemate/coursemate/internal/session"
)

// Observer receives every state snapshot the controller produces. Observers
// must not mutate the snapshot and should return quickly.
type Observer func(State)

// Controller is the single component the presentation layer talks to. It
// owns the in-memory projections and applies reducers sequentially, so the
// status machine is auditable without a live store.
//
// Mutations are serialized per family: one in-flight mutation per logical
// resource at a time. Operations on different families are independent.
// There is no cancellation and no retry; a dispatched operation runs to
// completion.
type Controller struct {
	sessions session.Manager
	favs     favourites.Store
	prefs    prefs.Store
	catalog  catalog.Catalog
	log      logging.Logger

	famMu [familyCount]sync.Mutex

	mu        sync.Mutex
	state     State
	observers []Observer
}

// New wires a Controller over its stores and collaborators.
func New(sessions session.Manager, favs favourites.Store, p prefs.Store, cat catalog.Catalog, log logging.Logger) *Controller {
	return &Controller{
		sessions: sessions,
		favs:     favs,
		prefs:    p,
		catalog:  cat,
		log:      log,
		state:    NewState(),
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers an observer for every subsequent snapshot.
func (c *Controller) Subscribe(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// apply runs the reducers sequentially against the current state and
// notifies observers with the resulting snapshot.
func (c *Controller) apply(reducers ...reducer) State {
	c.mu.Lock()
	next := c.state
	for _, r := range reducers {
		next = r(next)
	}
	c.state = next
	observers := make([]Observer, len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, o := range observers {
		o(next)
	}
	return next
}

// run is the operation envelope. It serializes on the family mutex, marks
// the family loading, invokes op, and applies either the success reducers or
// a failed status. On failure no projection reducer runs, so prior in-memory
// state is left untouched.
func (c *Controller) run(ctx context.Context, f Family, op func(ctx context.Context) ([]reducer, error)) error {
	c.famMu[f].Lock()
	defer c.famMu[f].Unlock()

	c.apply(setLoading(f))

	success, err := op(ctx)
	if err != nil {
		c.apply(setFailed(f, err))
		return err
	}

	c.apply(append(success, setSucceeded(f))...)
	return nil
}

// Bootstrap rehydrates the in-memory projections from the persistent store:
// the saved session, the favourites list, and every preference flag. Absent
// values fall back to defaults; a failed session load is logged and leaves
// the user logged out. Called once at startup, before any operation.
func (c *Controller) Bootstrap(ctx context.Context) {
	reducers := make([]reducer, 0, 6)

	identity, err := c.sessions.Restore(ctx)
	if err != nil {
		c.log.Warn(ctx, "failed to restore session, starting logged out", "error", err)
	} else if identity != nil {
		reducers = append(reducers, setSession(identity))
	}

	favs, err := c.favs.Load(ctx)
	if err == nil {
		reducers = append(reducers, setFavourites(favs))
	}

	if dark, err := c.prefs.DarkMode(ctx); err == nil {
		reducers = append(reducers, setDarkMode(dark))
	}
	if p, err := c.prefs.NotificationPrefs(ctx); err == nil {
		reducers = append(reducers, setNotifications(p))
	}
	if p, err := c.prefs.SecurityPrefs(ctx); err == nil {
		reducers = append(reducers, setSecurity(p))
	}
	if p, err := c.prefs.SettingsPrefs(ctx); err == nil {
		reducers = append(reducers, setSettings(p))
	}

	c.apply(reducers...)
}

// Register creates an account and establishes a session.
func (c *Controller) Register(ctx context.Context, username, email, password string) error {
	return c.run(ctx, FamilyAuth, func(ctx context.Context) ([]reducer, error) {
		identity, err := c.sessions.Register(ctx, username, email, password)
		if err != nil {
			return nil, err
		}
		c.log.Info(ctx, "account registered", "username", identity.Username)
		return []reducer{setSession(identity)}, nil
	})
}

// Login authenticates and establishes a session.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	return c.run(ctx, FamilyAuth, func(ctx context.Context) ([]reducer, error) {
		identity, err := c.sessions.Login(ctx, username, password)
		if err != nil {
			return nil, err
		}
		c.log.Info(ctx, "logged in", "username", identity.Username)
		return []reducer{setSession(identity)}, nil
	})
}

// Logout clears the session. It serializes with the other auth operations
// and resets the auth machine to idle rather than reporting success.
func (c *Controller) Logout(ctx context.Context) error {
	c.famMu[FamilyAuth].Lock()
	defer c.famMu[FamilyAuth].Unlock()

	if err := c.sessions.Logout(ctx); err != nil {
		c.apply(setFailed(FamilyAuth, err))
		return err
	}
	c.apply(clearSession())
	return nil
}

// UpdateProfile patches the active session and its backing account record.
func (c *Controller) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	return c.run(ctx, FamilyAuth, func(ctx context.Context) ([]reducer, error) {
		identity, err := c.sessions.UpdateProfile(ctx, patch)
		if err != nil {
			return nil, err
		}
		return []reducer{setSession(identity)}, nil
	})
}

// ToggleFavourite adds or removes one course from the favourites list. The
// base list is the in-memory projection captured at invocation time; the
// family mutex guarantees only one toggle is in flight.
func (c *Controller) ToggleFavourite(ctx context.Context, course models.Course) error {
	return c.run(ctx, FamilyFavourites, func(ctx context.Context) ([]reducer, error) {
		current := c.State().Favourites
		next, err := c.favs.Toggle(ctx, current, course)
		if err != nil {
			return nil, err
		}
		return []reducer{setFavourites(next)}, nil
	})
}

// SetDarkMode persists and applies the dark-mode flag.
func (c *Controller) SetDarkMode(ctx context.Context, on bool) error {
	return c.run(ctx, FamilyPrefs, func(ctx context.Context) ([]reducer, error) {
		if err := c.prefs.SetDarkMode(ctx, on); err != nil {
			return nil, err
		}
		return []reducer{setDarkMode(on)}, nil
	})
}

// SetNotificationPrefs persists and applies the notification toggles.
func (c *Controller) SetNotificationPrefs(ctx context.Context, p models.NotificationPrefs) error {
	return c.run(ctx, FamilyPrefs, func(ctx context.Context) ([]reducer, error) {
		if err := c.prefs.SetNotificationPrefs(ctx, p); err != nil {
			return nil, err
		}
		return []reducer{setNotifications(p)}, nil
	})
}

// SetSecurityPrefs persists and applies the security toggles.
func (c *Controller) SetSecurityPrefs(ctx context.Context, p models.SecurityPrefs) error {
	return c.run(ctx, FamilyPrefs, func(ctx context.Context) ([]reducer, error) {
		if err := c.prefs.SetSecurityPrefs(ctx, p); err != nil {
			return nil, err
		}
		return []reducer{setSecurity(p)}, nil
	})
}

// SetSettingsPrefs persists and applies the general settings toggles.
func (c *Controller) SetSettingsPrefs(ctx context.Context, p models.SettingsPrefs) error {
	return c.run(ctx, FamilyPrefs, func(ctx context.Context) ([]reducer, error) {
		if err := c.prefs.SetSettingsPrefs(ctx, p); err != nil {
			return nil, err
		}
		return []reducer{setSettings(p)}, nil
	})
}

// FetchCourses queries the remote catalog and replaces the course list.
func (c *Controller) FetchCourses(ctx context.Context, query string) error {
	return c.run(ctx, FamilyCatalog, func(ctx context.Context) ([]reducer, error) {
		courses, err := c.catalog.Search(ctx, query)
		if err != nil {
			c.log.Warn(ctx, "catalog search failed", "query", query, "error", err)
			return nil, err
		}
		return []reducer{setCourses(courses)}, nil
	})
}
