package cli

import (
	"context"
	"fmt"
)

// Dark switches dark mode on or off.
func (a *App) Dark(ctx context.Context, args []string) error {
	on, ok := parseOnOff(args)
	if !ok {
		fmt.Fprintln(a.out, "Usage: dark on|off")
		return nil
	}
	if err := a.ctrl.SetDarkMode(ctx, on); err != nil {
		fmt.Fprintln(a.out, "Failed to change dark mode:", err)
		return err
	}
	fmt.Fprintln(a.out, "Dark mode:", onOff(on))
	return nil
}

// Sounds switches the app-sounds setting on or off.
func (a *App) Sounds(ctx context.Context, args []string) error {
	on, ok := parseOnOff(args)
	if !ok {
		fmt.Fprintln(a.out, "Usage: sounds on|off")
		return nil
	}
	p := a.ctrl.State().Settings
	p.AppSounds = on
	if err := a.ctrl.SetSettingsPrefs(ctx, p); err != nil {
		fmt.Fprintln(a.out, "Failed to change sounds:", err)
		return err
	}
	fmt.Fprintln(a.out, "App sounds:", onOff(on))
	return nil
}

// Prefs prints every preference flag.
func (a *App) Prefs(ctx context.Context) error {
	s := a.ctrl.State()
	fmt.Fprintln(a.out, "Dark mode:           ", onOff(s.DarkMode))
	fmt.Fprintln(a.out, "App sounds:          ", onOff(s.Settings.AppSounds))
	fmt.Fprintln(a.out, "App notifications:   ", onOff(s.Notifications.AppNotifications))
	fmt.Fprintln(a.out, "Course reminders:    ", onOff(s.Notifications.CourseReminders))
	fmt.Fprintln(a.out, "Email updates:       ", onOff(s.Notifications.EmailUpdates))
	fmt.Fprintln(a.out, "Login on start:      ", onOff(s.Security.RequireLoginOnStart))
	fmt.Fprintln(a.out, "Biometric unlock:    ", onOff(s.Security.BiometricUnlock))
	fmt.Fprintln(a.out, "Share usage data:    ", onOff(s.Security.ShareUsageAnalytics))
	return nil
}

func parseOnOff(args []string) (on, ok bool) {
	if len(args) != 1 {
		return false, false
	}
	switch args[0] {
	case "on":
		return true, true
	case "off":
		return false, true
	default:
		return false, false
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
