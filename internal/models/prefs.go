package models

// NotificationPrefs groups the notification toggles persisted under one key.
type NotificationPrefs struct {
	AppNotifications bool `json:"appNotifications"`
	CourseReminders  bool `json:"courseReminders"`
	EmailUpdates     bool `json:"emailUpdates"`
}

// DefaultNotificationPrefs returns the values used when nothing is persisted.
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{
		AppNotifications: true,
		CourseReminders:  true,
		EmailUpdates:     false,
	}
}

// SecurityPrefs groups the security and privacy toggles.
type SecurityPrefs struct {
	RequireLoginOnStart bool `json:"requireLoginOnStart"`
	BiometricUnlock     bool `json:"biometricUnlock"`
	ShareUsageAnalytics bool `json:"shareUsageAnalytics"`
}

// DefaultSecurityPrefs returns the values used when nothing is persisted.
func DefaultSecurityPrefs() SecurityPrefs {
	return SecurityPrefs{
		RequireLoginOnStart: true,
		BiometricUnlock:     false,
		ShareUsageAnalytics: false,
	}
}

// SettingsPrefs groups the general settings toggles.
type SettingsPrefs struct {
	AppSounds bool `json:"appSounds"`
}

// DefaultSettingsPrefs returns the values used when nothing is persisted.
func DefaultSettingsPrefs() SettingsPrefs {
	return SettingsPrefs{AppSounds: true}
}
