// Package models defines the value types shared by the CourseMate client:
// account records, the current session projection, courses, and preference
// flag groups.
package models

// AccountRecord is a registered account as stored in the on-device directory.
//
// Password is kept in plain form, matching the behavior of the stored data
// this client manages. It must never leak into a SessionIdentity.
type AccountRecord struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar,omitempty"`
	About    string `json:"about,omitempty"`
}

// Session returns the session projection of the record with the password
// stripped.
func (r *AccountRecord) Session() *SessionIdentity {
	return &SessionIdentity{
		Username: r.Username,
		Email:    r.Email,
		Avatar:   r.Avatar,
		About:    r.About,
	}
}

// SessionIdentity describes who is currently logged in. It exists only while
// a session is active and never carries credentials.
type SessionIdentity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	About    string `json:"about,omitempty"`
}

// ProfilePatch is a partial update applied to an account record and its
// session projection. Nil fields are left unchanged.
type ProfilePatch struct {
	Username *string
	Avatar   *string
	About    *string
}
