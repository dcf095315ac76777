package domain

// Role is the access level of a user.
type Role string

const (
	RoleUser       Role = "USER"
	RoleModerator  Role = "MODERATOR"
	RoleClubAdmin  Role = "CLUB_ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleClubAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants catalog administration.
func (r Role) IsAdmin() bool {
	return r == RoleClubAdmin || r == RoleSuperAdmin
}

// ReadingStatus is the state of a user's relationship with a book.
type ReadingStatus string

const (
	ReadingStatusWantToRead ReadingStatus = "WANT_TO_READ"
	ReadingStatusReading    ReadingStatus = "READING"
	ReadingStatusFinished   ReadingStatus = "FINISHED"
	ReadingStatusDropped    ReadingStatus = "DROPPED"
)

func (s ReadingStatus) String() string { return string(s) }

func (s ReadingStatus) IsValid() bool {
	switch s {
	case ReadingStatusWantToRead, ReadingStatusReading, ReadingStatusFinished, ReadingStatusDropped:
		return true
	}
	return false
}
