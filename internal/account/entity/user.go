package entity

import (
	"time"

	"github.com/shoplyhq/shoply/internal/pkg/valueobject"
)

type User struct {
	ID          int64
	Email       string
	UserName    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Role        string
	IsActive    bool
	IsStaff     bool
	IsSuperuser bool
	Password    string // hashed
	CreatedAt   time.Time
}

// OtpRecord pairs a short numeric code with the opaque token it was issued
// under. Records accumulate: a resend appends a new one and never touches the
// old, and consumed records are left in place.
type OtpRecord struct {
	ID        int64
	UserID    int64
	Code      string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
	Metadata  valueobject.JSONMap
}

// ---- //

type NewUser struct {
	ID          int64
	Email       string
	UserName    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Role        string
}

// OtpUser is the token-lookup projection used during verification: the
// matched record plus the columns of its owner needed to activate and issue
// a session.
type OtpUser struct {
	RecordID      int64
	Code          string
	ExpiresAt     time.Time
	UserID        int64
	UserEmail     string
	UserFirstName string
	UserIsActive  bool
}
