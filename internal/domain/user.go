package domain

import (
	"context"
	"fmt"
)

// User represents one registrant of the job portal. Email is the natural
// key; Role is a free-text label such as "applicant" or "recruiter".
type User struct {
	Email    string
	Fullname string
	Role     string
	Password string
}

// String renders the user for logs. The password is never included.
func (u User) String() string {
	return fmt.Sprintf("User[email=%s fullname=%s role=%s password=***]", u.Email, u.Fullname, u.Role)
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// CountByEmail returns how many stored users have exactly this email.
	CountByEmail(ctx context.Context, email string) (int, error)
	// Save inserts the user. It returns ErrDuplicateEmail if the email is
	// already stored; the existing row is left untouched.
	Save(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}
