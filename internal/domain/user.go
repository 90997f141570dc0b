package domain

// User is a row of the users table. Password holds a bcrypt hash.
type User struct {
	ID             int     `json:"id" db:"id"`
	Name           string  `json:"name" db:"name"`
	Email          string  `json:"email" db:"email"`
	Password       string  `json:"-" db:"password"`
	Gender         string  `json:"gender" db:"gender"`
	Age            int     `json:"age" db:"age"`
	Bio            *string `json:"bio" db:"bio"`
	ProfilePicture *string `json:"profile_picture" db:"profile_picture"`
}

