package user

type User struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
	Fullname string `json:"fullname" db:"fullname"`
}

// CreateUserRequest represents the POST /users body
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}
