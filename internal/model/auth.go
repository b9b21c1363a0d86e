package model

// RegisterRequest carries no role field: self-registration always
// produces a student. Admin accounts are provisioned out of band.
type RegisterRequest struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=6"`
	StudentID  *string `json:"studentId,omitempty"`
	Department *string `json:"department,omitempty"`
	Year       *int    `json:"year,omitempty" validate:"omitempty,min=1,max=4"`
	RoomNumber *string `json:"roomNumber,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
