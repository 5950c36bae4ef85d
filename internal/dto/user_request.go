package dto

type RegisterRequest struct {
	Firstname string `json:"firstname" binding:"required,min=2,max=30"`
	Lastname  string `json:"lastname" binding:"required,min=2,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=48"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateUserRequest struct {
	Firstname *string `json:"firstname" binding:"omitempty,min=2,max=30"`
	Lastname  *string `json:"lastname" binding:"omitempty,min=2,max=30"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=48"`
}
