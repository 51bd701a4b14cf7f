package auth

//revive:disable

// RegisterInput is the body of POST /auth/register.
type RegisterInput struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	DisplayName string `json:"displayName" validate:"max=100"`
}

// LoginInput is the body of POST /auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// ProfileInput is the body of PATCH /auth/me. An empty password keeps the current one.
type ProfileInput struct {
	DisplayName string `json:"displayName" validate:"max=100"`
	Password    string `json:"password" validate:"omitempty,min=6,max=72"`
}

// UserDTO is the API representation of a user.
type UserDTO struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}
