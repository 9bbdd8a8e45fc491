package http

type registerRequest struct {
	Email    string `json:"email" example:"traveler@example.com"`
	Name     string `json:"name" example:"Alex Traveler"`
	Password string `json:"password" example:"S3cure-Passw0rd"`
}

type loginRequest struct {
	Email    string `json:"email" example:"traveler@example.com"`
	Password string `json:"password" example:"S3cure-Passw0rd"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

type updateProfileRequest struct {
	Name      *string `json:"name,omitempty" example:"Alex Traveler"`
	AvatarURL *string `json:"avatar_url,omitempty" example:"https://cdn.example.com/avatar.png"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
