package dto

type UserResponse struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	HasProfile bool   `json:"hasProfile"`
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	SessionToken string       `json:"sessionToken"`
}
