package dto

type SignupRequest struct {
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserItem struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type SessionResponse struct {
	Token string   `json:"token"`
	User  UserItem `json:"user"`
}
