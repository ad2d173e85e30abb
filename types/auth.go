package types

type RegisterRequest struct {
	Handle   string `json:"handle" binding:"omitempty,min=3,max=32"`
	Nickname string `json:"nickname" binding:"required,min=1,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Private  bool   `json:"private"`
}

type LoginRequest struct {
	Handle   string `json:"handle" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	UserID       uint64 `json:"user_id"`
	Handle       string `json:"handle"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
