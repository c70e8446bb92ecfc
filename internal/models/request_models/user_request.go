package request_models

type UpsertUserRequest struct {
	ID        string `json:"id" binding:"required,uuid4"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}
