package response_models

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type FollowListResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}
