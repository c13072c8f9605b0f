package api

type ListUsersRequest struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

type ListUsersResponse struct {
	Users []*User `json:"users"`
	Count int32   `json:"count"`
}

type GetUserRequest struct {
	UserId string `json:"user_id"`
}

type GetUserResponse struct {
	User *User `json:"user"`
}

type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type SetPasswordResponse struct{}

// Subscription is a followed author together with a preview of their recipes.
type Subscription struct {
	Author       *User          `json:"author"`
	Recipes      []*RecipeShort `json:"recipes"`
	RecipesCount int32          `json:"recipes_count"`
}

type SubscribeRequest struct {
	AuthorId string `json:"author_id"`
	// RecipesLimit caps the recipe preview; zero means no cap.
	RecipesLimit int32 `json:"recipes_limit"`
}

type SubscribeResponse struct {
	Subscription *Subscription `json:"subscription"`
}

type UnsubscribeRequest struct {
	AuthorId string `json:"author_id"`
}

type UnsubscribeResponse struct{}

type ListSubscriptionsRequest struct {
	Limit        int32 `json:"limit"`
	Offset       int32 `json:"offset"`
	RecipesLimit int32 `json:"recipes_limit"`
}

type ListSubscriptionsResponse struct {
	Subscriptions []*Subscription `json:"subscriptions"`
	Count         int32           `json:"count"`
}
