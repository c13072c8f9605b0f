package api

type CreateRecipeRequest struct {
	Name        string              `json:"name"`
	Text        string              `json:"text"`
	Image       string              `json:"image"`
	CookingTime int32               `json:"cooking_time"`
	TagIds      []string            `json:"tags"`
	Ingredients []*IngredientAmount `json:"ingredients"`
}

type CreateRecipeResponse struct {
	Recipe *Recipe `json:"recipe"`
}

type GetRecipeRequest struct {
	RecipeId string `json:"recipe_id"`
}

type GetRecipeResponse struct {
	Recipe *Recipe `json:"recipe"`
}

type ListRecipesRequest struct {
	Limit    int32    `json:"limit"`
	Offset   int32    `json:"offset"`
	AuthorId string   `json:"author"`
	TagSlugs []string `json:"tags"`
	// IsFavorited and IsInShoppingCart are tri-state: absent disables the filter.
	IsFavorited      *bool `json:"is_favorited,omitempty"`
	IsInShoppingCart *bool `json:"is_in_shopping_cart,omitempty"`
}

type ListRecipesResponse struct {
	Recipes []*Recipe `json:"recipes"`
	Count   int32     `json:"count"`
}

type UpdateRecipeRequest struct {
	RecipeId    string              `json:"recipe_id"`
	Name        string              `json:"name"`
	Text        string              `json:"text"`
	Image       string              `json:"image"`
	CookingTime int32               `json:"cooking_time"`
	TagIds      []string            `json:"tags"`
	Ingredients []*IngredientAmount `json:"ingredients"`
}

type UpdateRecipeResponse struct {
	Recipe *Recipe `json:"recipe"`
}

type DeleteRecipeRequest struct {
	RecipeId string `json:"recipe_id"`
}

type DeleteRecipeResponse struct{}

type AddFavoriteRequest struct {
	RecipeId string `json:"recipe_id"`
}

type AddFavoriteResponse struct {
	Recipe *RecipeShort `json:"recipe"`
}

type RemoveFavoriteRequest struct {
	RecipeId string `json:"recipe_id"`
}

type RemoveFavoriteResponse struct{}
