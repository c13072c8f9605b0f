package api

type AddToCartRequest struct {
	RecipeId string `json:"recipe_id"`
}

type AddToCartResponse struct {
	Recipe *RecipeShort `json:"recipe"`
}

type RemoveFromCartRequest struct {
	RecipeId string `json:"recipe_id"`
}

type RemoveFromCartResponse struct{}

type GetShoppingListRequest struct{}

type GetShoppingListResponse struct {
	Lines []*ShoppingListLine `json:"lines"`
}
