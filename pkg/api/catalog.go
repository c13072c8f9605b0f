package api

type ListIngredientsRequest struct {
	// Name filters ingredients by case-insensitive name prefix.
	Name string `json:"name"`
}

type ListIngredientsResponse struct {
	Ingredients []*Ingredient `json:"ingredients"`
}

type GetIngredientRequest struct {
	IngredientId string `json:"ingredient_id"`
}

type GetIngredientResponse struct {
	Ingredient *Ingredient `json:"ingredient"`
}

type ListTagsRequest struct{}

type ListTagsResponse struct {
	Tags []*Tag `json:"tags"`
}

type GetTagRequest struct {
	TagId string `json:"tag_id"`
}

type GetTagResponse struct {
	Tag *Tag `json:"tag"`
}
