// Package api defines the request and response messages of the Foodgram RPC
// services. Messages are plain structs encoded as JSON on the wire; see
// package apiconnect for the handlers and clients.
package api

// User is the public view of an account.
type User struct {
	Id           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
	CreatedAt    int64  `json:"created_at,omitempty"`
}

type Tag struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type Ingredient struct {
	Id              string `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// RecipeIngredient is an ingredient line as shown inside a recipe.
type RecipeIngredient struct {
	Id              string `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int32  `json:"amount"`
}

// IngredientAmount is an ingredient line as submitted when writing a recipe.
type IngredientAmount struct {
	Id     string `json:"id"`
	Amount int32  `json:"amount"`
}

type Recipe struct {
	Id               string              `json:"id"`
	Tags             []*Tag              `json:"tags"`
	Author           *User               `json:"author"`
	Ingredients      []*RecipeIngredient `json:"ingredients"`
	IsFavorited      bool                `json:"is_favorited"`
	IsInShoppingCart bool                `json:"is_in_shopping_cart"`
	Name             string              `json:"name"`
	Image            string              `json:"image"`
	Text             string              `json:"text"`
	CookingTime      int32               `json:"cooking_time"`
	CreatedAt        int64               `json:"created_at"`
}

// RecipeShort is the compact recipe view used in favorites, cart and subscriptions.
type RecipeShort struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int32  `json:"cooking_time"`
}

// ShoppingListLine is one aggregated entry of the shopping list.
type ShoppingListLine struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}
