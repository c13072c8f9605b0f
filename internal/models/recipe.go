package models

// Recipe represents a published recipe with its tags and ingredient lines.
type Recipe struct {
	// ID is the unique identifier for the recipe (UUID format).
	ID string

	// AuthorID is the ID of the user who published the recipe.
	AuthorID string

	Name string

	// Image is the picture as submitted by the client (data URI), stored verbatim.
	Image string

	// Text is the free-form description and instructions.
	Text string

	// CookingTime is in minutes (1..3000).
	CookingTime int

	// Tags are resolved tag records, ordered by name.
	Tags []Tag

	// Ingredients are the recipe's ingredient lines in the order they were submitted.
	Ingredients []RecipeIngredient

	// CreatedAt is the Unix timestamp when the recipe was published.
	CreatedAt int64
}

// TagIDs returns the IDs of the recipe's tags.
func (r *Recipe) TagIDs() []string {
	ids := make([]string, len(r.Tags))
	for i, t := range r.Tags {
		ids[i] = t.ID
	}
	return ids
}

// RecipeIngredient is one ingredient line of a recipe.
// Name and MeasurementUnit are denormalized from the ingredient catalog on read.
type RecipeIngredient struct {
	IngredientID    string
	Name            string
	MeasurementUnit string

	// Amount is a positive integer quantity in MeasurementUnit.
	Amount int
}

// RecipeFilter narrows a recipe listing.
//
// IsFavorited and IsInShoppingCart are tri-state: nil disables the filter,
// true keeps only recipes in the viewer's favorites (cart), false keeps only
// recipes outside it. An anonymous viewer (empty ViewerID) has empty sets.
type RecipeFilter struct {
	AuthorID         string
	TagSlugs         []string
	ViewerID         string
	IsFavorited      *bool
	IsInShoppingCart *bool

	Limit  int
	Offset int
}
