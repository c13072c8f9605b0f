// Package models defines the core domain models for Foodgram.
//
// # Models
//
//   - User: registered account that publishes recipes and follows authors
//   - Ingredient: catalog entry identified by (name, measurement unit)
//   - Tag: recipe label with a fixed color palette
//   - Recipe: authored recipe with tags and ingredient lines
//   - RecipeIngredient: one ingredient line of a recipe (amount ≥ 1)
//
// Favorites, shopping cart entries and follows are plain (user, target)
// associations and live only in storage; they have no model types.
//
// # Design Principles
//
// 1. **IDs over pointers**: relationships are expressed as ID strings
// 2. **Unix timestamps**: CreatedAt/UpdatedAt are seconds since epoch
// 3. **Validation upstream**: models carry data only, services validate input
package models
