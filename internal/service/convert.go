package service

import (
	"github.com/mmynk/foodgram/internal/models"
	"github.com/mmynk/foodgram/pkg/api"
)

func toAPIUser(user *models.User, isSubscribed bool) *api.User {
	return &api.User{
		Id:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
		CreatedAt:    user.CreatedAt,
	}
}

func toAPITag(tag *models.Tag) *api.Tag {
	return &api.Tag{
		Id:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	}
}

func toAPIIngredient(ingredient *models.Ingredient) *api.Ingredient {
	return &api.Ingredient{
		Id:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

func toAPIRecipeShort(recipe *models.Recipe) *api.RecipeShort {
	return &api.RecipeShort{
		Id:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: int32(recipe.CookingTime),
	}
}

// recipeView carries the viewer-dependent parts of a recipe response.
type recipeView struct {
	author           *api.User
	isFavorited      bool
	isInShoppingCart bool
}

func toAPIRecipe(recipe *models.Recipe, view recipeView) *api.Recipe {
	tags := make([]*api.Tag, len(recipe.Tags))
	for i := range recipe.Tags {
		tags[i] = toAPITag(&recipe.Tags[i])
	}

	ingredients := make([]*api.RecipeIngredient, len(recipe.Ingredients))
	for i, line := range recipe.Ingredients {
		ingredients[i] = &api.RecipeIngredient{
			Id:              line.IngredientID,
			Name:            line.Name,
			MeasurementUnit: line.MeasurementUnit,
			Amount:          int32(line.Amount),
		}
	}

	return &api.Recipe{
		Id:               recipe.ID,
		Tags:             tags,
		Author:           view.author,
		Ingredients:      ingredients,
		IsFavorited:      view.isFavorited,
		IsInShoppingCart: view.isInShoppingCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      int32(recipe.CookingTime),
		CreatedAt:        recipe.CreatedAt,
	}
}
