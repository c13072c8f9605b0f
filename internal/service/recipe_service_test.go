package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/foodgram/pkg/api"
)

const pixel = "data:image/png;base64,iVBORw0KGgo="

func TestCreateRecipe(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	token, anna := env.register(t, "anna")
	flour := env.ingredient(t, "flour", "g")
	milk := env.ingredient(t, "milk", "ml")
	lunch := env.tag(t, "lunch")
	breakfast := env.tag(t, "breakfast")

	resp, err := env.recipes.CreateRecipe(ctx, authed(&api.CreateRecipeRequest{
		Name:        "Pancakes",
		Text:        "Whisk and fry.",
		Image:       pixel,
		CookingTime: 25,
		TagIds:      []string{lunch, breakfast},
		Ingredients: []*api.IngredientAmount{amount(milk, 250), amount(flour, 200)},
	}, token))
	require.NoError(t, err)

	recipe := resp.Msg.Recipe
	assert.NotEmpty(t, recipe.Id)
	assert.Equal(t, "Pancakes", recipe.Name)
	assert.Equal(t, pixel, recipe.Image)
	assert.Equal(t, int32(25), recipe.CookingTime)
	assert.Equal(t, anna.Id, recipe.Author.Id)
	assert.False(t, recipe.IsFavorited)
	assert.False(t, recipe.IsInShoppingCart)

	require.Len(t, recipe.Tags, 2)
	assert.Equal(t, "breakfast", recipe.Tags[0].Slug)
	assert.Equal(t, "lunch", recipe.Tags[1].Slug)

	assert.Equal(t, []*api.RecipeIngredient{
		{Id: milk, Name: "milk", MeasurementUnit: "ml", Amount: 250},
		{Id: flour, Name: "flour", MeasurementUnit: "g", Amount: 200},
	}, recipe.Ingredients)

	valid := func() *api.CreateRecipeRequest {
		return &api.CreateRecipeRequest{
			Name:        "Bread",
			Text:        "Knead and bake.",
			CookingTime: 90,
			TagIds:      []string{breakfast},
			Ingredients: []*api.IngredientAmount{amount(flour, 500)},
		}
	}

	tests := []struct {
		name   string
		mutate func(*api.CreateRecipeRequest)
		code   connect.Code
	}{
		{"missing name", func(r *api.CreateRecipeRequest) { r.Name = "" }, connect.CodeInvalidArgument},
		{"missing text", func(r *api.CreateRecipeRequest) { r.Text = "" }, connect.CodeInvalidArgument},
		{"zero cooking time", func(r *api.CreateRecipeRequest) { r.CookingTime = 0 }, connect.CodeInvalidArgument},
		{"no tags", func(r *api.CreateRecipeRequest) { r.TagIds = nil }, connect.CodeInvalidArgument},
		{"repeated tag", func(r *api.CreateRecipeRequest) { r.TagIds = []string{breakfast, breakfast} }, connect.CodeInvalidArgument},
		{"no ingredients", func(r *api.CreateRecipeRequest) { r.Ingredients = nil }, connect.CodeInvalidArgument},
		{"zero amount", func(r *api.CreateRecipeRequest) { r.Ingredients[0].Amount = 0 }, connect.CodeInvalidArgument},
		{"repeated ingredient", func(r *api.CreateRecipeRequest) {
			r.Ingredients = append(r.Ingredients, amount(flour, 10))
		}, connect.CodeInvalidArgument},
		{"unknown ingredient", func(r *api.CreateRecipeRequest) { r.Ingredients[0].Id = "missing" }, connect.CodeInvalidArgument},
		{"unknown tag", func(r *api.CreateRecipeRequest) { r.TagIds = []string{"missing"} }, connect.CodeInvalidArgument},
		{"image not a data URI", func(r *api.CreateRecipeRequest) { r.Image = "https://example.com/a.png" }, connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := env.recipes.CreateRecipe(ctx, authed(req, token))
			requireCode(t, tt.code, err)
		})
	}

	t.Run("anonymous", func(t *testing.T) {
		_, err := env.recipes.CreateRecipe(ctx, authed(valid(), ""))
		requireCode(t, connect.CodeUnauthenticated, err)
	})

	list, err := env.recipes.ListRecipes(ctx, connect.NewRequest(&api.ListRecipesRequest{}))
	require.NoError(t, err)
	assert.Equal(t, int32(1), list.Msg.Count, "rejected recipes leave nothing behind")
}

func TestGetRecipe(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	token, _ := env.register(t, "anna")
	flour := env.ingredient(t, "flour", "g")
	recipe := env.createRecipe(t, token, "Bread", []string{env.tag(t, "bakery")}, amount(flour, 500))

	resp, err := env.recipes.GetRecipe(ctx, connect.NewRequest(&api.GetRecipeRequest{RecipeId: recipe.Id}))
	require.NoError(t, err)
	assert.Equal(t, recipe.Id, resp.Msg.Recipe.Id)
	assert.Equal(t, "anna", resp.Msg.Recipe.Author.Username)

	_, err = env.recipes.GetRecipe(ctx, connect.NewRequest(&api.GetRecipeRequest{RecipeId: "missing"}))
	requireCode(t, connect.CodeNotFound, err)
}

func TestUpdateRecipe(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	annaToken, _ := env.register(t, "anna")
	borisToken, _ := env.register(t, "boris")
	flour := env.ingredient(t, "flour", "g")
	sugar := env.ingredient(t, "sugar", "g")
	bakery := env.tag(t, "bakery")
	dessert := env.tag(t, "dessert")
	recipe := env.createRecipe(t, annaToken, "Bread", []string{bakery}, amount(flour, 500))

	update := &api.UpdateRecipeRequest{
		RecipeId:    recipe.Id,
		Name:        "Sweet bread",
		Text:        "Knead, sweeten, bake.",
		CookingTime: 80,
		TagIds:      []string{dessert},
		Ingredients: []*api.IngredientAmount{amount(flour, 450), amount(sugar, 50)},
	}

	_, err := env.recipes.UpdateRecipe(ctx, authed(update, borisToken))
	requireCode(t, connect.CodePermissionDenied, err)

	_, err = env.recipes.UpdateRecipe(ctx, authed(update, ""))
	requireCode(t, connect.CodeUnauthenticated, err)

	resp, err := env.recipes.UpdateRecipe(ctx, authed(update, annaToken))
	require.NoError(t, err)
	got := resp.Msg.Recipe
	assert.Equal(t, "Sweet bread", got.Name)
	assert.Equal(t, int32(80), got.CookingTime)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "dessert", got.Tags[0].Slug)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, int32(450), got.Ingredients[0].Amount)
	assert.Equal(t, "sugar", got.Ingredients[1].Name)
	assert.Equal(t, recipe.CreatedAt, got.CreatedAt)

	update.Ingredients = nil
	_, err = env.recipes.UpdateRecipe(ctx, authed(update, annaToken))
	requireCode(t, connect.CodeInvalidArgument, err)

	update.RecipeId = "missing"
	_, err = env.recipes.UpdateRecipe(ctx, authed(update, annaToken))
	requireCode(t, connect.CodeNotFound, err)
}

func TestDeleteRecipe(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	annaToken, _ := env.register(t, "anna")
	borisToken, _ := env.register(t, "boris")
	flour := env.ingredient(t, "flour", "g")
	recipe := env.createRecipe(t, annaToken, "Bread", []string{env.tag(t, "bakery")}, amount(flour, 500))

	_, err := env.cart.AddToCart(ctx, authed(&api.AddToCartRequest{RecipeId: recipe.Id}, borisToken))
	require.NoError(t, err)

	_, err = env.recipes.DeleteRecipe(ctx, authed(&api.DeleteRecipeRequest{RecipeId: recipe.Id}, borisToken))
	requireCode(t, connect.CodePermissionDenied, err)

	_, err = env.recipes.DeleteRecipe(ctx, authed(&api.DeleteRecipeRequest{RecipeId: recipe.Id}, annaToken))
	require.NoError(t, err)

	_, err = env.recipes.GetRecipe(ctx, connect.NewRequest(&api.GetRecipeRequest{RecipeId: recipe.Id}))
	requireCode(t, connect.CodeNotFound, err)

	_, err = env.recipes.DeleteRecipe(ctx, authed(&api.DeleteRecipeRequest{RecipeId: recipe.Id}, annaToken))
	requireCode(t, connect.CodeNotFound, err)

	list, err := env.cart.GetShoppingList(ctx, authed(&api.GetShoppingListRequest{}, borisToken))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Lines, "deleting a recipe empties it from every cart")
}

func TestListRecipes(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	annaToken, anna := env.register(t, "anna")
	borisToken, _ := env.register(t, "boris")
	flour := env.ingredient(t, "flour", "g")
	breakfast := env.tag(t, "breakfast")
	dinner := env.tag(t, "dinner")

	porridge := env.createRecipe(t, annaToken, "Porridge", []string{breakfast}, amount(flour, 1))
	soup := env.createRecipe(t, annaToken, "Soup", []string{dinner}, amount(flour, 2))
	steak := env.createRecipe(t, borisToken, "Steak", []string{dinner}, amount(flour, 3))

	_, err := env.recipes.AddFavorite(ctx, authed(&api.AddFavoriteRequest{RecipeId: soup.Id}, borisToken))
	require.NoError(t, err)

	ids := func(recipes []*api.Recipe) []string {
		out := make([]string, len(recipes))
		for i, r := range recipes {
			out[i] = r.Id
		}
		return out
	}
	yes := true

	tests := []struct {
		name      string
		token     string
		req       *api.ListRecipesRequest
		want      []string
		wantCount int32
	}{
		{"newest first", "", &api.ListRecipesRequest{}, []string{steak.Id, soup.Id, porridge.Id}, 3},
		{"by author", "", &api.ListRecipesRequest{AuthorId: anna.Id}, []string{soup.Id, porridge.Id}, 2},
		{"by tag", "", &api.ListRecipesRequest{TagSlugs: []string{"dinner"}}, []string{steak.Id, soup.Id}, 2},
		{"favorited by viewer", borisToken, &api.ListRecipesRequest{IsFavorited: &yes}, []string{soup.Id}, 1},
		{"favorited anonymously", "", &api.ListRecipesRequest{IsFavorited: &yes}, []string{}, 0},
		{"paged", "", &api.ListRecipesRequest{Limit: 1, Offset: 2}, []string{porridge.Id}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.recipes.ListRecipes(ctx, authed(tt.req, tt.token))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(resp.Msg.Recipes))
			assert.Equal(t, tt.wantCount, resp.Msg.Count)
		})
	}

	t.Run("viewer flags", func(t *testing.T) {
		resp, err := env.recipes.ListRecipes(ctx, authed(&api.ListRecipesRequest{AuthorId: anna.Id}, borisToken))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Recipes, 2)
		assert.True(t, resp.Msg.Recipes[0].IsFavorited)
		assert.False(t, resp.Msg.Recipes[1].IsFavorited)
	})
}

func TestFavorites(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	annaToken, _ := env.register(t, "anna")
	flour := env.ingredient(t, "flour", "g")
	recipe := env.createRecipe(t, annaToken, "Bread", []string{env.tag(t, "bakery")}, amount(flour, 500))

	resp, err := env.recipes.AddFavorite(ctx, authed(&api.AddFavoriteRequest{RecipeId: recipe.Id}, annaToken))
	require.NoError(t, err)
	assert.Equal(t, &api.RecipeShort{Id: recipe.Id, Name: "Bread", CookingTime: 20}, resp.Msg.Recipe)

	_, err = env.recipes.AddFavorite(ctx, authed(&api.AddFavoriteRequest{RecipeId: recipe.Id}, annaToken))
	requireCode(t, connect.CodeAlreadyExists, err)

	_, err = env.recipes.AddFavorite(ctx, authed(&api.AddFavoriteRequest{RecipeId: "missing"}, annaToken))
	requireCode(t, connect.CodeNotFound, err)

	_, err = env.recipes.AddFavorite(ctx, authed(&api.AddFavoriteRequest{RecipeId: recipe.Id}, ""))
	requireCode(t, connect.CodeUnauthenticated, err)

	got, err := env.recipes.GetRecipe(ctx, authed(&api.GetRecipeRequest{RecipeId: recipe.Id}, annaToken))
	require.NoError(t, err)
	assert.True(t, got.Msg.Recipe.IsFavorited)

	_, err = env.recipes.RemoveFavorite(ctx, authed(&api.RemoveFavoriteRequest{RecipeId: recipe.Id}, annaToken))
	require.NoError(t, err)

	_, err = env.recipes.RemoveFavorite(ctx, authed(&api.RemoveFavoriteRequest{RecipeId: recipe.Id}, annaToken))
	requireCode(t, connect.CodeNotFound, err)
}
