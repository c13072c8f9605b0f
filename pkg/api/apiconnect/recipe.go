package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/foodgram/pkg/api"
)

// RecipeServiceName is the fully-qualified name of the RecipeService service.
const RecipeServiceName = "foodgram.v1.RecipeService"

const (
	RecipeServiceCreateRecipeProcedure   = "/foodgram.v1.RecipeService/CreateRecipe"
	RecipeServiceGetRecipeProcedure      = "/foodgram.v1.RecipeService/GetRecipe"
	RecipeServiceListRecipesProcedure    = "/foodgram.v1.RecipeService/ListRecipes"
	RecipeServiceUpdateRecipeProcedure   = "/foodgram.v1.RecipeService/UpdateRecipe"
	RecipeServiceDeleteRecipeProcedure   = "/foodgram.v1.RecipeService/DeleteRecipe"
	RecipeServiceAddFavoriteProcedure    = "/foodgram.v1.RecipeService/AddFavorite"
	RecipeServiceRemoveFavoriteProcedure = "/foodgram.v1.RecipeService/RemoveFavorite"
)

// RecipeServiceHandler is implemented by the recipe publishing and favorites service.
type RecipeServiceHandler interface {
	CreateRecipe(context.Context, *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error)
	GetRecipe(context.Context, *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error)
	ListRecipes(context.Context, *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error)
	UpdateRecipe(context.Context, *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error)
	DeleteRecipe(context.Context, *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error)
	AddFavorite(context.Context, *connect.Request[api.AddFavoriteRequest]) (*connect.Response[api.AddFavoriteResponse], error)
	RemoveFavorite(context.Context, *connect.Request[api.RemoveFavoriteRequest]) (*connect.Response[api.RemoveFavoriteResponse], error)
}

// NewRecipeServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewRecipeServiceHandler(svc RecipeServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + RecipeServiceName + "/", procedureMux{
		RecipeServiceCreateRecipeProcedure:   connect.NewUnaryHandler(RecipeServiceCreateRecipeProcedure, svc.CreateRecipe, opts...),
		RecipeServiceGetRecipeProcedure:      connect.NewUnaryHandler(RecipeServiceGetRecipeProcedure, svc.GetRecipe, opts...),
		RecipeServiceListRecipesProcedure:    connect.NewUnaryHandler(RecipeServiceListRecipesProcedure, svc.ListRecipes, opts...),
		RecipeServiceUpdateRecipeProcedure:   connect.NewUnaryHandler(RecipeServiceUpdateRecipeProcedure, svc.UpdateRecipe, opts...),
		RecipeServiceDeleteRecipeProcedure:   connect.NewUnaryHandler(RecipeServiceDeleteRecipeProcedure, svc.DeleteRecipe, opts...),
		RecipeServiceAddFavoriteProcedure:    connect.NewUnaryHandler(RecipeServiceAddFavoriteProcedure, svc.AddFavorite, opts...),
		RecipeServiceRemoveFavoriteProcedure: connect.NewUnaryHandler(RecipeServiceRemoveFavoriteProcedure, svc.RemoveFavorite, opts...),
	}
}

// RecipeServiceClient is a client for the foodgram.v1.RecipeService service.
type RecipeServiceClient interface {
	CreateRecipe(context.Context, *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error)
	GetRecipe(context.Context, *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error)
	ListRecipes(context.Context, *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error)
	UpdateRecipe(context.Context, *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error)
	DeleteRecipe(context.Context, *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error)
	AddFavorite(context.Context, *connect.Request[api.AddFavoriteRequest]) (*connect.Response[api.AddFavoriteResponse], error)
	RemoveFavorite(context.Context, *connect.Request[api.RemoveFavoriteRequest]) (*connect.Response[api.RemoveFavoriteResponse], error)
}

// NewRecipeServiceClient constructs a client for the foodgram.v1.RecipeService service.
func NewRecipeServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RecipeServiceClient {
	opts = clientOptions(opts)
	return &recipeServiceClient{
		createRecipe:   connect.NewClient[api.CreateRecipeRequest, api.CreateRecipeResponse](httpClient, baseURL+RecipeServiceCreateRecipeProcedure, opts...),
		getRecipe:      connect.NewClient[api.GetRecipeRequest, api.GetRecipeResponse](httpClient, baseURL+RecipeServiceGetRecipeProcedure, opts...),
		listRecipes:    connect.NewClient[api.ListRecipesRequest, api.ListRecipesResponse](httpClient, baseURL+RecipeServiceListRecipesProcedure, opts...),
		updateRecipe:   connect.NewClient[api.UpdateRecipeRequest, api.UpdateRecipeResponse](httpClient, baseURL+RecipeServiceUpdateRecipeProcedure, opts...),
		deleteRecipe:   connect.NewClient[api.DeleteRecipeRequest, api.DeleteRecipeResponse](httpClient, baseURL+RecipeServiceDeleteRecipeProcedure, opts...),
		addFavorite:    connect.NewClient[api.AddFavoriteRequest, api.AddFavoriteResponse](httpClient, baseURL+RecipeServiceAddFavoriteProcedure, opts...),
		removeFavorite: connect.NewClient[api.RemoveFavoriteRequest, api.RemoveFavoriteResponse](httpClient, baseURL+RecipeServiceRemoveFavoriteProcedure, opts...),
	}
}

type recipeServiceClient struct {
	createRecipe   *connect.Client[api.CreateRecipeRequest, api.CreateRecipeResponse]
	getRecipe      *connect.Client[api.GetRecipeRequest, api.GetRecipeResponse]
	listRecipes    *connect.Client[api.ListRecipesRequest, api.ListRecipesResponse]
	updateRecipe   *connect.Client[api.UpdateRecipeRequest, api.UpdateRecipeResponse]
	deleteRecipe   *connect.Client[api.DeleteRecipeRequest, api.DeleteRecipeResponse]
	addFavorite    *connect.Client[api.AddFavoriteRequest, api.AddFavoriteResponse]
	removeFavorite *connect.Client[api.RemoveFavoriteRequest, api.RemoveFavoriteResponse]
}

func (c *recipeServiceClient) CreateRecipe(ctx context.Context, req *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error) {
	return c.createRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) GetRecipe(ctx context.Context, req *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error) {
	return c.getRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) ListRecipes(ctx context.Context, req *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error) {
	return c.listRecipes.CallUnary(ctx, req)
}

func (c *recipeServiceClient) UpdateRecipe(ctx context.Context, req *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error) {
	return c.updateRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) DeleteRecipe(ctx context.Context, req *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error) {
	return c.deleteRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) AddFavorite(ctx context.Context, req *connect.Request[api.AddFavoriteRequest]) (*connect.Response[api.AddFavoriteResponse], error) {
	return c.addFavorite.CallUnary(ctx, req)
}

func (c *recipeServiceClient) RemoveFavorite(ctx context.Context, req *connect.Request[api.RemoveFavoriteRequest]) (*connect.Response[api.RemoveFavoriteResponse], error) {
	return c.removeFavorite.CallUnary(ctx, req)
}
