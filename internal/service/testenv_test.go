package service

import (
	"context"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/foodgram/internal/auth"
	"github.com/mmynk/foodgram/internal/config"
	"github.com/mmynk/foodgram/internal/middleware"
	"github.com/mmynk/foodgram/internal/models"
	"github.com/mmynk/foodgram/internal/storage/sqlite"
	"github.com/mmynk/foodgram/pkg/api"
	"github.com/mmynk/foodgram/pkg/api/apiconnect"
	"github.com/mmynk/foodgram/pkg/logging"
)

const testPassword = "correct-horse-battery"

// testEnv is a running server with every service mounted the way
// cmd/server mounts them, plus one client per service.
type testEnv struct {
	store  *sqlite.SQLiteStore
	jwt    *auth.JWTManager
	server *httptest.Server

	auth          apiconnect.AuthServiceClient
	users         apiconnect.UserServiceClient
	subscriptions apiconnect.SubscriptionServiceClient
	catalog       apiconnect.CatalogServiceClient
	recipes       apiconnect.RecipeServiceClient
	cart          apiconnect.CartServiceClient
}

// setupTestServer creates a test server backed by a fresh database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	jwtManager := auth.NewJWTManager("test-secret-key-at-least-32-characters", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	pagination := config.PaginationConfig{DefaultPageSize: 6, MaxPageSize: 100}
	logger := newTestLogger(t)

	optional := connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.OptionalAuth(jwtManager))
	required := connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.RequireAuth(jwtManager))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store, logger), optional))
	mux.Handle(apiconnect.NewUserServiceHandler(NewUserService(store, authenticator, pagination), optional))
	mux.Handle(apiconnect.NewSubscriptionServiceHandler(NewSubscriptionService(store, pagination), required))
	mux.Handle(apiconnect.NewCatalogServiceHandler(NewCatalogService(store), optional))
	mux.Handle(apiconnect.NewRecipeServiceHandler(NewRecipeService(store, pagination), optional))
	mux.Handle(apiconnect.NewCartServiceHandler(NewCartService(store), required))
	mux.Handle(DownloadShoppingListPath, middleware.RequireAuthHTTP(jwtManager)(NewShoplistHandler(store)))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	client := server.Client()
	return &testEnv{
		store:         store,
		jwt:           jwtManager,
		server:        server,
		auth:          apiconnect.NewAuthServiceClient(client, server.URL),
		users:         apiconnect.NewUserServiceClient(client, server.URL),
		subscriptions: apiconnect.NewSubscriptionServiceClient(client, server.URL),
		catalog:       apiconnect.NewCatalogServiceClient(client, server.URL),
		recipes:       apiconnect.NewRecipeServiceClient(client, server.URL),
		cart:          apiconnect.NewCartServiceClient(client, server.URL),
	}
}

// authed wraps msg in a request carrying token as a bearer credential.
// An empty token yields an anonymous request.
func authed[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

// register creates an account named username and returns its token and profile.
func (e *testEnv) register(t *testing.T, username string) (string, *api.User) {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: username,
		LastName:  "Tester",
		Password:  testPassword,
	}))
	require.NoError(t, err)
	return resp.Msg.Token, resp.Msg.User
}

func (e *testEnv) ingredient(t *testing.T, name, unit string) string {
	t.Helper()
	ing := &models.Ingredient{Name: name, MeasurementUnit: unit}
	_, err := e.store.CreateIngredient(context.Background(), ing)
	require.NoError(t, err)
	return ing.ID
}

func (e *testEnv) tag(t *testing.T, slug string) string {
	t.Helper()
	tag := &models.Tag{Name: slug, Color: fmt.Sprintf("#%06x", crc32.ChecksumIEEE([]byte(slug))&0xffffff), Slug: slug}
	_, err := e.store.CreateTag(context.Background(), tag)
	require.NoError(t, err)
	return tag.ID
}

// createRecipe publishes a recipe as the token's owner.
func (e *testEnv) createRecipe(t *testing.T, token, name string, tagIDs []string, lines ...*api.IngredientAmount) *api.Recipe {
	t.Helper()
	resp, err := e.recipes.CreateRecipe(context.Background(), authed(&api.CreateRecipeRequest{
		Name:        name,
		Text:        "Combine everything.",
		CookingTime: 20,
		TagIds:      tagIDs,
		Ingredients: lines,
	}, token))
	require.NoError(t, err)
	return resp.Msg.Recipe
}

func amount(ingredientID string, n int32) *api.IngredientAmount {
	return &api.IngredientAmount{Id: ingredientID, Amount: n}
}

func newTestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return logging.New(io.Discard, "text", "debug")
}

func requireCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}
