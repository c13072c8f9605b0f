package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/foodgram/pkg/api"
)

func TestSubscribe(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	annaToken, anna := env.register(t, "anna")
	borisToken, boris := env.register(t, "boris")
	flour := env.ingredient(t, "flour", "g")
	bakery := env.tag(t, "bakery")
	env.createRecipe(t, borisToken, "Bread", []string{bakery}, amount(flour, 500))
	rolls := env.createRecipe(t, borisToken, "Rolls", []string{bakery}, amount(flour, 300))

	resp, err := env.subscriptions.Subscribe(ctx, authed(&api.SubscribeRequest{AuthorId: boris.Id, RecipesLimit: 1}, annaToken))
	require.NoError(t, err)
	sub := resp.Msg.Subscription
	assert.Equal(t, boris.Id, sub.Author.Id)
	assert.True(t, sub.Author.IsSubscribed)
	assert.Equal(t, int32(2), sub.RecipesCount)
	require.Len(t, sub.Recipes, 1)
	assert.Equal(t, rolls.Id, sub.Recipes[0].Id, "preview shows the newest recipes")

	_, err = env.subscriptions.Subscribe(ctx, authed(&api.SubscribeRequest{AuthorId: boris.Id}, annaToken))
	requireCode(t, connect.CodeAlreadyExists, err)

	_, err = env.subscriptions.Subscribe(ctx, authed(&api.SubscribeRequest{AuthorId: anna.Id}, annaToken))
	requireCode(t, connect.CodeInvalidArgument, err)

	_, err = env.subscriptions.Subscribe(ctx, authed(&api.SubscribeRequest{AuthorId: "missing"}, annaToken))
	requireCode(t, connect.CodeNotFound, err)

	_, err = env.subscriptions.Subscribe(ctx, authed(&api.SubscribeRequest{AuthorId: boris.Id}, ""))
	requireCode(t, connect.CodeUnauthenticated, err)
}

func TestListSubscriptions(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	annaToken, _ := env.register(t, "anna")
	clarasToken, clara := env.register(t, "clara")
	_, boris := env.register(t, "boris")
	flour := env.ingredient(t, "flour", "g")
	env.createRecipe(t, clarasToken, "Bread", []string{env.tag(t, "bakery")}, amount(flour, 500))

	for _, author := range []*api.User{clara, boris} {
		_, err := env.subscriptions.Subscribe(ctx, authed(&api.SubscribeRequest{AuthorId: author.Id}, annaToken))
		require.NoError(t, err)
	}

	resp, err := env.subscriptions.ListSubscriptions(ctx, authed(&api.ListSubscriptionsRequest{}, annaToken))
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.Msg.Count)
	require.Len(t, resp.Msg.Subscriptions, 2)
	assert.Equal(t, "boris", resp.Msg.Subscriptions[0].Author.Username)
	assert.Empty(t, resp.Msg.Subscriptions[0].Recipes)
	assert.Equal(t, "clara", resp.Msg.Subscriptions[1].Author.Username)
	assert.Equal(t, int32(1), resp.Msg.Subscriptions[1].RecipesCount)
	assert.Len(t, resp.Msg.Subscriptions[1].Recipes, 1)

	_, err = env.subscriptions.Unsubscribe(ctx, authed(&api.UnsubscribeRequest{AuthorId: boris.Id}, annaToken))
	require.NoError(t, err)

	_, err = env.subscriptions.Unsubscribe(ctx, authed(&api.UnsubscribeRequest{AuthorId: boris.Id}, annaToken))
	requireCode(t, connect.CodeNotFound, err)

	resp, err = env.subscriptions.ListSubscriptions(ctx, authed(&api.ListSubscriptionsRequest{Limit: 10}, annaToken))
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.Msg.Count)
}
