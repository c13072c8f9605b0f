package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/foodgram/pkg/api"
)

// CartServiceName is the fully-qualified name of the CartService service.
const CartServiceName = "foodgram.v1.CartService"

const (
	CartServiceAddToCartProcedure       = "/foodgram.v1.CartService/AddToCart"
	CartServiceRemoveFromCartProcedure  = "/foodgram.v1.CartService/RemoveFromCart"
	CartServiceGetShoppingListProcedure = "/foodgram.v1.CartService/GetShoppingList"
)

// CartServiceHandler is implemented by the shopping cart service.
type CartServiceHandler interface {
	AddToCart(context.Context, *connect.Request[api.AddToCartRequest]) (*connect.Response[api.AddToCartResponse], error)
	RemoveFromCart(context.Context, *connect.Request[api.RemoveFromCartRequest]) (*connect.Response[api.RemoveFromCartResponse], error)
	GetShoppingList(context.Context, *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.GetShoppingListResponse], error)
}

// NewCartServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCartServiceHandler(svc CartServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + CartServiceName + "/", procedureMux{
		CartServiceAddToCartProcedure:       connect.NewUnaryHandler(CartServiceAddToCartProcedure, svc.AddToCart, opts...),
		CartServiceRemoveFromCartProcedure:  connect.NewUnaryHandler(CartServiceRemoveFromCartProcedure, svc.RemoveFromCart, opts...),
		CartServiceGetShoppingListProcedure: connect.NewUnaryHandler(CartServiceGetShoppingListProcedure, svc.GetShoppingList, opts...),
	}
}

// CartServiceClient is a client for the foodgram.v1.CartService service.
type CartServiceClient interface {
	AddToCart(context.Context, *connect.Request[api.AddToCartRequest]) (*connect.Response[api.AddToCartResponse], error)
	RemoveFromCart(context.Context, *connect.Request[api.RemoveFromCartRequest]) (*connect.Response[api.RemoveFromCartResponse], error)
	GetShoppingList(context.Context, *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.GetShoppingListResponse], error)
}

// NewCartServiceClient constructs a client for the foodgram.v1.CartService service.
func NewCartServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CartServiceClient {
	opts = clientOptions(opts)
	return &cartServiceClient{
		addToCart:       connect.NewClient[api.AddToCartRequest, api.AddToCartResponse](httpClient, baseURL+CartServiceAddToCartProcedure, opts...),
		removeFromCart:  connect.NewClient[api.RemoveFromCartRequest, api.RemoveFromCartResponse](httpClient, baseURL+CartServiceRemoveFromCartProcedure, opts...),
		getShoppingList: connect.NewClient[api.GetShoppingListRequest, api.GetShoppingListResponse](httpClient, baseURL+CartServiceGetShoppingListProcedure, opts...),
	}
}

type cartServiceClient struct {
	addToCart       *connect.Client[api.AddToCartRequest, api.AddToCartResponse]
	removeFromCart  *connect.Client[api.RemoveFromCartRequest, api.RemoveFromCartResponse]
	getShoppingList *connect.Client[api.GetShoppingListRequest, api.GetShoppingListResponse]
}

func (c *cartServiceClient) AddToCart(ctx context.Context, req *connect.Request[api.AddToCartRequest]) (*connect.Response[api.AddToCartResponse], error) {
	return c.addToCart.CallUnary(ctx, req)
}

func (c *cartServiceClient) RemoveFromCart(ctx context.Context, req *connect.Request[api.RemoveFromCartRequest]) (*connect.Response[api.RemoveFromCartResponse], error) {
	return c.removeFromCart.CallUnary(ctx, req)
}

func (c *cartServiceClient) GetShoppingList(ctx context.Context, req *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.GetShoppingListResponse], error) {
	return c.getShoppingList.CallUnary(ctx, req)
}
