package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/foodgram/pkg/api"
)

// CatalogServiceName is the fully-qualified name of the CatalogService service.
const CatalogServiceName = "foodgram.v1.CatalogService"

const (
	CatalogServiceListIngredientsProcedure = "/foodgram.v1.CatalogService/ListIngredients"
	CatalogServiceGetIngredientProcedure   = "/foodgram.v1.CatalogService/GetIngredient"
	CatalogServiceListTagsProcedure        = "/foodgram.v1.CatalogService/ListTags"
	CatalogServiceGetTagProcedure          = "/foodgram.v1.CatalogService/GetTag"
)

// CatalogServiceHandler is implemented by the ingredient and tag catalog service.
type CatalogServiceHandler interface {
	ListIngredients(context.Context, *connect.Request[api.ListIngredientsRequest]) (*connect.Response[api.ListIngredientsResponse], error)
	GetIngredient(context.Context, *connect.Request[api.GetIngredientRequest]) (*connect.Response[api.GetIngredientResponse], error)
	ListTags(context.Context, *connect.Request[api.ListTagsRequest]) (*connect.Response[api.ListTagsResponse], error)
	GetTag(context.Context, *connect.Request[api.GetTagRequest]) (*connect.Response[api.GetTagResponse], error)
}

// NewCatalogServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + CatalogServiceName + "/", procedureMux{
		CatalogServiceListIngredientsProcedure: connect.NewUnaryHandler(CatalogServiceListIngredientsProcedure, svc.ListIngredients, opts...),
		CatalogServiceGetIngredientProcedure:   connect.NewUnaryHandler(CatalogServiceGetIngredientProcedure, svc.GetIngredient, opts...),
		CatalogServiceListTagsProcedure:        connect.NewUnaryHandler(CatalogServiceListTagsProcedure, svc.ListTags, opts...),
		CatalogServiceGetTagProcedure:          connect.NewUnaryHandler(CatalogServiceGetTagProcedure, svc.GetTag, opts...),
	}
}

// CatalogServiceClient is a client for the foodgram.v1.CatalogService service.
type CatalogServiceClient interface {
	ListIngredients(context.Context, *connect.Request[api.ListIngredientsRequest]) (*connect.Response[api.ListIngredientsResponse], error)
	GetIngredient(context.Context, *connect.Request[api.GetIngredientRequest]) (*connect.Response[api.GetIngredientResponse], error)
	ListTags(context.Context, *connect.Request[api.ListTagsRequest]) (*connect.Response[api.ListTagsResponse], error)
	GetTag(context.Context, *connect.Request[api.GetTagRequest]) (*connect.Response[api.GetTagResponse], error)
}

// NewCatalogServiceClient constructs a client for the foodgram.v1.CatalogService service.
func NewCatalogServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CatalogServiceClient {
	opts = clientOptions(opts)
	return &catalogServiceClient{
		listIngredients: connect.NewClient[api.ListIngredientsRequest, api.ListIngredientsResponse](httpClient, baseURL+CatalogServiceListIngredientsProcedure, opts...),
		getIngredient:   connect.NewClient[api.GetIngredientRequest, api.GetIngredientResponse](httpClient, baseURL+CatalogServiceGetIngredientProcedure, opts...),
		listTags:        connect.NewClient[api.ListTagsRequest, api.ListTagsResponse](httpClient, baseURL+CatalogServiceListTagsProcedure, opts...),
		getTag:          connect.NewClient[api.GetTagRequest, api.GetTagResponse](httpClient, baseURL+CatalogServiceGetTagProcedure, opts...),
	}
}

type catalogServiceClient struct {
	listIngredients *connect.Client[api.ListIngredientsRequest, api.ListIngredientsResponse]
	getIngredient   *connect.Client[api.GetIngredientRequest, api.GetIngredientResponse]
	listTags        *connect.Client[api.ListTagsRequest, api.ListTagsResponse]
	getTag          *connect.Client[api.GetTagRequest, api.GetTagResponse]
}

func (c *catalogServiceClient) ListIngredients(ctx context.Context, req *connect.Request[api.ListIngredientsRequest]) (*connect.Response[api.ListIngredientsResponse], error) {
	return c.listIngredients.CallUnary(ctx, req)
}

func (c *catalogServiceClient) GetIngredient(ctx context.Context, req *connect.Request[api.GetIngredientRequest]) (*connect.Response[api.GetIngredientResponse], error) {
	return c.getIngredient.CallUnary(ctx, req)
}

func (c *catalogServiceClient) ListTags(ctx context.Context, req *connect.Request[api.ListTagsRequest]) (*connect.Response[api.ListTagsResponse], error) {
	return c.listTags.CallUnary(ctx, req)
}

func (c *catalogServiceClient) GetTag(ctx context.Context, req *connect.Request[api.GetTagRequest]) (*connect.Response[api.GetTagResponse], error) {
	return c.getTag.CallUnary(ctx, req)
}
