package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/foodgram/pkg/api"
)

// SubscriptionServiceName is the fully-qualified name of the SubscriptionService service.
const SubscriptionServiceName = "foodgram.v1.SubscriptionService"

const (
	SubscriptionServiceSubscribeProcedure         = "/foodgram.v1.SubscriptionService/Subscribe"
	SubscriptionServiceUnsubscribeProcedure       = "/foodgram.v1.SubscriptionService/Unsubscribe"
	SubscriptionServiceListSubscriptionsProcedure = "/foodgram.v1.SubscriptionService/ListSubscriptions"
)

// SubscriptionServiceHandler is implemented by the author subscription service.
type SubscriptionServiceHandler interface {
	Subscribe(context.Context, *connect.Request[api.SubscribeRequest]) (*connect.Response[api.SubscribeResponse], error)
	Unsubscribe(context.Context, *connect.Request[api.UnsubscribeRequest]) (*connect.Response[api.UnsubscribeResponse], error)
	ListSubscriptions(context.Context, *connect.Request[api.ListSubscriptionsRequest]) (*connect.Response[api.ListSubscriptionsResponse], error)
}

// NewSubscriptionServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSubscriptionServiceHandler(svc SubscriptionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + SubscriptionServiceName + "/", procedureMux{
		SubscriptionServiceSubscribeProcedure:         connect.NewUnaryHandler(SubscriptionServiceSubscribeProcedure, svc.Subscribe, opts...),
		SubscriptionServiceUnsubscribeProcedure:       connect.NewUnaryHandler(SubscriptionServiceUnsubscribeProcedure, svc.Unsubscribe, opts...),
		SubscriptionServiceListSubscriptionsProcedure: connect.NewUnaryHandler(SubscriptionServiceListSubscriptionsProcedure, svc.ListSubscriptions, opts...),
	}
}

// SubscriptionServiceClient is a client for the foodgram.v1.SubscriptionService service.
type SubscriptionServiceClient interface {
	Subscribe(context.Context, *connect.Request[api.SubscribeRequest]) (*connect.Response[api.SubscribeResponse], error)
	Unsubscribe(context.Context, *connect.Request[api.UnsubscribeRequest]) (*connect.Response[api.UnsubscribeResponse], error)
	ListSubscriptions(context.Context, *connect.Request[api.ListSubscriptionsRequest]) (*connect.Response[api.ListSubscriptionsResponse], error)
}

// NewSubscriptionServiceClient constructs a client for the foodgram.v1.SubscriptionService service.
func NewSubscriptionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SubscriptionServiceClient {
	opts = clientOptions(opts)
	return &subscriptionServiceClient{
		subscribe:         connect.NewClient[api.SubscribeRequest, api.SubscribeResponse](httpClient, baseURL+SubscriptionServiceSubscribeProcedure, opts...),
		unsubscribe:       connect.NewClient[api.UnsubscribeRequest, api.UnsubscribeResponse](httpClient, baseURL+SubscriptionServiceUnsubscribeProcedure, opts...),
		listSubscriptions: connect.NewClient[api.ListSubscriptionsRequest, api.ListSubscriptionsResponse](httpClient, baseURL+SubscriptionServiceListSubscriptionsProcedure, opts...),
	}
}

type subscriptionServiceClient struct {
	subscribe         *connect.Client[api.SubscribeRequest, api.SubscribeResponse]
	unsubscribe       *connect.Client[api.UnsubscribeRequest, api.UnsubscribeResponse]
	listSubscriptions *connect.Client[api.ListSubscriptionsRequest, api.ListSubscriptionsResponse]
}

func (c *subscriptionServiceClient) Subscribe(ctx context.Context, req *connect.Request[api.SubscribeRequest]) (*connect.Response[api.SubscribeResponse], error) {
	return c.subscribe.CallUnary(ctx, req)
}

func (c *subscriptionServiceClient) Unsubscribe(ctx context.Context, req *connect.Request[api.UnsubscribeRequest]) (*connect.Response[api.UnsubscribeResponse], error) {
	return c.unsubscribe.CallUnary(ctx, req)
}

func (c *subscriptionServiceClient) ListSubscriptions(ctx context.Context, req *connect.Request[api.ListSubscriptionsRequest]) (*connect.Response[api.ListSubscriptionsResponse], error) {
	return c.listSubscriptions.CallUnary(ctx, req)
}
