package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/foodgram/pkg/api"
)

// UserServiceName is the fully-qualified name of the UserService service.
const UserServiceName = "foodgram.v1.UserService"

const (
	UserServiceListUsersProcedure   = "/foodgram.v1.UserService/ListUsers"
	UserServiceGetUserProcedure     = "/foodgram.v1.UserService/GetUser"
	UserServiceSetPasswordProcedure = "/foodgram.v1.UserService/SetPassword"
)

// UserServiceHandler is implemented by the user directory service.
type UserServiceHandler interface {
	ListUsers(context.Context, *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error)
	GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error)
	SetPassword(context.Context, *connect.Request[api.SetPasswordRequest]) (*connect.Response[api.SetPasswordResponse], error)
}

// NewUserServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + UserServiceName + "/", procedureMux{
		UserServiceListUsersProcedure:   connect.NewUnaryHandler(UserServiceListUsersProcedure, svc.ListUsers, opts...),
		UserServiceGetUserProcedure:     connect.NewUnaryHandler(UserServiceGetUserProcedure, svc.GetUser, opts...),
		UserServiceSetPasswordProcedure: connect.NewUnaryHandler(UserServiceSetPasswordProcedure, svc.SetPassword, opts...),
	}
}

// UserServiceClient is a client for the foodgram.v1.UserService service.
type UserServiceClient interface {
	ListUsers(context.Context, *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error)
	GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error)
	SetPassword(context.Context, *connect.Request[api.SetPasswordRequest]) (*connect.Response[api.SetPasswordResponse], error)
}

// NewUserServiceClient constructs a client for the foodgram.v1.UserService service.
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UserServiceClient {
	opts = clientOptions(opts)
	return &userServiceClient{
		listUsers:   connect.NewClient[api.ListUsersRequest, api.ListUsersResponse](httpClient, baseURL+UserServiceListUsersProcedure, opts...),
		getUser:     connect.NewClient[api.GetUserRequest, api.GetUserResponse](httpClient, baseURL+UserServiceGetUserProcedure, opts...),
		setPassword: connect.NewClient[api.SetPasswordRequest, api.SetPasswordResponse](httpClient, baseURL+UserServiceSetPasswordProcedure, opts...),
	}
}

type userServiceClient struct {
	listUsers   *connect.Client[api.ListUsersRequest, api.ListUsersResponse]
	getUser     *connect.Client[api.GetUserRequest, api.GetUserResponse]
	setPassword *connect.Client[api.SetPasswordRequest, api.SetPasswordResponse]
}

func (c *userServiceClient) ListUsers(ctx context.Context, req *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error) {
	return c.listUsers.CallUnary(ctx, req)
}

func (c *userServiceClient) GetUser(ctx context.Context, req *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error) {
	return c.getUser.CallUnary(ctx, req)
}

func (c *userServiceClient) SetPassword(ctx context.Context, req *connect.Request[api.SetPasswordRequest]) (*connect.Response[api.SetPasswordResponse], error) {
	return c.setPassword.CallUnary(ctx, req)
}
