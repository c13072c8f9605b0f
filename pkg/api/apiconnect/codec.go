// Package apiconnect wires the Foodgram RPC services to Connect handlers and
// clients. It plays the role a protoc-gen-connect-go package would, with
// messages from package api carried as JSON.
package apiconnect

import (
	"net/http"

	"connectrpc.com/connect"
	"github.com/goccy/go-json"
)

// codecName replaces Connect's built-in protojson codec.
const codecName = "json"

// jsonCodec marshals plain Go message structs with goccy/go-json.
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return codecName }

func (jsonCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, message)
}

// Codec returns the codec used by every handler and client in this package.
func Codec() connect.Codec { return jsonCodec{} }

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
}

// procedureMux routes a service's requests to its per-procedure handlers.
type procedureMux map[string]http.Handler

func (m procedureMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := m[r.URL.Path]; ok {
		h.ServeHTTP(w, r)
		return
	}
	http.NotFound(w, r)
}
