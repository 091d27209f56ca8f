// Package apiconnect wires the api messages to Connect handlers and clients.
//
// Procedures follow the Connect convention
// "/totalmanager.v1.<Service>/<Method>" and carry JSON bodies encoded by
// Codec, so any Connect client (or curl with Content-Type application/json)
// can call them.
package apiconnect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
)

// Codec encodes messages as JSON. It replaces Connect's protobuf-JSON codec
// under the same "json" name.
type Codec struct{}

var _ connect.Codec = Codec{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal implements connect.Codec. Unknown fields are rejected so that a
// misspelled optional field is not silently ignored.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(msg); err != nil {
		return fmt.Errorf("invalid JSON message: %w", err)
	}
	return nil
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
}

// route maps each procedure path of a service to its handler, mirroring the
// switch generated Connect code uses.
type route map[string]*connect.Handler

func (r route) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h, ok := r[req.URL.Path]; ok {
		h.ServeHTTP(w, req)
		return
	}
	http.NotFound(w, req)
}
