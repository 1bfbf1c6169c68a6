// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// client connection to a node's JSON-RPC API
//
// one Client wraps one node endpoint; the per chain call groups hang
// off it.  Answers that can never change, such as asset descriptions
// and accepted statuses, are memoised
package rpccalls

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/firnlabs/avalanche/fault"
)

// request pacing and transport limits
const (
	defaultTimeout   = 15 * time.Second
	defaultRateLimit = rate.Limit(50)
	defaultRateBurst = 50
	memoExpiry       = 10 * time.Minute
	memoSweep        = 15 * time.Minute
)

// API paths on every node
const (
	infoPath   = "/ext/info"
	xChainPath = "/ext/bc/X"
	pChainPath = "/ext/bc/P"
)

// Client - a connection to one node endpoint
type Client struct {
	endpoint string
	conn     *http.Client
	limiter  *rate.Limiter
	memo     *cache.Cache
	log      *logger.L
	nextId   uint64
}

// NewClient - create a client for a node's base URL
//
// the logger may be nil for callers that have not initialised logging
func NewClient(endpoint string, log *logger.L) *Client {
	return &Client{
		endpoint: endpoint,
		conn: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(defaultRateLimit, defaultRateBurst),
		memo:    cache.New(memoExpiry, memoSweep),
		log:     log,
	}
}

func (c *Client) debugf(format string, arguments ...interface{}) {
	if nil != c.log {
		c.log.Debugf(format, arguments...)
	}
}

func (c *Client) errorf(format string, arguments ...interface{}) {
	if nil != c.log {
		c.log.Errorf(format, arguments...)
	}
}

// JSON-RPC 2.0 envelopes
type rpcRequest struct {
	JsonRpc string      `json:"jsonrpc"`
	Id      uint64      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JsonRpc string          `json:"jsonrpc"`
	Id      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// call - one JSON-RPC request and its decoded result
func (c *Client) call(ctx context.Context, path string, method string, params interface{}, result interface{}) error {
	err := c.limiter.Wait(ctx)
	if nil != err {
		return err
	}

	request := rpcRequest{
		JsonRpc: "2.0",
		Id:      atomic.AddUint64(&c.nextId, 1),
		Method:  method,
		Params:  params,
	}
	body, err := json.Marshal(request)
	if nil != err {
		return fault.ErrRpcRequestFail
	}

	c.debugf("rpc: → %s %s", method, body)

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if nil != err {
		return fault.ErrRpcRequestFail
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	httpResponse, err := c.conn.Do(httpRequest)
	if nil != err {
		c.errorf("rpc: %s transport error: %s", method, err)
		return fault.ErrRpcRequestFail
	}
	defer httpResponse.Body.Close()

	payload, err := io.ReadAll(httpResponse.Body)
	if nil != err {
		return fault.ErrRpcResponseFail
	}

	response := rpcResponse{}
	err = json.Unmarshal(payload, &response)
	if nil != err {
		c.errorf("rpc: %s bad response: %q", method, payload)
		return fault.ErrRpcResponseFail
	}
	if nil != response.Error {
		c.errorf("rpc: %s error %d: %s", method, response.Error.Code, response.Error.Message)
		return fault.ErrRpcRequestFail
	}
	if nil == result {
		return nil
	}
	err = json.Unmarshal(response.Result, result)
	if nil != err {
		return fault.ErrRpcResponseFail
	}
	c.debugf("rpc: ← %s %s", method, response.Result)
	return nil
}
