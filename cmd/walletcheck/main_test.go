package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexWeiToETH(t *testing.T) {
	// 1 ETH = 0xde0b6b3a7640000 wei
	eth, err := hexWeiToETH("0xde0b6b3a7640000")
	assert.NoError(t, err)
	assert.Equal(t, "1", eth.Text('f', 0))

	eth, err = hexWeiToETH("0x0")
	assert.NoError(t, err)
	assert.Equal(t, "0", eth.Text('f', 0))

	_, err = hexWeiToETH("nothex")
	assert.Error(t, err)

	_, err = hexWeiToETH("0xzz")
	assert.Error(t, err)
}

func TestRPCBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"result":"0x1bc16d674ec80000"}`)
	}))
	defer srv.Close()

	eth, err := newChecker().rpcBalance(srv.URL, "0xabc")
	assert.NoError(t, err)
	assert.Equal(t, "2", eth.Text('f', 0)) // 2 ETH
}

func TestRPCBalanceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"invalid address"}}`)
	}))
	defer srv.Close()

	_, err := newChecker().rpcBalance(srv.URL, "bogus")
	assert.ErrorContains(t, err, "invalid address")
}
