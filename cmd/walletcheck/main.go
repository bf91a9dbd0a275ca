// walletcheck queries a wallet address against several public Ethereum
// endpoints and prints a balance comparison. It exists to debug balance
// display mismatches without touching the backend.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const apiTimeout = 30 * time.Second

var rpcEndpoints = []struct {
	Name string
	URL  string
}{
	{"BlastAPI", "https://eth-mainnet.public.blastapi.io"},
	{"Cloudflare", "https://cloudflare-eth.com"},
	{"1RPC", "https://1rpc.io/eth"},
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

type rpcResponse struct {
	Result string `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type etherscanResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

type balanceResult struct {
	Source string
	ETH    *big.Float
	Err    error
}

type checker struct {
	client *resty.Client
}

func newChecker() *checker {
	return &checker{client: resty.New().SetTimeout(apiTimeout)}
}

func (c *checker) rpcBalance(url, address string) (*big.Float, error) {
	var out rpcResponse
	resp, err := c.client.R().
		SetBody(rpcRequest{
			JSONRPC: "2.0",
			Method:  "eth_getBalance",
			Params:  []interface{}{address, "latest"},
			ID:      1,
		}).
		SetResult(&out).
		Post(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d", resp.StatusCode())
	}
	if out.Error != nil {
		return nil, fmt.Errorf("rpc error %d: %s", out.Error.Code, out.Error.Message)
	}
	return hexWeiToETH(out.Result)
}

func (c *checker) etherscanBalance(address string) (*big.Float, error) {
	var out etherscanResponse
	resp, err := c.client.R().
		SetQueryParams(map[string]string{
			"module":  "account",
			"action":  "balance",
			"address": address,
			"tag":     "latest",
		}).
		SetResult(&out).
		Get("https://api.etherscan.io/api")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d", resp.StatusCode())
	}
	if out.Status != "1" {
		return nil, fmt.Errorf("etherscan: %s", out.Message)
	}
	wei, ok := new(big.Int).SetString(out.Result, 10)
	if !ok {
		return nil, fmt.Errorf("etherscan: bad balance %q", out.Result)
	}
	return weiToETH(wei), nil
}

func hexWeiToETH(hexWei string) (*big.Float, error) {
	if len(hexWei) < 2 || hexWei[:2] != "0x" {
		return nil, fmt.Errorf("bad hex balance %q", hexWei)
	}
	wei, ok := new(big.Int).SetString(hexWei[2:], 16)
	if !ok {
		return nil, fmt.Errorf("bad hex balance %q", hexWei)
	}
	return weiToETH(wei), nil
}

func weiToETH(wei *big.Int) *big.Float {
	eth := new(big.Float).SetInt(wei)
	return eth.Quo(eth, big.NewFloat(1e18))
}

func (c *checker) checkAll(address string) []balanceResult {
	var results []balanceResult
	for _, ep := range rpcEndpoints {
		eth, err := c.rpcBalance(ep.URL, address)
		results = append(results, balanceResult{Source: ep.Name, ETH: eth, Err: err})
	}
	eth, err := c.etherscanBalance(address)
	results = append(results, balanceResult{Source: "Etherscan", ETH: eth, Err: err})
	return results
}

func main() {
	address := flag.String("address", "", "ethereum address to check")
	flag.Parse()

	if *address == "" {
		fmt.Fprintln(os.Stderr, "usage: walletcheck -address 0x...")
		os.Exit(2)
	}

	fmt.Printf("Balance check for %s\n\n", *address)

	results := newChecker().checkAll(*address)
	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
			fmt.Printf("%-12s FAILED: %v\n", r.Source, r.Err)
			continue
		}
		fmt.Printf("%-12s %.6f ETH\n", r.Source, r.ETH)
	}

	if failures == len(results) {
		fmt.Fprintln(os.Stderr, "\nall sources failed")
		os.Exit(1)
	}
}
