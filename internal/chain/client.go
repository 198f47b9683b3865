package chain

import (
	"context"
	"math/big"
	"strings"
	"time"

	"buyback/conf"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

// 链上只读客户端。只发eth_call，不签名不发交易，
// 交易（approve/deposit/redeem）由用户钱包自己提交。

const erc20ABI = `[
  {"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"},
  {"constant":true,"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"type":"function"}
]`

const erc4626ABI = `[
  {"constant":true,"inputs":[{"name":"assets","type":"uint256"}],"name":"convertToShares","outputs":[{"name":"","type":"uint256"}],"type":"function"},
  {"constant":true,"inputs":[{"name":"shares","type":"uint256"}],"name":"convertToAssets","outputs":[{"name":"","type":"uint256"}],"type":"function"},
  {"constant":true,"inputs":[],"name":"totalAssets","outputs":[{"name":"","type":"uint256"}],"type":"function"}
]`

var (
	erc20Abi   abi.ABI
	erc4626Abi abi.ABI
)

func init() {
	var err error
	erc20Abi, err = abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		panic(err)
	}
	erc4626Abi, err = abi.JSON(strings.NewReader(erc4626ABI))
	if err != nil {
		panic(err)
	}
}

type Client struct {
	ec      *ethclient.Client
	timeout time.Duration
}

func NewClient(cfg conf.ChainConfig) (*Client, error) {
	ec, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, errors.Wrap(err, "dial chain rpc")
	}
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{ec: ec, timeout: timeout}, nil
}

func (c *Client) Close() {
	c.ec.Close()
}

func (c *Client) call(ctx context.Context, contractAbi abi.ABI, contract common.Address, method string, args ...interface{}) ([]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, err := contractAbi.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "pack %s", method)
	}
	raw, err := c.ec.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "call %s on %s", method, contract.Hex())
	}
	out, err := contractAbi.Unpack(method, raw)
	if err != nil {
		return nil, errors.Wrapf(err, "unpack %s", method)
	}
	return out, nil
}

func asBigInt(out []interface{}) (*big.Int, error) {
	if len(out) == 0 {
		return nil, errors.New("empty call result")
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.Errorf("unexpected call result type %T", out[0])
	}
	return v, nil
}

// BalanceOf erc20余额，按token自己的decimals定点
func (c *Client) BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	out, err := c.call(ctx, erc20Abi, token, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	return asBigInt(out)
}

// Allowance erc20授权额度
func (c *Client) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	out, err := c.call(ctx, erc20Abi, token, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	return asBigInt(out)
}

// ConvertToShares 4626金库：assets换多少share
func (c *Client) ConvertToShares(ctx context.Context, vault common.Address, assets *big.Int) (*big.Int, error) {
	out, err := c.call(ctx, erc4626Abi, vault, "convertToShares", assets)
	if err != nil {
		return nil, err
	}
	return asBigInt(out)
}

// ConvertToAssets 4626金库：share换多少assets
func (c *Client) ConvertToAssets(ctx context.Context, vault common.Address, shares *big.Int) (*big.Int, error) {
	out, err := c.call(ctx, erc4626Abi, vault, "convertToAssets", shares)
	if err != nil {
		return nil, err
	}
	return asBigInt(out)
}

// TotalAssets 金库底层资产总量，用于刷新TVL
func (c *Client) TotalAssets(ctx context.Context, vault common.Address) (*big.Int, error) {
	out, err := c.call(ctx, erc4626Abi, vault, "totalAssets")
	if err != nil {
		return nil, err
	}
	return asBigInt(out)
}
