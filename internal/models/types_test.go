package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalanceValue(t *testing.T) {
	b := Balance{"BTC": 0.5, "ETH": 2}
	v, err := b.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"BTC":0.5,"ETH":2}`, string(v.([]byte)))
}

func TestBalanceValueNil(t *testing.T) {
	var b Balance
	v, err := b.Value()
	assert.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestBalanceScan(t *testing.T) {
	var b Balance
	err := b.Scan([]byte(`{"BTC":1,"LTC":0}`))
	assert.NoError(t, err)
	assert.Equal(t, Balance{"BTC": 1, "LTC": 0}, b)

	// string input (sqlite returns TEXT)
	err = b.Scan(`{"ETH":3.25}`)
	assert.NoError(t, err)
	assert.Equal(t, Balance{"ETH": 3.25}, b)
}

func TestBalanceScanNilAndEmpty(t *testing.T) {
	var b Balance
	assert.NoError(t, b.Scan(nil))
	assert.NotNil(t, b)
	assert.Len(t, b, 0)

	assert.NoError(t, b.Scan([]byte{}))
	assert.Len(t, b, 0)
}

func TestBalanceScanInvalid(t *testing.T) {
	var b Balance
	assert.Error(t, b.Scan(42))
	assert.Error(t, b.Scan([]byte(`not json`)))
}

func TestDefaultBalance(t *testing.T) {
	b := DefaultBalance()
	assert.Equal(t, Balance{"BTC": 0, "ETH": 0, "LTC": 0}, b)
}
