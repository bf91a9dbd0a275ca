package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Balance maps a currency symbol to an amount. It is stored as a JSON
// column so the set of currencies can change without a migration.
type Balance map[string]float64

// DefaultBalance returns the balance every new user starts with.
func DefaultBalance() Balance {
	return Balance{"BTC": 0, "ETH": 0, "LTC": 0}
}

// Value implements the driver.Valuer interface
func (b Balance) Value() (driver.Value, error) {
	if b == nil {
		return "{}", nil
	}
	return json.Marshal(b)
}

// Scan implements the sql.Scanner interface
func (b *Balance) Scan(value interface{}) error {
	if value == nil {
		*b = make(Balance)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal balance value:", value))
	}

	if len(bytes) == 0 {
		*b = make(Balance)
		return nil
	}

	var result map[string]float64
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*b = Balance(result)
	return nil
}
