package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringSlice is stored as a JSON array in a CLOB column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		// nil 슬라이스는 빈 JSON 배열 "[]"로 저장
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	bytesToParse, err := columnBytes("StringSlice", value)
	if err != nil {
		return err
	}
	if bytesToParse == nil {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// Audience is the target audience JSON document.
type Audience struct {
	Programme []string `json:"programme"`
	Branch    []string `json:"branch"`
	Section   []string `json:"section"`
	Group     []string `json:"group"`
}

// Value implements the driver.Valuer interface
func (a Audience) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (a *Audience) Scan(value interface{}) error {
	bytesToParse, err := columnBytes("Audience", value)
	if err != nil {
		return err
	}
	if bytesToParse == nil {
		*a = Audience{}
		return nil
	}
	return json.Unmarshal(bytesToParse, a)
}

// columnBytes normalizes a CLOB value. It returns nil for NULL, empty text or "null".
func columnBytes(typeName string, value interface{}) ([]byte, error) {
	if value == nil {
		return nil, nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return nil, errors.New(typeName + " Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(b) == 0 || string(b) == "null" {
		return nil, nil
	}
	return b, nil
}
