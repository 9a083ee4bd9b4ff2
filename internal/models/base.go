package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// StorageEntry is a row of the postgres-backed durable local storage.
type StorageEntry struct {
	Key   string `gorm:"primaryKey;size:191"`
	Value string `gorm:"type:text"`
}

// TableName keeps the table name aligned with the sqlite backend.
func (StorageEntry) TableName() string {
	return "local_storage"
}

// FlexString decodes a JSON string or number into its string form.
// The remote API is not consistent about numeric identifiers.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex string: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// Int returns the numeric value, or 0 when the value is not an integer.
func (f FlexString) Int() int64 {
	n, err := strconv.ParseInt(string(f), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
