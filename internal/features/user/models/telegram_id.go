package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedTelegramID is returned while decoding a tg_id that is not an integer.
var ErrMalformedTelegramID = errors.New("invalid input syntax for type bigint")

// TelegramID accepts both 123 and "123" on the wire.
type TelegramID int64

func (id *TelegramID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedTelegramID, string(data))
	}
	*id = TelegramID(n)
	return nil
}

// Ptr returns nil for an absent id.
func (id *TelegramID) Ptr() *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}
