package payment

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Callback is the decoded gateway completion message. Required fields are
// validated at decode time; any extra fields the gateway sends are retained
// in the field map so signature reconstruction can reference them.
type Callback struct {
	Status           string
	TransactionUUID  string
	TotalAmount      string
	TransactionCode  string
	SignedFieldNames string
	Signature        string

	fields map[string]string
}

var requiredCallbackFields = []string{
	"status",
	"transaction_uuid",
	"total_amount",
	"transaction_code",
	"signed_field_names",
	"signature",
}

// DecodeCallback base64-decodes and parses the gateway's callback payload.
// The value rides through a browser redirect, so both standard and URL-safe
// alphabets are accepted.
func DecodeCallback(encoded string) (*Callback, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		raw, err = base64.URLEncoding.DecodeString(encoded)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload map[string]interface{}
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	fields := make(map[string]string, len(payload))
	for k, v := range payload {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case json.Number:
			fields[k] = val.String()
		default:
			// Nested shapes and non-scalar extras are ignored.
		}
	}

	for _, name := range requiredCallbackFields {
		if fields[name] == "" {
			return nil, fmt.Errorf("%w: missing field %q", ErrDecode, name)
		}
	}

	return &Callback{
		Status:           fields["status"],
		TransactionUUID:  fields["transaction_uuid"],
		TotalAmount:      fields["total_amount"],
		TransactionCode:  fields["transaction_code"],
		SignedFieldNames: fields["signed_field_names"],
		Signature:        fields["signature"],
		fields:           fields,
	}, nil
}

// CanonicalString rebuilds the HMAC input from exactly the fields the gateway
// declared as signed, in the declared order. Using any other field set or
// order breaks verification against legitimate callbacks.
func (c *Callback) CanonicalString() (string, error) {
	names := strings.Split(c.SignedFieldNames, ",")
	pairs := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		v, ok := c.fields[name]
		if !ok {
			return "", fmt.Errorf("signed field %q not present in payload", name)
		}
		pairs = append(pairs, name+"="+v)
	}
	return strings.Join(pairs, ","), nil
}

// Amount parses total_amount, tolerating the gateway's digit grouping
// ("2,260" for 2260).
func (c *Callback) Amount() (float64, error) {
	cleaned := strings.ReplaceAll(c.TotalAmount, ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: unparsable amount %q", ErrAmountMismatch, c.TotalAmount)
	}
	return v, nil
}
