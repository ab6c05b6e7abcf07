package payment

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeCallback builds an encoded payload the way the gateway delivers it.
func encodeCallback(t *testing.T, payload map[string]interface{}) string {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func callbackPayload() map[string]interface{} {
	return map[string]interface{}{
		"status":             "COMPLETE",
		"transaction_uuid":   "42-1700000000000000000",
		"total_amount":       "2,260",
		"transaction_code":   "000BQNR",
		"signed_field_names": "transaction_code,status,total_amount,transaction_uuid,product_code,signed_field_names",
		"product_code":       "EPAYTEST",
		"signature":          "ignored-here",
	}
}

func TestDecodeCallback(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cb, err := DecodeCallback(encodeCallback(t, callbackPayload()))
		require.NoError(t, err)
		assert.Equal(t, "COMPLETE", cb.Status)
		assert.Equal(t, "42-1700000000000000000", cb.TransactionUUID)
		assert.Equal(t, "2,260", cb.TotalAmount)
		assert.Equal(t, "000BQNR", cb.TransactionCode)
	})

	t.Run("URLSafeAlphabet", func(t *testing.T) {
		raw, err := json.Marshal(callbackPayload())
		require.NoError(t, err)
		cb, err := DecodeCallback(base64.URLEncoding.EncodeToString(raw))
		require.NoError(t, err)
		assert.Equal(t, "COMPLETE", cb.Status)
	})

	t.Run("SurroundingWhitespace", func(t *testing.T) {
		_, err := DecodeCallback("  " + encodeCallback(t, callbackPayload()) + "\n")
		assert.NoError(t, err)
	})

	t.Run("NumericAmountRetained", func(t *testing.T) {
		p := callbackPayload()
		p["total_amount"] = json.Number("2260")
		cb, err := DecodeCallback(encodeCallback(t, p))
		require.NoError(t, err)
		assert.Equal(t, "2260", cb.TotalAmount)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := DecodeCallback("")
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("NotBase64", func(t *testing.T) {
		_, err := DecodeCallback("%%%not base64%%%")
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("NotJSON", func(t *testing.T) {
		_, err := DecodeCallback(base64.StdEncoding.EncodeToString([]byte("plain text")))
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		for _, name := range requiredCallbackFields {
			p := callbackPayload()
			delete(p, name)
			_, err := DecodeCallback(encodeCallback(t, p))
			assert.ErrorIs(t, err, ErrDecode, "without %q", name)
		}
	})
}

func TestCanonicalString(t *testing.T) {
	t.Run("FollowsDeclaredOrder", func(t *testing.T) {
		cb, err := DecodeCallback(encodeCallback(t, callbackPayload()))
		require.NoError(t, err)

		got, err := cb.CanonicalString()
		require.NoError(t, err)
		assert.Equal(t,
			"transaction_code=000BQNR,status=COMPLETE,total_amount=2,260,"+
				"transaction_uuid=42-1700000000000000000,product_code=EPAYTEST,"+
				"signed_field_names=transaction_code,status,total_amount,transaction_uuid,product_code,signed_field_names",
			got)
	})

	t.Run("DeclaredFieldAbsent", func(t *testing.T) {
		p := callbackPayload()
		p["signed_field_names"] = "status,nonexistent_field"
		cb, err := DecodeCallback(encodeCallback(t, p))
		require.NoError(t, err)

		_, err = cb.CanonicalString()
		assert.Error(t, err)
	})
}

func TestCallbackAmount(t *testing.T) {
	cases := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "2260", want: 2260},
		{raw: "2,260", want: 2260},
		{raw: "2,260.5", want: 2260.5},
		{raw: "1,00,000", want: 100000},
		{raw: "abc", wantErr: true},
		{raw: "NaN", wantErr: true},
		{raw: "Inf", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			cb := &Callback{TotalAmount: tc.raw}
			got, err := cb.Amount()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrAmountMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
