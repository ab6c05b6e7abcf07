package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
)

// Sign computes base64(HMAC-SHA256(secret, message)), the gateway's signature
// scheme for both initiation and callback payloads.
func Sign(secret, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares in constant time.
func VerifySignature(secret, message, signature string) bool {
	expected := Sign(secret, message)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// signedFieldNames is the fixed field set this server signs at initiation.
// The gateway echoes its own list back in the callback.
const signedFieldNames = "total_amount,transaction_uuid,product_code"

// generationString builds the canonical HMAC input for initiation:
// comma-separated key=value pairs in the gateway's fixed field order.
func generationString(totalAmount, transactionUUID, productCode string) string {
	var b strings.Builder
	b.WriteString("total_amount=")
	b.WriteString(totalAmount)
	b.WriteString(",transaction_uuid=")
	b.WriteString(transactionUUID)
	b.WriteString(",product_code=")
	b.WriteString(productCode)
	return b.String()
}

// FormatAmount renders a currency amount the way the signature and form
// fields expect: no grouping, no trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
