package gateway_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandev268/fastfood-server/internal/gateway"
)

func TestGeneratePaymentURL_ParamsAndSignature(t *testing.T) {
	c := gateway.NewVNPayClient("TMN01", "secret", "https://pay.example/vpcpay", "https://shop.example/return")

	raw, err := c.GeneratePaymentURL(context.Background(), 136500, "Thanh toan don hang #42")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()

	assert.Equal(t, "2.1.0", q.Get("vnp_Version"))
	assert.Equal(t, "TMN01", q.Get("vnp_TmnCode"))
	assert.Equal(t, "13650000", q.Get("vnp_Amount"))
	assert.Equal(t, "VND", q.Get("vnp_CurrCode"))
	assert.Equal(t, "Thanh toan don hang #42", q.Get("vnp_OrderInfo"))
	assert.True(t, strings.HasPrefix(q.Get("vnp_TxnRef"), "order-"))

	// Recompute the HMAC over the sorted, encoded params to verify the
	// signature covers exactly what was sent.
	sig := q.Get("vnp_SecureHash")
	q.Del("vnp_SecureHash")

	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+url.QueryEscape(q.Get(k)))
	}
	mac := hmac.New(sha512.New, []byte("secret"))
	mac.Write([]byte(strings.Join(pairs, "&")))

	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), sig)
}

func TestGeneratePaymentURL_UniqueTxnRef(t *testing.T) {
	c := gateway.NewVNPayClient("TMN01", "secret", "https://pay.example/vpcpay", "https://shop.example/return")

	first, err := c.GeneratePaymentURL(context.Background(), 1000, "order #1")
	require.NoError(t, err)
	second, err := c.GeneratePaymentURL(context.Background(), 1000, "order #1")
	require.NoError(t, err)

	fq, _ := url.Parse(first)
	sq, _ := url.Parse(second)
	assert.NotEqual(t, fq.Query().Get("vnp_TxnRef"), sq.Query().Get("vnp_TxnRef"))
}
