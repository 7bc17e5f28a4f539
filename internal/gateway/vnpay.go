package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const vnpayDateLayout = "20060102150405"

// VNPayClient builds signed redirect URLs. No HTTP round-trip is needed;
// the signature is an HMAC-SHA512 over the sorted, URL-encoded params.
type VNPayClient struct {
	tmnCode    string
	hashSecret string
	baseURL    string
	returnURL  string
}

func NewVNPayClient(tmnCode, hashSecret, baseURL, returnURL string) *VNPayClient {
	return &VNPayClient{
		tmnCode:    tmnCode,
		hashSecret: hashSecret,
		baseURL:    baseURL,
		returnURL:  returnURL,
	}
}

func (c *VNPayClient) GeneratePaymentURL(ctx context.Context, amount int64, orderInfo string) (string, error) {
	now := time.Now()
	expire := now.Add(24 * time.Hour)

	params := map[string]string{
		"vnp_Version": "2.1.0",
		"vnp_Command": "pay",
		"vnp_TmnCode": c.tmnCode,
		// VNPay expects the amount multiplied by 100.
		"vnp_Amount":     strconv.FormatInt(amount*100, 10),
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     fmt.Sprintf("order-%s", uuid.NewString()),
		"vnp_OrderInfo":  orderInfo,
		"vnp_OrderType":  "other",
		"vnp_ReturnUrl":  c.returnURL,
		"vnp_IpAddr":     "127.0.0.1",
		"vnp_Locale":     "vn",
		"vnp_CreateDate": now.Format(vnpayDateLayout),
		"vnp_ExpireDate": expire.Format(vnpayDateLayout),
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+url.QueryEscape(params[k]))
	}
	query := strings.Join(pairs, "&")

	mac := hmac.New(sha512.New, []byte(c.hashSecret))
	mac.Write([]byte(query))
	secureHash := hex.EncodeToString(mac.Sum(nil))

	return c.baseURL + "?" + query + "&vnp_SecureHash=" + secureHash, nil
}
