package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/vandev268/fastfood-server/internal/domain/model"
)

// Channel fees in VND. Delivery channels carry a fixed surcharge on top of
// the tax rate; takeaway and dine-in do not.
const DeliveryFee int64 = 15000

// TaxRate is the surcharge applied to every order.
var TaxRate = decimal.RequireFromString("0.05")

// LineItem is a caller-supplied, price-frozen order line. Prices are never
// re-read from the catalog.
type LineItem struct {
	ProductID    *int64
	VariantID    *int64
	ProductName  string
	VariantValue string
	Thumbnail    string
	Price        int64
	Quantity     int64
}

type Amounts struct {
	Total    int64
	Fee      int64
	Discount int64
	Final    int64
}

// CalculateAmounts computes the order money fields. Pure, no side effects.
//
// The tax surcharge is computed on the discount when the coupon is
// percent-based and on the total otherwise. That asymmetry is observed
// business behavior and is kept as-is.
func CalculateAmounts(items []LineItem, coupon *model.Coupon, channel model.OrderChannel) Amounts {
	total := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromInt(it.Price).Mul(decimal.NewFromInt(it.Quantity))
		total = total.Add(line)
	}

	discount := decimal.Zero
	percentCoupon := false
	if coupon != nil {
		switch coupon.DiscountType {
		case model.CouponDiscountPercent:
			percentCoupon = true
			discount = total.Mul(decimal.NewFromInt(coupon.DiscountValue)).Div(decimal.NewFromInt(100))
		case model.CouponDiscountAmount:
			discount = decimal.NewFromInt(coupon.DiscountValue)
		}
	}

	fee := decimal.Zero
	if channel == model.OrderChannelOnline || channel == model.OrderChannelDelivery {
		fee = decimal.NewFromInt(DeliveryFee)
	}
	if percentCoupon {
		fee = fee.Add(TaxRate.Mul(discount))
	} else {
		fee = fee.Add(TaxRate.Mul(total))
	}

	final := total.Add(fee).Sub(discount)

	a := Amounts{
		Total:    total.Round(0).IntPart(),
		Fee:      fee.Round(0).IntPart(),
		Discount: discount.Round(0).IntPart(),
		Final:    final.Round(0).IntPart(),
	}
	if a.Final < 0 {
		a.Final = 0
	}
	return a
}
