// payment.go - Stripe payment-intent client

package payment

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Init sets the Stripe API key. Call once at startup.
func Init(apiKey string) {
	stripe.Key = apiKey
}

// CreateIntent creates a payment intent for the given amount in cents and
// returns its client secret. Declared as a variable so tests can stub out
// the network call.
var CreateIntent = func(amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
