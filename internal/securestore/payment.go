package securestore

import "context"

// StorePaymentToken stores a processor-issued payment token.
//
// token must already be an opaque reference issued by the payment
// processor. Never pass a raw card number or CVV: the store cannot tell the
// difference and will persist whatever it is given.
func (s *Store) StorePaymentToken(ctx context.Context, token string) error {
	return s.SetItem(ctx, KeyPaymentToken, token)
}

// GetPaymentToken returns the stored payment token, if any.
func (s *Store) GetPaymentToken(ctx context.Context) (string, bool) {
	return s.GetItem(ctx, KeyPaymentToken)
}
