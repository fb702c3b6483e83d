package services

import "errors"

// ErrInvalidStay is returned when a stay spans zero or negative nights.
var ErrInvalidStay = errors.New("stay must span at least one night")

// StayQuote is the price breakdown for a stay.
type StayQuote struct {
	CabinPrice  float64
	ExtrasPrice float64
	TotalPrice  float64
}

// QuoteStay prices a stay: the cabin portion is nights times the discounted
// nightly rate, extras cover breakfast for every guest on every night.
func QuoteStay(nights int, regularPrice, discount float64, numGuests int, hasBreakfast bool, breakfastPrice float64) (StayQuote, error) {
	if nights <= 0 {
		return StayQuote{}, ErrInvalidStay
	}

	quote := StayQuote{
		CabinPrice: float64(nights) * (regularPrice - discount),
	}
	if hasBreakfast {
		quote.ExtrasPrice = float64(nights) * breakfastPrice * float64(numGuests)
	}
	quote.TotalPrice = quote.CabinPrice + quote.ExtrasPrice
	return quote, nil
}
