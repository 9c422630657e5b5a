package pricing

import "trips/entity"

// BookingFee is the flat charge applied to every booking.
const BookingFee = 50

type Travellers struct {
	Adults   int
	Children int
	Infants  int
}

type Quote struct {
	PackageSubtotal   float64 `json:"package_subtotal"`
	InsuranceSubtotal float64 `json:"insurance_subtotal"`
	BookingFee        float64 `json:"booking_fee"`
	Total             float64 `json:"total"`
}

// Calculate prices a booking. Infants travel free and are not covered by
// insurance; the insurance plan may be nil when none was selected.
func Calculate(pkg entity.TravelPackage, travellers Travellers, plan *entity.InsurancePlan) Quote {
	quote := Quote{
		PackageSubtotal: float64(travellers.Adults)*pkg.AdultPrice + float64(travellers.Children)*pkg.ChildPrice,
		BookingFee:      BookingFee,
	}

	if plan != nil {
		quote.InsuranceSubtotal = plan.Price * float64(travellers.Adults+travellers.Children)
	}

	quote.Total = quote.PackageSubtotal + quote.InsuranceSubtotal + quote.BookingFee

	return quote
}
