package interfaces

// ICommissionPolicy computes the platform fee for a gross amount in a service
// category. Injected as a strategy so the rate table can be swapped and tested
// independently.

type ICommissionPolicy interface {
	PlatformFee(amount float64, category string) float64
}
