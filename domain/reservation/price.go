package reservation

const (
	DefaultBasePrice    = 20.0
	BreakfastMultiplier = 1.25
)

func CalculatePrice(clientCount int, time int, hasBreakfast bool, basePrice float64) float64 {
	multiplier := 1.0
	if hasBreakfast {
		multiplier = BreakfastMultiplier
	}
	return float64(clientCount) * float64(time) * basePrice * multiplier
}
