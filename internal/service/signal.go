package service

// Веса источников доказательств. Фиксированные, сумма 1.0.
const (
	aiWeight        = 0.4
	weatherWeight   = 0.3
	duplicateWeight = 0.3
)

// Signal - результат опроса одного источника доказательств.
// Недоступный источник даёт отсутствующий сигнал, а не нулевую уверенность.
type Signal struct {
	Score   float64
	Present bool
}

func PresentSignal(score float64) Signal {
	return Signal{Score: score, Present: true}
}

func AbsentSignal() Signal {
	return Signal{}
}

// WeightedSignal - сигнал вместе с его весом в итоговой оценке.
type WeightedSignal struct {
	Signal Signal
	Weight float64
}

// WeightedSum считает итоговую оценку по сигналам.
// Отсутствующий сигнал вносит 0, веса остальных не перенормируются.
func WeightedSum(signals []WeightedSignal) float64 {
	total := 0.0
	for _, ws := range signals {
		if !ws.Signal.Present {
			continue
		}
		total += ws.Signal.Score * ws.Weight
	}
	return total
}
