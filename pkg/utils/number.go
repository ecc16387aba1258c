package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CalculateCTR calcula a taxa de cliques (clicks/views) em porcentagem
func CalculateCTR(clicks, views int) float64 {
	if views == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(float64(clicks) / float64(views) * 100)
}

// CalculateECPM calcula o custo efetivo por mil visualizações
func CalculateECPM(cost float64, views int) float64 {
	if views == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(cost / float64(views) * 1000)
}
