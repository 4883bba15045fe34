package validators

import "strings"

// IsCNPJValid valida o dígito verificador de um CNPJ. Pontuação
// (pontos, barra, hífen) é ignorada. String vazia não é válida aqui;
// o chamador decide se o campo é opcional.
func IsCNPJValid(cnpj string) bool {
	digits := make([]int, 0, 14)
	for _, r := range cnpj {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case strings.ContainsRune(".-/ ", r):
			// separadores aceitos
		default:
			return false
		}
	}

	if len(digits) != 14 {
		return false
	}

	allEqual := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	if digits[12] != checkDigit(digits[:12]) {
		return false
	}
	return digits[13] == checkDigit(digits[:13])
}

func checkDigit(digits []int) int {
	weight := 2
	sum := 0
	for i := len(digits) - 1; i >= 0; i-- {
		sum += digits[i] * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}

	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
