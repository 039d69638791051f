package teamFormation

// CalculateBalanceScore mede o quão equilibrado é um conjunto de membros.
//
// Para cada dimensão calcula o spread (max - min) entre os membros,
// normaliza contra MaxSkillScore, tira a média das seis dimensões e
// inverte: quanto menor a dispersão, maior a nota.
//
// Um time com todos os membros idênticos dá 100; um time com alguém
// em 0 e alguém em 100 em todas as dimensões dá 0.
//
// Menos de 2 membros não tem spread mensurável e indica bug na
// estratégia que montou o time, então falha com ErrNotEnoughMembers
// ao invés de devolver 100 silenciosamente.
func CalculateBalanceScore(members []SkillVector) (float64, error) {
	if len(members) < 2 {
		return 0, ErrNotEnoughMembers
	}

	var totalNormalizedSpread float64
	for d := 0; d < NumDimensions; d++ {
		minValue := members[0].Values()[d]
		maxValue := minValue
		for _, member := range members[1:] {
			value := member.Values()[d]
			if value < minValue {
				minValue = value
			}
			if value > maxValue {
				maxValue = value
			}
		}
		totalNormalizedSpread += (maxValue - minValue) / MaxSkillScore
	}

	return 100 - 100*(totalNormalizedSpread/NumDimensions), nil
}
