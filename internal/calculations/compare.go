package calculations

// CompareSchemes сравнивает аннуитетный и дифференцированный кредиты
// с одинаковыми суммой, сроком и ставкой
func CompareSchemes(principal, periods int64, annualRatePercent float64) (*ComparisonResult, error) {
	// Рассчитываем оба типа кредитов
	annuity, err := AnnuityPayment(principal, periods, annualRatePercent)
	if err != nil {
		return nil, err
	}

	schedule, err := DifferentiatedSchedule(principal, periods, annualRatePercent)
	if err != nil {
		return nil, err
	}

	annuitySummary := SchemeSummary{
		FirstPayment: annuity.Amount,
		LastPayment:  annuity.Amount,
		TotalPaid:    annuity.Amount * periods,
		Overpayment:  annuity.Overpayment,
	}

	differentiatedSummary := SchemeSummary{
		TotalPaid:   schedule.TotalPaid,
		Overpayment: schedule.Overpayment,
	}
	if len(schedule.Payments) > 0 {
		differentiatedSummary.FirstPayment = schedule.Payments[0]
		differentiatedSummary.LastPayment = schedule.Payments[len(schedule.Payments)-1]
	}

	// Определяем, какой кредит выгоднее
	diff := annuitySummary.TotalPaid - differentiatedSummary.TotalPaid

	var cheaper, recommendation string
	var savings int64

	switch {
	case diff > 0:
		cheaper = "differentiated"
		savings = diff
		recommendation = "Differentiated payments cost less in total, but the first installments are higher than the annuity payment."
	case diff < 0:
		cheaper = "annuity"
		savings = -diff
		recommendation = "Annuity payments cost less in total and stay the same every month."
	default:
		cheaper = "equal"
		recommendation = "Both schemes cost the same in total."
	}

	return &ComparisonResult{
		Principal:      principal,
		Periods:        periods,
		Interest:       annualRatePercent,
		Annuity:        annuitySummary,
		Differentiated: differentiatedSummary,
		Schedule:       schedule,
		CheaperScheme:  cheaper,
		Savings:        savings,
		Recommendation: recommendation,
	}, nil
}
