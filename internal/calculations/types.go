package calculations

// Result результат расчета: один из PaymentResult, PrincipalResult,
// TimeframeResult или ScheduleResult
type Result interface {
	// Kind возвращает тип результата
	Kind() string
	// OverpaymentAmount возвращает переплату (не меньше нуля)
	OverpaymentAmount() int64

	isResult()
}

// PaymentResult рассчитанный аннуитетный платеж
type PaymentResult struct {
	Amount      int64 `json:"amount"`
	Overpayment int64 `json:"overpayment"`
}

// PrincipalResult рассчитанная сумма кредита
type PrincipalResult struct {
	Amount      int64 `json:"amount"`
	Overpayment int64 `json:"overpayment"`
}

// TimeframeResult рассчитанный срок погашения
type TimeframeResult struct {
	Periods     int64 `json:"periods"`
	Years       int64 `json:"years"`
	Months      int64 `json:"months"`
	Overpayment int64 `json:"overpayment"`
}

// ScheduleResult график дифференцированных платежей
type ScheduleResult struct {
	Payments    []int64 `json:"payments"`
	TotalPaid   int64   `json:"total_paid"`
	Overpayment int64   `json:"overpayment"`
}

func (PaymentResult) Kind() string   { return "payment" }
func (PrincipalResult) Kind() string { return "principal" }
func (TimeframeResult) Kind() string { return "timeframe" }
func (ScheduleResult) Kind() string  { return "schedule" }

func (r PaymentResult) OverpaymentAmount() int64   { return r.Overpayment }
func (r PrincipalResult) OverpaymentAmount() int64 { return r.Overpayment }
func (r TimeframeResult) OverpaymentAmount() int64 { return r.Overpayment }
func (r ScheduleResult) OverpaymentAmount() int64  { return r.Overpayment }

func (PaymentResult) isResult()   {}
func (PrincipalResult) isResult() {}
func (TimeframeResult) isResult() {}
func (ScheduleResult) isResult()  {}

// SchemeSummary итоги по одной схеме при сравнении
type SchemeSummary struct {
	FirstPayment int64 `json:"first_payment"`
	LastPayment  int64 `json:"last_payment"`
	TotalPaid    int64 `json:"total_paid"`
	Overpayment  int64 `json:"overpayment"`
}

// ComparisonResult результат сравнения аннуитетной и дифференцированной схем
type ComparisonResult struct {
	Principal      int64          `json:"principal"`
	Periods        int64          `json:"periods"`
	Interest       float64        `json:"interest"`
	Annuity        SchemeSummary  `json:"annuity"`
	Differentiated SchemeSummary  `json:"differentiated"`
	Schedule       ScheduleResult `json:"schedule"`
	CheaperScheme  string         `json:"cheaper_scheme"`
	Savings        int64          `json:"savings"`
	Recommendation string         `json:"recommendation"`
}
