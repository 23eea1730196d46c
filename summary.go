package folio

// PortfolioSummary is the headline view of the whole portfolio, in TWD.
type PortfolioSummary struct {
	NetInvested          float64 `json:"netInvested"`
	TotalValue           float64 `json:"totalValue"`
	TotalPL              float64 `json:"totalPL"`
	TotalPLPercent       Percent `json:"totalPLPercent"`
	CashBalance          float64 `json:"cashBalance"`
	AnnualizedReturn     Percent `json:"annualizedReturn"`
	AccumulatedDividends float64 `json:"accumulatedDividends"`
	// AvgExchangeRate is the deposit-weighted USD/TWD rate actually paid.
	AvgExchangeRate float64 `json:"avgExchangeRate"`
}

// Summarize folds the whole ledger into the headline figures. The
// portfolio-level annualized return runs the same solver as positions and
// accounts, over the external TWD flows plus a terminal flow worth the
// portfolio today.
func Summarize(l *Ledger, q *Quotes) PortfolioSummary {
	s := PortfolioSummary{TotalValue: liveTotalTWD(l, q)}

	var flows []Flow
	var rateWeight, rateBase float64
	for _, f := range l.CashFlows() {
		switch f.Type {
		case FlowDeposit:
			twd := flowTWD(l, q, f)
			s.NetInvested += twd
			flows = append(flows, Flow{Amount: -twd, Date: f.Date})
			// only deposits carry a rate actually paid; rates recorded on
			// withdrawals or transfers describe money leaving.
			if f.ExchangeRate != nil && !f.ExchangeRate.IsZero() && isUSDAccount(l, f.AccountID) {
				amount := f.Amount.InexactFloat64()
				rateWeight += amount * f.ExchangeRate.InexactFloat64()
				rateBase += amount
			}
		case FlowWithdraw:
			twd := flowTWD(l, q, f)
			s.NetInvested -= twd
			flows = append(flows, Flow{Amount: twd, Date: f.Date})
		}
	}

	for _, tx := range l.Transactions() {
		switch tx.Type {
		case TxTransferIn:
			twd := tx.Cost().InexactFloat64() * q.RateFor(tx.Market)
			s.NetInvested += twd
			flows = append(flows, Flow{Amount: -twd, Date: tx.Date})
		case TxTransferOut:
			twd := tx.Proceeds().InexactFloat64() * q.RateFor(tx.Market)
			s.NetInvested -= twd
			flows = append(flows, Flow{Amount: twd, Date: tx.Date})
		case TxCashDividend:
			s.AccumulatedDividends += tx.Proceeds().InexactFloat64() * q.RateFor(tx.Market)
		}
	}

	for accountID, balance := range CashBalances(l) {
		currency := CurrencyTWD
		if a := l.Account(accountID); a != nil {
			currency = a.Currency
		}
		s.CashBalance += balance.InexactFloat64() * q.RateForCurrency(currency)
	}

	s.TotalPL = s.TotalValue - s.NetInvested
	if s.NetInvested > 0 {
		s.TotalPLPercent = Percent(100 * s.TotalPL / s.NetInvested)
	}
	if rateBase > 0 {
		s.AvgExchangeRate = rateWeight / rateBase
	}

	flows = append(flows, Flow{Amount: s.TotalValue, Date: Today()})
	s.AnnualizedReturn = Percent(100 * Xirr(flows))
	return s
}

func isUSDAccount(l *Ledger, accountID string) bool {
	a := l.Account(accountID)
	return a != nil && a.Currency == CurrencyUSD
}
