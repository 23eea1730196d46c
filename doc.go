// Package folio provides the core types and computations for a personal,
// multi-currency investment ledger. It is designed to be local-first and
// auditable: the ledger is a plain JSONL file under the user's control, and
// every report is recomputed from it on demand.
//
// The main building blocks are:
//   - Ledger Management: accounts, security transactions and cash flows kept
//     as an append-only, chronologically sorted record.
//   - Holdings: weighted-average cost basis per (account, ticker) position,
//     with valuation against current market quotes.
//   - Cash Engine: replaying cash flows and trade settlements to produce
//     per-account cash balances, at present or at any past date.
//   - Performance: Newton-Raphson XIRR over dated flows, portfolio and
//     per-account summaries, and asset allocation.
//   - Net Worth History: year-by-year reconstruction from historical year-end
//     snapshots, with interpolation over missing years and a fixed-rate
//     counterfactual baseline.
//
// This package serves as the foundational logic for the `fol` command-line
// tool; the quote, histprice and render subpackages supply market data and
// presentation around it.
package folio
