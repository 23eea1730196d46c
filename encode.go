package folio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// record discriminators, one per line kind in the JSONL ledger file.
const (
	recAccount = "account"
	recTx      = "tx"
	recFlow    = "flow"
)

// DecodeLedger decodes a stream of JSONL data into a sorted Ledger. Each
// line is an account declaration, a transaction, or a cash flow, identified
// by its "record" field.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case recAccount:
			var a Account
			if err := json.Unmarshal(lineBytes, &a); err != nil {
				return nil, fmt.Errorf("invalid account record: %w", err)
			}
			ledger.AddAccount(a)
		case recTx:
			var tx Transaction
			if err := json.Unmarshal(lineBytes, &tx); err != nil {
				return nil, fmt.Errorf("invalid transaction record: %w", err)
			}
			ledger.Append(tx)
		case recFlow:
			var f CashFlow
			if err := json.Unmarshal(lineBytes, &f); err != nil {
				return nil, fmt.Errorf("invalid cash flow record: %w", err)
			}
			ledger.AddFlow(f)
		default:
			return nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(lineBytes))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// EncodeLedger reorders the ledger by date and persists it to an io.Writer
// in JSONL format: accounts first, then transactions and cash flows.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()

	for a := range ledger.Accounts() {
		if err := encodeRecord(w, recAccount, a); err != nil {
			return err
		}
	}
	for _, tx := range ledger.Transactions() {
		if err := encodeRecord(w, recTx, tx); err != nil {
			return err
		}
	}
	for _, f := range ledger.CashFlows() {
		if err := encodeRecord(w, recFlow, f); err != nil {
			return err
		}
	}
	return nil
}

func encodeRecord(w io.Writer, kind string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	// splice the discriminator in front of the record's own fields.
	line := append([]byte(`{"record":"`+kind+`",`), data[1:]...)
	if _, err := w.Write(append(line, '\n')); err != nil {
		return err
	}
	return nil
}
