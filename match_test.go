package tradelog

import (
	"errors"
	"testing"
)

func TestMatch_FIFOAcrossLots(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		testLot("IONQ", Long, 60, 28.50, "2025-04-28", "09:46:11"),
		testLot("IONQ", Long, 100, 30.40, "2025-05-01", "10:06:17"),
	)

	err := ledger.Match([]Trade{testTrade("IONQ", 125, Short, 30.905, "2025-05-02", "15:59:16")})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if ledger.Len() != 2 {
		t.Fatalf("ledger has %d rows, want 2 (no new row for a fully matched short)", ledger.Len())
	}

	var rows []*Row
	for r := range ledger.SymbolRows("IONQ") {
		rows = append(rows, r)
	}

	// oldest lot closes entirely first
	if rows[0].Open() {
		t.Errorf("oldest lot still open, want fully closed")
	}
	if !rows[0].Exit.Quantity.Equal(Q(60)) {
		t.Errorf("oldest lot exit quantity = %s, want 60", rows[0].Exit.Quantity)
	}
	// the remainder partially closes the next lot
	if !rows[1].Exit.Quantity.Equal(Q(65)) {
		t.Errorf("second lot exit quantity = %s, want 65", rows[1].Exit.Quantity)
	}
	if !rows[1].Available().Equal(Q(35)) {
		t.Errorf("second lot available = %s, want 35", rows[1].Available())
	}
	if !ledger.NetQuantity("IONQ").Equal(Q(35)) {
		t.Errorf("net quantity = %s, want 35", ledger.NetQuantity("IONQ"))
	}
}

func TestApply_PartialFillCreatesNoRow(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(testLot("IONQ", Long, 100, 30.40, "2025-05-01", "10:06:17"))

	if err := ledger.Apply(testTrade("IONQ", 40, Short, 31.00, "2025-05-02", "11:00:00")); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if ledger.Len() != 1 {
		t.Fatalf("ledger has %d rows, want 1", ledger.Len())
	}
	for r := range ledger.SymbolRows("IONQ") {
		if !r.Exit.Quantity.Equal(Q(40)) {
			t.Errorf("exit quantity = %s, want 40", r.Exit.Quantity)
		}
		if !r.Open() {
			t.Errorf("lot fully closed, want still open with 60 available")
		}
	}
}

func TestApply_ExitFieldsLastWriteWins(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(testLot("IONQ", Long, 100, 30.40, "2025-05-01", "10:06:17"))

	trades := []Trade{
		testTrade("IONQ", 40, Short, 31.00, "2025-05-02", "11:00:00"),
		testTrade("IONQ", 60, Short, 33.00, "2025-05-03", "14:30:00"),
	}
	if err := ledger.Match(trades); err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	for r := range ledger.SymbolRows("IONQ") {
		if r.Open() {
			t.Fatalf("lot still open after 40+60 exits against 100")
		}
		// quantity accumulates, price/date/time keep only the last fill
		if !r.Exit.Quantity.Equal(Q(100)) {
			t.Errorf("exit quantity = %s, want 100", r.Exit.Quantity)
		}
		if !r.Exit.Price.Equal(USD(33.00)) {
			t.Errorf("exit price = %s, want last fill $33.00, not an average", r.Exit.Price)
		}
		if r.Exit.Date != MustParseDate("2025-05-03") {
			t.Errorf("exit date = %s, want 2025-05-03", r.Exit.Date)
		}
		if r.Exit.Time != MustParseTimeOfDay("14:30:00") {
			t.Errorf("exit time = %s, want 14:30:00", r.Exit.Time)
		}
	}
}

func TestApply_UncoveredShort(t *testing.T) {
	ledger := NewLedger()

	if err := ledger.Apply(testTrade("IONQ", 50, Short, 30.00, "2025-05-02", "11:00:00")); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if ledger.Len() != 1 {
		t.Fatalf("ledger has %d rows, want 1", ledger.Len())
	}
	for r := range ledger.SymbolRows("IONQ") {
		if r.Direction != Short {
			t.Errorf("direction = %s, want SHORT", r.Direction)
		}
		if r.Notes != ShortPositionNote {
			t.Errorf("notes = %q, want %q", r.Notes, ShortPositionNote)
		}
		if r.Exit != nil {
			t.Errorf("exit = %s, want nil for a freshly opened lot", r.Exit.Quantity)
		}
	}
}

func TestApply_CoveredShortLeftoverNotAnnotated(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(testLot("IONQ", Long, 40, 28.50, "2025-05-01", "09:46:11"))

	if err := ledger.Apply(testTrade("IONQ", 100, Short, 30.00, "2025-05-02", "11:00:00")); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	var short *Row
	for r := range ledger.SymbolRows("IONQ") {
		if r.Direction == Short {
			short = r
		}
	}
	if short == nil {
		t.Fatal("no short lot created for the 60 leftover")
	}
	if !short.EntryQuantity.Equal(Q(60)) {
		t.Errorf("leftover quantity = %s, want 60", short.EntryQuantity)
	}
	// the short consumed an opposite lot first, so it is not an uncovered short
	if short.Notes != "" {
		t.Errorf("notes = %q, want empty for a covered short leftover", short.Notes)
	}
}

func TestApply_LaterLotsNotEligible(t *testing.T) {
	// a trade cannot close a lot entered after its own date
	ledger := NewLedger()
	ledger.Append(testLot("IONQ", Long, 100, 30.40, "2025-05-05", "10:06:17"))

	if err := ledger.Apply(testTrade("IONQ", 50, Short, 31.00, "2025-05-02", "11:00:00")); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if ledger.Len() != 2 {
		t.Fatalf("ledger has %d rows, want 2 (the long lot untouched, a new short)", ledger.Len())
	}
	for r := range ledger.SymbolRows("IONQ") {
		switch r.Direction {
		case Long:
			if r.Exit != nil {
				t.Errorf("later long lot has exit %s, want untouched", r.Exit.Quantity)
			}
		case Short:
			if r.Notes != ShortPositionNote {
				t.Errorf("notes = %q, want %q since no eligible lot was consumed", r.Notes, ShortPositionNote)
			}
		}
	}
}

func TestApply_SameDayLotIsEligible(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(testLot("IONQ", Long, 60, 28.50, "2025-05-02", "09:46:11"))

	if err := ledger.Apply(testTrade("IONQ", 60, Short, 30.905, "2025-05-02", "15:59:16")); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if ledger.Len() != 1 {
		t.Fatalf("ledger has %d rows, want 1", ledger.Len())
	}
	if !ledger.NetQuantity("IONQ").IsZero() {
		t.Errorf("net quantity = %s, want 0", ledger.NetQuantity("IONQ"))
	}
}

func TestMatch_UnsortedTrades(t *testing.T) {
	ledger := NewLedger()
	trades := []Trade{
		testTrade("IONQ", 100, Long, 30.40, "2025-05-05", "10:06:17"),
		testTrade("IONQ", 60, Long, 28.50, "2025-05-02", "09:46:11"),
	}

	err := ledger.Match(trades)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Match() error = %v, want ErrInvalidInput for unsorted trades", err)
	}
}

func TestMatch_InconsistentLedger(t *testing.T) {
	ledger := NewLedger()
	corrupt := testLot("IONQ", Long, 100, 30.40, "2025-05-01", "10:06:17")
	corrupt.Exit = &Exit{Quantity: Q(150), Price: USD(31.00), Date: MustParseDate("2025-05-02")}
	ledger.Append(corrupt)

	err := ledger.Match([]Trade{testTrade("IONQ", 10, Short, 31.00, "2025-05-03", "11:00:00")})
	if !errors.Is(err, ErrInconsistentLedger) {
		t.Errorf("Match() error = %v, want ErrInconsistentLedger", err)
	}
}

func TestMatch_QuantityConservation(t *testing.T) {
	ledger := NewLedger()
	trades := []Trade{
		testTrade("IONQ", 60, Long, 28.50, "2025-05-02", "09:46:11"),
		testTrade("IONQ", 125, Short, 30.905, "2025-05-02", "15:59:16"),
		testTrade("IONQ", 100, Long, 30.40, "2025-05-05", "10:06:17"),
		testTrade("IONQ", 20, Short, 31.20, "2025-05-06", "10:00:00"),
	}
	if err := ledger.Match(trades); err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	// net balance equals the signed sum of trade quantities
	want := Q(0)
	for _, tr := range trades {
		if tr.Direction == Short {
			want = want.Sub(tr.Quantity)
		} else {
			want = want.Add(tr.Quantity)
		}
	}
	if got := ledger.NetQuantity("IONQ"); !got.Equal(want) {
		t.Errorf("net quantity = %s, want %s", got, want)
	}
}

func TestMatch_EndToEnd(t *testing.T) {
	executions := []Execution{
		testExec("IONQ", 60, Long, 28.50, "2025-05-02", "09:46:11"),
		testExec("IONQ", 125, Short, 30.905, "2025-05-02", "15:59:16"),
		testExec("CRWD", 5, Long, 449.80, "2025-05-05", "10:48:57"),
		testExec("IONQ", 100, Long, 30.40, "2025-05-05", "10:06:17"),
	}

	trades, err := Consolidate(executions)
	if err != nil {
		t.Fatalf("Consolidate() error = %v", err)
	}
	SortTrades(trades)

	ledger := NewLedger()
	if err := ledger.Match(trades); err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	// chronological matching: the day-2 short closes the day-2 long (60)
	// and opens a 65 short, which the day-5 long then covers, leaving a
	// 35 long open.
	var rows []*Row
	for r := range ledger.SymbolRows("IONQ") {
		rows = append(rows, r)
	}
	if len(rows) != 3 {
		t.Fatalf("IONQ has %d rows, want 3", len(rows))
	}

	if rows[0].Direction != Long || rows[0].Open() || !rows[0].Exit.Quantity.Equal(Q(60)) {
		t.Errorf("rows[0] = %s, want the 60 long fully closed", rows[0])
	}
	if rows[1].Direction != Short || rows[1].Open() || !rows[1].EntryQuantity.Equal(Q(65)) {
		t.Errorf("rows[1] = %s, want the 65 short fully covered", rows[1])
	}
	if rows[1].Notes != "" {
		t.Errorf("rows[1].Notes = %q, want empty: the short consumed the 60 long first", rows[1].Notes)
	}
	if rows[2].Direction != Long || rows[2].Exit != nil || !rows[2].EntryQuantity.Equal(Q(35)) {
		t.Errorf("rows[2] = %s, want a fully open 35 long", rows[2])
	}

	if got := ledger.NetQuantity("IONQ"); !got.Equal(Q(35)) {
		t.Errorf("IONQ net quantity = %s, want 35", got)
	}
	if got := ledger.NetQuantity("CRWD"); !got.Equal(Q(5)) {
		t.Errorf("CRWD net quantity = %s, want 5", got)
	}
}

func TestApply_NonPositiveTrade(t *testing.T) {
	ledger := NewLedger()
	err := ledger.Apply(testTrade("IONQ", 0, Long, 30.00, "2025-05-02", "09:00:00"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Apply() error = %v, want ErrInvalidInput", err)
	}
}
