package tradelog

import (
	"slices"
	"testing"
)

func TestLedger_NetQuantity(t *testing.T) {
	ledger := NewLedger()
	long := testLot("IONQ", Long, 100, 30.40, "2025-05-01", "10:06:17")
	long.Exit = &Exit{Quantity: Q(40), Price: USD(31.00), Date: MustParseDate("2025-05-02")}
	ledger.Append(
		long,
		testLot("IONQ", Short, 25, 30.905, "2025-05-03", "15:59:16"),
		testLot("CRWD", Long, 5, 449.80, "2025-05-05", "10:48:57"),
	)

	testCases := []struct {
		symbol string
		want   Quantity
	}{
		{"IONQ", Q(35)}, // 60 open long - 25 open short
		{"CRWD", Q(5)},
		{"MSFT", Q(0)}, // unknown symbol
	}
	for _, tc := range testCases {
		if got := ledger.NetQuantity(tc.symbol); !got.Equal(tc.want) {
			t.Errorf("NetQuantity(%q) = %s, want %s", tc.symbol, got, tc.want)
		}
	}
}

func TestLedger_AppendKeepsEntryOrder(t *testing.T) {
	ledger := NewLedger()
	// appended out of order on purpose
	ledger.Append(
		testLot("IONQ", Long, 10, 30.00, "2025-05-05", "10:00:00"),
		testLot("IONQ", Long, 10, 30.00, "2025-05-02", "15:00:00"),
		testLot("IONQ", Long, 10, 30.00, "2025-05-02", "09:00:00"),
	)

	var got []string
	for r := range ledger.SymbolRows("IONQ") {
		got = append(got, r.EntryDate.String()+" "+r.EntryTime.String())
	}
	want := []string{
		"2025-05-02 09:00:00",
		"2025-05-02 15:00:00",
		"2025-05-05 10:00:00",
	}
	if !slices.Equal(got, want) {
		t.Errorf("entry order = %v, want %v", got, want)
	}
}

func TestLedger_Symbols(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		testLot("IONQ", Long, 10, 30.00, "2025-05-02", "09:00:00"),
		testLot("CRWD", Long, 5, 449.80, "2025-05-05", "10:48:57"),
		testLot("AAPL", Long, 1, 210.00, "2025-05-05", "11:00:00"),
	)

	got := slices.Collect(ledger.Symbols())
	want := []string{"AAPL", "CRWD", "IONQ"}
	if !slices.Equal(got, want) {
		t.Errorf("Symbols() = %v, want %v", got, want)
	}
}

func TestLedger_OpenCandidates(t *testing.T) {
	ledger := NewLedger()
	closed := testLot("IONQ", Long, 60, 28.50, "2025-04-28", "09:46:11")
	closed.Exit = &Exit{Quantity: Q(60), Price: USD(30.00), Date: MustParseDate("2025-04-30")}
	ledger.Append(
		closed,
		testLot("IONQ", Long, 100, 30.40, "2025-05-01", "10:06:17"),
		testLot("IONQ", Short, 25, 30.905, "2025-05-01", "15:59:16"), // wrong side
		testLot("IONQ", Long, 50, 31.00, "2025-05-10", "09:30:00"),   // entered too late
	)

	candidates := ledger.openCandidates("IONQ", Long, MustParseDate("2025-05-05"))
	if len(candidates) != 1 {
		t.Fatalf("openCandidates() returned %d rows, want 1", len(candidates))
	}
	if !candidates[0].EntryQuantity.Equal(Q(100)) {
		t.Errorf("candidate = %s, want the open 100 long", candidates[0])
	}
}

func TestRow_OpenAndAvailable(t *testing.T) {
	row := testLot("IONQ", Long, 100, 30.40, "2025-05-01", "10:06:17")

	if !row.Open() || !row.Available().Equal(Q(100)) {
		t.Errorf("fresh lot: Open() = %v, Available() = %s, want open with 100", row.Open(), row.Available())
	}

	row.Exit = &Exit{Quantity: Q(40)}
	if !row.Open() || !row.Available().Equal(Q(60)) {
		t.Errorf("partial lot: Open() = %v, Available() = %s, want open with 60", row.Open(), row.Available())
	}

	row.Exit.Quantity = Q(100)
	if row.Open() || !row.Available().IsZero() {
		t.Errorf("closed lot: Open() = %v, Available() = %s, want closed with 0", row.Open(), row.Available())
	}
}
