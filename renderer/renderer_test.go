package renderer

import (
	"strings"
	"testing"

	"github.com/mjacinto/tradelog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func testLedger(t *testing.T) *tradelog.Ledger {
	t.Helper()
	ledger := tradelog.NewLedger()
	ledger.SetName("master")

	trades := []tradelog.Trade{
		{Symbol: "IONQ", Date: tradelog.MustParseDate("2025-05-02"), Time: tradelog.MustParseTimeOfDay("09:46:11"),
			Quantity: tradelog.Q(60), Price: tradelog.USD(28.50), Direction: tradelog.Long},
		{Symbol: "IONQ", Date: tradelog.MustParseDate("2025-05-02"), Time: tradelog.MustParseTimeOfDay("15:59:16"),
			Quantity: tradelog.Q(25), Price: tradelog.USD(30.905), Direction: tradelog.Short},
		{Symbol: "CRWD", Date: tradelog.MustParseDate("2025-05-05"), Time: tradelog.MustParseTimeOfDay("10:48:57"),
			Quantity: tradelog.Q(5), Price: tradelog.USD(449.80), Direction: tradelog.Long},
	}
	if err := ledger.Match(trades); err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	return ledger
}

// headings parses rendered markdown and returns its heading texts.
func headings(t *testing.T, content string) []string {
	t.Helper()

	source := []byte(content)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var found []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var sb strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				sb.Write(line.Value(source))
			}
			found = append(found, sb.String())
		}
		return ast.WalkContinue, nil
	})
	return found
}

func TestPositionsMarkdown(t *testing.T) {
	ledger := testLedger(t)
	report := ledger.NewPositionsReport()
	got := PositionsMarkdown(NewPositions(ledger.Name(), report))

	hs := headings(t, got)
	if len(hs) == 0 || !strings.HasPrefix(hs[0], "Open Positions (master)") {
		t.Errorf("headings = %v, want the first to name the master ledger", hs)
	}

	for _, want := range []string{"IONQ", "CRWD", "449.8", "Total Portfolio Value"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered positions missing %q:\n%s", want, got)
		}
	}
	// without quotes there is no market column
	if strings.Contains(got, "Market") {
		t.Errorf("rendered positions shows a market column without quotes:\n%s", got)
	}
}

func TestPositionsMarkdown_Empty(t *testing.T) {
	ledger := tradelog.NewLedger()
	got := PositionsMarkdown(NewPositions("", ledger.NewPositionsReport()))

	if !strings.Contains(got, "No open positions.") {
		t.Errorf("rendered empty positions missing placeholder:\n%s", got)
	}
}

func TestNewPositions_Quoted(t *testing.T) {
	ledger := testLedger(t)
	report := ledger.NewPositionsReport()

	p := NewPositions("master", report)
	if p.Quoted {
		t.Error("Quoted = true without any market price")
	}

	report.Symbols[0].MarketPrice = tradelog.USD(31.20)
	p = NewPositions("master", report)
	if !p.Quoted {
		t.Error("Quoted = false with a market price set")
	}
}

func TestTradesMarkdown(t *testing.T) {
	trades := []tradelog.Trade{
		{Symbol: "IONQ", Date: tradelog.MustParseDate("2025-05-02"), Time: tradelog.MustParseTimeOfDay("09:46:11"),
			Quantity: tradelog.Q(60), Price: tradelog.USD(28.50), Direction: tradelog.Long},
	}
	got := TradesMarkdown("Consolidated trades", trades)

	hs := headings(t, got)
	if len(hs) != 1 || hs[0] != "Consolidated trades" {
		t.Errorf("headings = %v, want [Consolidated trades]", hs)
	}
	for _, want := range []string{"IONQ", "LONG", "60"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered trades missing %q:\n%s", want, got)
		}
	}
}

func TestRowsMarkdown(t *testing.T) {
	ledger := testLedger(t)
	got := RowsMarkdown("Ledger rows", ledger.OpenPositions())

	for _, want := range []string{"Symbol", "IONQ", "CRWD"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered rows missing %q:\n%s", want, got)
		}
	}
}

func TestRowsMarkdown_Empty(t *testing.T) {
	got := RowsMarkdown("Ledger rows", nil)
	if !strings.Contains(got, "No rows.") {
		t.Errorf("rendered empty rows missing placeholder:\n%s", got)
	}
}
