package tradelog

// test helpers to build executions, trades and lots from literals.

func testExec(symbol string, qty int, side Direction, price float64, day, tod string) Execution {
	return Execution{
		Symbol:    symbol,
		Date:      MustParseDate(day),
		Time:      MustParseTimeOfDay(tod),
		Quantity:  Q(qty),
		Price:     USD(price),
		Direction: side,
	}
}

func testTrade(symbol string, qty int, side Direction, price float64, day, tod string) Trade {
	return Trade{
		Symbol:    symbol,
		Date:      MustParseDate(day),
		Time:      MustParseTimeOfDay(tod),
		Quantity:  Q(qty),
		Price:     USD(price),
		Direction: side,
	}
}

func testLot(symbol string, side Direction, qty int, price float64, day, tod string) *Row {
	return &Row{
		Symbol:        symbol,
		Direction:     side,
		EntryQuantity: Q(qty),
		EntryPrice:    USD(price),
		EntryDate:     MustParseDate(day),
		EntryTime:     MustParseTimeOfDay(tod),
	}
}
