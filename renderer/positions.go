package renderer

// PositionsMarkdown renders the open-positions report to a markdown string.
func PositionsMarkdown(p *Positions) string {
	partials := map[string]string{
		"positions_title":   "templates/positions_title.md",
		"positions_lots":    "templates/positions_lots.md",
		"positions_summary": "templates/positions_summary.md",
	}
	return renderTemplate("positions", "templates/positions.md", partials, p)
}
