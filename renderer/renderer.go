// Package renderer renders statements as markdown reports.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/statement"
	md "github.com/nao1215/markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// PositionsMarkdown renders the positions table and their KPIs.
func PositionsMarkdown(s *statement.Statement, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Positions")

	if len(s.Positions) == 0 {
		doc.PlainText("No positions found.")
		return doc.String()
	}

	positionKPIs(doc, s.PositionSummary(), currency)

	table := md.TableSet{Header: []string{
		"Code", "Name", "Shares", "Average Cost", "Total Cost",
		"Price", "Market Value", "Unrealized P/L", "Return",
	}}
	for _, p := range s.Positions {
		table.Rows = append(table.Rows, []string{
			p.Code,
			p.Name,
			strconv.FormatInt(p.SharesHeld, 10),
			p.AverageCost.String(),
			formatMoney(p.TotalCost, currency),
			p.MarketPrice.String(),
			formatMoney(p.MarketValue, currency),
			signedMoney(p.UnrealizedPL(), currency),
			p.ReturnPct().SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// TransactionsMarkdown renders the transactions table and their KPIs.
func TransactionsMarkdown(s *statement.Statement, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Transactions")

	if len(s.Transactions) == 0 {
		doc.PlainText("No transactions this period.")
		return doc.String()
	}

	transactionKPIs(doc, s.TransactionSummary(), currency)

	table := md.TableSet{Header: []string{
		"Date", "Kind", "Type", "Name", "Shares", "Price", "Amount", "Fee", "Tax", "Net Settlement",
	}}
	for _, t := range s.Transactions {
		table.Rows = append(table.Rows, []string{
			t.Date,
			t.Kind.String(),
			t.Type,
			t.Name,
			strconv.FormatInt(t.Shares, 10),
			t.Price.String(),
			formatMoney(t.Amount, currency),
			formatMoney(t.Fee, currency),
			formatMoney(t.Tax, currency),
			signedMoney(t.NetSettlement(), currency),
		})
	}
	doc.Table(table)
	return doc.String()
}

// SummaryMarkdown renders the KPIs of both record sets.
func SummaryMarkdown(s *statement.Statement, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Statement Summary")

	doc.H2("Positions")
	positionKPIs(doc, s.PositionSummary(), currency)

	doc.H2("Transactions")
	transactionKPIs(doc, s.TransactionSummary(), currency)

	if dropped := len(s.Dropped()); dropped > 0 {
		doc.PlainText(fmt.Sprintf("%d candidate rows could not be parsed.", dropped))
	}
	return doc.String()
}

// DistributionMarkdown renders the chart data of a distribution, with the
// share of each bucket.
func DistributionMarkdown(buckets []statement.Bucket, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Allocation")

	if len(buckets) == 0 {
		doc.PlainText("Nothing to chart.")
		return doc.String()
	}

	var total int64
	for _, b := range buckets {
		total += b.Value
	}
	table := md.TableSet{Header: []string{"Name", "Market Value", "Share"}}
	for _, b := range buckets {
		share := statement.Percent(0)
		if total != 0 {
			share = statement.Percent(float64(b.Value) / float64(total) * 100)
		}
		table.Rows = append(table.Rows, []string{b.Label, formatMoney(b.Value, currency), share.String()})
	}
	doc.Table(table)
	return doc.String()
}

func positionKPIs(doc *md.Markdown, s statement.PositionSummary, currency string) {
	doc.BulletList(
		"Total Market Value: "+formatMoney(s.TotalMarketValue, currency),
		"Total Cost: "+formatMoney(s.TotalCost, currency),
		fmt.Sprintf("Unrealized P/L: %s (%s)", signedMoney(s.Profit, currency), s.ROI.SignedString()),
	)
}

func transactionKPIs(doc *md.Markdown, s statement.TransactionSummary, currency string) {
	doc.BulletList(
		"Net Cash Flow: "+signedMoney(s.NetCashFlow, currency),
		fmt.Sprintf("Trades: %d", s.Count),
	)
}

// HTML converts a markdown report to HTML, with GitHub flavored tables.
func HTML(markdown string) (string, error) {
	var b bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := gm.Convert([]byte(markdown), &b); err != nil {
		return "", fmt.Errorf("cannot convert report to HTML: %w", err)
	}
	return b.String(), nil
}
