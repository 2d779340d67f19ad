// Package renderer turns the stockbook state into markdown text for the console.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/stockbook"
	md "github.com/nao1215/markdown"
)

// Menu lists the available commands.
func Menu(commands []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.PlainText("You can find here available Commands:")
	doc.BulletList(commands...)
	return doc.String()
}

// InventoryMarkdown lists every product of the warehouse with its price and quantity.
func InventoryMarkdown(wh *stockbook.Warehouse) string {
	if wh.IsEmpty() {
		return "The warehouse is empty.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Current inventory")
	table := md.TableSet{
		Header: []string{"Product", "Price", "Quantity"},
		Rows:   [][]string{},
	}
	for name, p := range wh.All() {
		table.Rows = append(table.Rows, []string{name, p.Price.String(), p.Quantity.String()})
	}
	doc.CustomTable(table, md.TableOptions{AutoWrapText: false})
	return doc.String()
}

// ProductMarkdown describes the stock of one product.
func ProductMarkdown(name string, p stockbook.Product) string {
	return fmt.Sprintf("%s: %s, Quantity: %d\n", name, p.Price, p.Quantity)
}

// ReviewMarkdown lists journal entries with their position.
func ReviewMarkdown(entries []stockbook.Entry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Recorded operations")
	table := md.TableSet{
		Header: []string{"#", "Operation"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{fmt.Sprint(e.Index), e.Text})
	}
	doc.CustomTable(table, md.TableOptions{AutoWrapText: false})
	return doc.String()
}

// ValidationMarkdown reports the outcome of stockbook.Validate for the files
// that exist.
func ValidationMarkdown(reports []stockbook.FileReport) string {
	var buf bytes.Buffer
	for _, r := range reports {
		if !r.Present {
			continue
		}
		if r.Valid() {
			fmt.Fprintf(&buf, "✓ %s format is valid\n", r.Name)
			continue
		}
		fmt.Fprintf(&buf, "✕ %s format is invalid.\n", r.Name)
		fmt.Fprintf(&buf, "Error: %v\n", r.Err)
		if r.Content != "" {
			fmt.Fprintf(&buf, "Current content: %s\n", r.Content)
		}
	}
	return buf.String()
}
