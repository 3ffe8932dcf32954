package projection

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func WriteCartTableText(w io.Writer, t CartTable) error {
	if t.PlaceholderVisible {
		_, err := fmt.Fprintln(w, "Your cart is empty.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tPRICE\tQTY\tSUBTOTAL")
	for _, row := range t.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", row.ID, row.Name, row.UnitPrice, row.Quantity, row.Subtotal)
	}
	fmt.Fprintf(tw, "\t\t\tTOTAL\t%s\n", t.Total)
	return tw.Flush()
}

func WriteCheckoutSummaryText(w io.Writer, s CheckoutSummary) error {
	if s.PlaceholderVisible {
		_, err := fmt.Fprintln(w, "Your cart is empty.")
		return err
	}
	for _, line := range s.Lines {
		if _, err := fmt.Fprintf(w, "%s  %s\n", line.Label, line.LineTotal); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total: %s\n", s.Total)
	return err
}
