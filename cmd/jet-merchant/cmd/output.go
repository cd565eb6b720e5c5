package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/donaldgifford/jet-merchant/internal/jet"
	"github.com/donaldgifford/jet-merchant/internal/notify"
	"github.com/donaldgifford/jet-merchant/internal/syncer"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printOrderDetail(o *jet.Order) error {
	p := notify.NewOrderPayload(o)

	tw := newTabWriter(os.Stdout)
	tw.writef("Merchant Order ID:\t%s\n", o.MerchantOrderID)
	tw.writef("Reference Order ID:\t%s\n", o.ReferenceOrderID)
	tw.writef("Status:\t%s\n", o.Status)
	tw.writef("Placed:\t%s\n", o.OrderPlacedDate.Format("2006-01-02 15:04:05"))
	tw.writef("Ship By:\t%s\n", o.OrderDetail.RequestShipBy.Format("2006-01-02 15:04:05"))
	tw.writef("Service Level:\t%s\n", o.OrderDetail.RequestServiceLevel)
	tw.writef("Ship To:\t%s\n", p.ShipTo)
	tw.writef("Total:\t%s\n", p.Total)
	tw.writef("Shipments:\t%d\n", len(o.Shipments))
	tw.writef("\nITEM ID\tSKU\tQTY\tTITLE\n")
	for i := range o.OrderItems {
		it := &o.OrderItems[i]
		tw.writef("%s\t%s\t%d\t%s\n",
			it.OrderItemID,
			it.MerchantSKU,
			it.RequestOrderQuantity,
			truncate(it.ProductTitle, 40),
		)
	}
	return tw.finish()
}

func printInventory(inv *jet.Inventory) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("NODE\tQUANTITY\n")
	total := 0
	for _, n := range inv.FulfillmentNodes {
		tw.writef("%s\t%d\n", n.FulfillmentNodeID, n.Quantity)
		total += n.Quantity
	}
	tw.writef("TOTAL\t%d\n", total)
	return tw.finish()
}

func printSyncResult(w io.Writer, res *syncer.Result) error {
	tw := newTabWriter(w)
	tw.writef("Run:\t%s\n", res.RunID)
	tw.writef("Seen:\t%d\n", res.Seen)
	tw.writef("Stored:\t%d\n", res.Stored)
	tw.writef("Skipped:\t%d\n", res.Skipped)
	tw.writef("Failed:\t%d\n", res.Failed)
	tw.writef("Notified:\t%d\n", res.Notified)
	statuses := make([]string, 0, len(res.ByStatus))
	for _, st := range jet.AllOrderStatuses {
		if n, ok := res.ByStatus[st]; ok {
			statuses = append(statuses, fmt.Sprintf("%s=%d", st, n))
		}
	}
	tw.writef("By Status:\t%s\n", strings.Join(statuses, " "))
	tw.writef("Duration:\t%s\n", res.Duration)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
