package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/jet-merchant/internal/api/client"
	"github.com/donaldgifford/jet-merchant/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

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

func printOrdersTable(orders []domain.StoredOrder) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("MERCHANT ORDER ID\tREFERENCE\tSTATUS\tITEMS\tSHIPPED\tPLACED\n")
	for i := range orders {
		o := &orders[i]
		tw.writef("%s\t%s\t%s\t%d\t%v\t%s\n",
			o.MerchantOrderID,
			o.ReferenceOrderID,
			o.Status,
			o.ItemCount(),
			o.HasShipments,
			o.OrderPlacedAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func printOrderDetail(o *domain.StoredOrder) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Merchant Order ID:\t%s\n", o.MerchantOrderID)
	tw.writef("Reference Order ID:\t%s\n", o.ReferenceOrderID)
	tw.writef("Status:\t%s\n", o.Status)
	tw.writef("Placed:\t%s\n", o.OrderPlacedAt.Format(timeLayout))
	tw.writef("Ship By:\t%s\n", o.Order.OrderDetail.RequestShipBy.Format(timeLayout))
	tw.writef("Items:\t%d\n", o.ItemCount())
	tw.writef("Shipments:\t%d\n", len(o.Order.Shipments))
	tw.writef("First Seen:\t%s\n", o.FirstSeenAt.Format(timeLayout))
	tw.writef("Updated:\t%s\n", o.UpdatedAt.Format(timeLayout))
	tw.writef("URL:\t%s\n", o.OrderURL)
	return tw.finish()
}

func printCountsTable(counts []domain.StatusCount) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("STATUS\tCOUNT\n")
	for _, c := range counts {
		tw.writef("%s\t%d\n", c.Status, c.Count)
	}
	return tw.finish()
}

func printSyncRunsTable(runs []domain.SyncRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTRIGGER\tSTATUS\tSTARTED\tCOMPLETED\tSEEN\tSTORED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format(timeLayout)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			r.ID,
			r.Trigger,
			r.Status,
			r.StartedAt.Format(timeLayout),
			completed,
			r.OrdersSeen,
			r.OrdersStored,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printQuota(q *apiclient.Quota) error {
	tw := newTabWriter(os.Stdout)
	if q.DailyLimit == 0 {
		tw.writef("Daily Limit:\tuncapped\n")
	} else {
		tw.writef("Daily Limit:\t%d\n", q.DailyLimit)
		tw.writef("Remaining:\t%d\n", q.Remaining)
	}
	tw.writef("Used:\t%d\n", q.DailyUsed)
	if q.ResetAt != nil {
		tw.writef("Resets:\t%s\n", q.ResetAt.Local().Format(timeLayout))
	}
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
