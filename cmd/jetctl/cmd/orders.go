package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/jet-merchant/internal/api/client"
	"github.com/donaldgifford/jet-merchant/internal/api/handlers"
	"github.com/donaldgifford/jet-merchant/internal/jet"
)

func ordersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "Browse synced orders and act on them",
	}

	ordersRoot.AddCommand(
		ordersListCmd(),
		ordersShowCmd(),
		ordersCountsCmd(),
		ordersAckCmd(),
		ordersShipCmd(),
	)

	return ordersRoot
}

func ordersListCmd() *cobra.Command {
	var (
		status    string
		unshipped bool
		limit     int
		offset    int
		orderBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List synced orders",
		Example: `  jetctl orders list --status ready
  jetctl orders list --unshipped --order-by updated --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := &apiclient.OrderFilter{
				Status:  jet.OrderStatus(status),
				Limit:   limit,
				Offset:  offset,
				OrderBy: orderBy,
			}
			if unshipped {
				no := false
				f.HasShipments = &no
			}

			list, err := newClient().ListOrders(cmd.Context(), f)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(list)
			}
			if len(list.Orders) == 0 {
				fmt.Println("No orders found.")
				return nil
			}
			if err := printOrdersTable(list.Orders); err != nil {
				return err
			}
			fmt.Printf("\nShowing %d of %d (offset %d)\n", len(list.Orders), list.Total, list.Offset)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by order status")
	cmd.Flags().BoolVar(&unshipped, "unshipped", false, "only orders without shipments")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of orders to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort by placed or updated")

	return cmd
}

func ordersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <merchant_order_id>",
		Short: "Show a synced order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := newClient().GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(o)
			}
			return printOrderDetail(o)
		},
	}
}

func ordersCountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Count synced orders by status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			counts, err := newClient().OrderCounts(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(counts)
			}
			return printCountsTable(counts)
		},
	}
}

func ordersAckCmd() *cobra.Command {
	var (
		status string
		items  []string
	)

	cmd := &cobra.Command{
		Use:     "ack <merchant_order_id>",
		Short:   "Acknowledge an order through the server",
		Args:    cobra.ExactArgs(1),
		Example: `  jetctl orders ack 2ab4c8b4 --item 7c1a9f --item 8d2b0a="nonfulfillable - no inventory"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &jet.AcknowledgeOrderRequest{AcknowledgementStatus: jet.AcknowledgementStatus(status)}
			for _, it := range items {
				id, st, found := strings.Cut(it, "=")
				if !found {
					st = string(jet.ItemFulfillable)
				}
				req.OrderItems = append(req.OrderItems, jet.AcknowledgeOrderItem{
					OrderItemID:                    id,
					OrderItemAcknowledgementStatus: jet.ItemAcknowledgementStatus(st),
				})
			}

			if err := newClient().AcknowledgeOrder(cmd.Context(), args[0], req); err != nil {
				return err
			}
			fmt.Printf("Order %s acknowledged.\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", string(jet.AckAccepted), "order acknowledgement status")
	cmd.Flags().StringArrayVar(&items, "item", nil, "order item as item_id[=status] (repeatable)")

	return cmd
}

func ordersShipCmd() *cobra.Command {
	var (
		carrier  string
		tracking string
		sku      string
		qty      int
	)

	cmd := &cobra.Command{
		Use:     "ship <merchant_order_id>",
		Short:   "Mark an order shipped through the server",
		Args:    cobra.ExactArgs(1),
		Example: `  jetctl orders ship 2ab4c8b4 --carrier UPS --tracking 1Z999AA1 --sku sku-1 --qty 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := &handlers.ShipOrderBody{
				Shipments: []handlers.ShipmentBody{{
					Carrier:        carrier,
					TrackingNumber: tracking,
					ShippedAt:      time.Now().UTC(),
					Items: []handlers.ShipmentItem{{
						MerchantSKU:  sku,
						Quantity:     qty,
						DaysToReturn: 30,
					}},
				}},
			}

			if err := newClient().ShipOrder(cmd.Context(), args[0], body); err != nil {
				return err
			}
			fmt.Printf("Order %s marked shipped.\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&carrier, "carrier", "", "shipping carrier")
	cmd.Flags().StringVar(&tracking, "tracking", "", "tracking number")
	cmd.Flags().StringVar(&sku, "sku", "", "shipped merchant SKU")
	cmd.Flags().IntVar(&qty, "qty", 1, "shipped quantity")
	cobra.CheckErr(cmd.MarkFlagRequired("carrier"))
	cobra.CheckErr(cmd.MarkFlagRequired("sku"))

	return cmd
}
