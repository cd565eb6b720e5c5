package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/jet-merchant/internal/api/handlers"
	"github.com/donaldgifford/jet-merchant/internal/jet"
)

func ordersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "List and act on merchant orders directly against Jet",
	}

	ordersRoot.AddCommand(
		ordersListCmd(),
		ordersGetCmd(),
		ordersAckCmd(),
		ordersShipCmd(),
	)

	return ordersRoot
}

func ordersListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List order URLs in a status",
		Example: `  jet-merchant orders list
  jet-merchant orders list --status acknowledged --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, ok := jet.ParseOrderStatus(status)
			if !ok {
				return fmt.Errorf("unknown order status %q", status)
			}

			client, err := jetClientFromConfig()
			if err != nil {
				return err
			}

			urls, err := client.GetOrders(cmd.Context(), st)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(urls)
			}
			if len(urls.OrderURLs) == 0 {
				fmt.Printf("No %s orders.\n", st)
				return nil
			}
			for _, u := range urls.OrderURLs {
				fmt.Println(u)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", string(jet.OrderReady), "order status to list")

	return cmd
}

func ordersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <merchant_order_id|order_url>",
		Short: "Show an order's details",
		Args:  cobra.ExactArgs(1),
		Example: `  jet-merchant orders get 2ab4c8b4b79d4d6a8b2f4e0d5c1c9b22
  jet-merchant orders get /orders/withoutShipmentDetail/2ab4c8b4b79d4d6a8b2f4e0d5c1c9b22`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := jetClientFromConfig()
			if err != nil {
				return err
			}

			order, err := client.GetOrderDetail(cmd.Context(), orderRef(args[0]))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(order)
			}
			return printOrderDetail(order)
		},
	}
}

func ordersAckCmd() *cobra.Command {
	var (
		status     string
		altOrderID string
		items      []string
	)

	cmd := &cobra.Command{
		Use:   "ack <merchant_order_id>",
		Short: "Acknowledge a ready order",
		Args:  cobra.ExactArgs(1),
		Example: `  jet-merchant orders ack 2ab4c8b4 --item 7c1a9f=fulfillable
  jet-merchant orders ack 2ab4c8b4 --status "rejected - item level error" --item 7c1a9f="nonfulfillable - no inventory"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			acks, err := parseItemAcks(items)
			if err != nil {
				return err
			}
			req := &jet.AcknowledgeOrderRequest{
				AcknowledgementStatus: jet.AcknowledgementStatus(status),
				OrderItems:            acks,
			}
			if altOrderID != "" {
				req.AltOrderID = &altOrderID
			}

			client, err := jetClientFromConfig()
			if err != nil {
				return err
			}

			if err := client.AcknowledgeOrder(cmd.Context(), args[0], req); err != nil {
				return err
			}
			fmt.Printf("Order %s acknowledged (%s).\n", args[0], status)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", string(jet.AckAccepted), "order acknowledgement status")
	cmd.Flags().StringVar(&altOrderID, "alt-order-id", "", "merchant's own order ID")
	cmd.Flags().StringArrayVar(&items, "item", nil, "order item to acknowledge as item_id[=status] (repeatable)")

	return cmd
}

func ordersShipCmd() *cobra.Command {
	var (
		carrier      string
		tracking     string
		shippedAt    string
		altOrderID   string
		daysToReturn int
		items        []string
	)

	cmd := &cobra.Command{
		Use:   "ship <merchant_order_id>",
		Short: "Send a shipped message for an order",
		Args:  cobra.ExactArgs(1),
		Example: `  jet-merchant orders ship 2ab4c8b4 --carrier UPS --tracking 1Z999AA10123456784 --item sku-1=2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shipItems, err := parseShipItems(items, daysToReturn)
			if err != nil {
				return err
			}
			at, err := parseShippedAt(shippedAt, time.Now())
			if err != nil {
				return err
			}

			body := &handlers.ShipOrderBody{
				AltOrderID: altOrderID,
				Shipments: []handlers.ShipmentBody{{
					Carrier:        carrier,
					TrackingNumber: tracking,
					ShippedAt:      at,
					Items:          shipItems,
				}},
			}

			client, err := jetClientFromConfig()
			if err != nil {
				return err
			}

			if err := client.ShipOrder(cmd.Context(), args[0], body.Request()); err != nil {
				return err
			}
			fmt.Printf("Order %s marked shipped via %s.\n", args[0], carrier)
			return nil
		},
	}
	cmd.Flags().StringVar(&carrier, "carrier", "", "shipping carrier")
	cmd.Flags().StringVar(&tracking, "tracking", "", "shipment tracking number")
	cmd.Flags().StringVar(&shippedAt, "shipped-at", "", "RFC 3339 ship time (default now)")
	cmd.Flags().StringVar(&altOrderID, "alt-order-id", "", "merchant's own order ID")
	cmd.Flags().IntVar(&daysToReturn, "days-to-return", 30, "return window in days")
	cmd.Flags().StringArrayVar(&items, "item", nil, "shipped SKU as sku=qty (repeatable)")
	cobra.CheckErr(cmd.MarkFlagRequired("carrier"))

	return cmd
}
