package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/donaldgifford/jet-merchant/internal/jet"
	"github.com/donaldgifford/jet-merchant/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // ready: needs acknowledgement
	colorYellow = 0xF1C40F // acknowledged or in progress: needs shipping
	colorGrey   = 0x95A5A6 // anything else

	// Discord allows max 10 embeds per message.
	maxEmbeds = 10
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendOrder sends a single order as a Discord embed.
func (d *DiscordNotifier) SendOrder(ctx context.Context, order *OrderPayload) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(order)},
	}
	return d.post(ctx, payload)
}

// SendBatch sends multiple orders as a single Discord message.
func (d *DiscordNotifier) SendBatch(ctx context.Context, orders []OrderPayload) error {
	if len(orders) == 0 {
		return nil
	}

	limit := min(len(orders), maxEmbeds)
	embeds := make([]discordEmbed, 0, limit+1)
	for i := range limit {
		embeds = append(embeds, buildEmbed(&orders[i]))
	}

	if len(orders) > maxEmbeds {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more orders", len(orders)-maxEmbeds),
			Color:       colorGrey,
			Description: "Run `jetctl orders list` for the full list.",
		})
	}

	return d.post(ctx, discordWebhookPayload{Embeds: embeds})
}

func buildEmbed(order *OrderPayload) discordEmbed {
	embed := discordEmbed{
		Title: fmt.Sprintf("Order %s (%s)", order.ReferenceOrderID, order.Status),
		Color: statusColor(order.Status),
		Fields: []discordEmbedField{
			{Name: "Merchant Order ID", Value: order.MerchantOrderID},
			{Name: "Items", Value: fmt.Sprintf("%d", order.ItemCount), Inline: true},
			{Name: "Total", Value: order.Total, Inline: true},
		},
	}

	if len(order.SKUs) > 0 {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "SKUs", Value: strings.Join(order.SKUs, ", "),
		})
	}
	if order.ServiceLevel != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Service Level", Value: order.ServiceLevel, Inline: true,
		})
	}
	if !order.ShipBy.IsZero() {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Ship By", Value: order.ShipBy.UTC().Format(time.RFC1123), Inline: true,
		})
	}
	if order.ShipTo != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Ship To", Value: order.ShipTo, Inline: true,
		})
	}
	if !order.PlacedAt.IsZero() {
		embed.Timestamp = order.PlacedAt.UTC().Format(time.RFC3339)
	}

	return embed
}

func statusColor(s jet.OrderStatus) int {
	switch s {
	case jet.OrderReady:
		return colorGreen
	case jet.OrderAcknowledged, jet.OrderInProgress:
		return colorYellow
	default:
		return colorGrey
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) (err error) {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
		result := "success"
		if err != nil {
			result = "error"
		}
		metrics.NotificationsTotal.WithLabelValues(result).Inc()
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
