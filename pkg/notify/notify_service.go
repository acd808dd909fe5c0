package notify

import (
	"context"
	"fmt"

	"quote-and-translate/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// Client emails contact leads to the business through SES. Construct it only
// when both addresses are configured; callers treat the notifier as optional.
type Client struct {
	api       *sesv2.Client
	sender    string
	recipient string
}

func NewClient(cfg aws.Config, sender, recipient string) *Client {
	return &Client{
		api:       sesv2.NewFromConfig(cfg),
		sender:    sender,
		recipient: recipient,
	}
}

// ContactLead sends a plain-text summary of a quote request that routed to
// contact, so a human can follow up with a custom price.
func (c *Client) ContactLead(ctx context.Context, lead models.ContactLead) error {
	subject := fmt.Sprintf("Quote request needs follow-up (%s)", lead.LeadID)
	body := fmt.Sprintf(
		"A quote request could not be auto-priced.\n\n"+
			"Reason: %s\nLocation: %s\nHours: %s\nStart time: %s\nService type: %s\n",
		lead.Reason, lead.Location, lead.Hours, lead.StartTime, lead.ServiceType,
	)

	_, err := c.api.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(c.sender),
		Destination: &types.Destination{
			ToAddresses: []string{c.recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	return err
}
