package email

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
	"github.com/Rak-Code/swiftcart-backend/internal/pkg/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const senderName = "SwiftCart"

// Client sends transactional reminder mails through SendGrid.
type Client struct {
	apiKey string
	from   string
	log    logger.Logger
}

var (
	clientInstance *Client
	once           sync.Once
)

// NewClient creates a new singleton instance of the SendGrid mail client.
// It reads credentials from environment variables.
func NewClient(log logger.Logger) *Client {
	once.Do(func() {
		apiKey := os.Getenv("SENDGRID_API_KEY")
		from := os.Getenv("REMINDER_FROM_EMAIL")

		if apiKey == "" || from == "" {
			log.Error("SENDGRID_API_KEY and REMINDER_FROM_EMAIL environment variables must be set", nil)
			os.Exit(1)
		}

		clientInstance = &Client{
			apiKey: apiKey,
			from:   from,
			log:    log,
		}
		log.Info("SendGrid mail client initialized.")
	})
	return clientInstance
}

// SendCartReminder mails the user about a product left in their cart.
func (c *Client) SendCartReminder(ctx context.Context, user *entity.User, product *entity.Product) error {
	subject := "Don't Forget Your Cart! Complete Your Purchase"
	return c.send(ctx, user, subject, buildCartReminderBody(user, product))
}

// SendWishlistReminder mails the user about a product waiting on their wishlist.
func (c *Client) SendWishlistReminder(ctx context.Context, user *entity.User, product *entity.Product) error {
	subject := "Your Wishlist Item is Waiting! Buy Now"
	return c.send(ctx, user, subject, buildWishlistReminderBody(user, product))
}

func (c *Client) send(ctx context.Context, user *entity.User, subject, body string) error {
	if user.Email == "" {
		return fmt.Errorf("user %s has no email address", user.ID)
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(senderName, c.from),
		subject,
		mail.NewEmail(user.FullName, user.Email),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	c.log.Debug(fmt.Sprintf("Mail sent: to=%s subject=%q status=%d", user.Email, subject, response.StatusCode))
	return nil
}
