package email

import (
	"fmt"
	"strings"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
)

// lowStockThreshold is the stock level at or below which the reminder adds
// an urgency line.
const lowStockThreshold = 5

func buildCartReminderBody(user *entity.User, product *entity.Product) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear %s,\n\n", user.FullName)
	b.WriteString("We noticed you left something in your cart!\n\n")
	b.WriteString("Don't miss out on this amazing product:\n\n")
	writeProductBlock(&b, product)
	writeAddressBlock(&b, user)
	b.WriteString("Complete your purchase now before it's gone!\n\n")
	b.WriteString("Happy shopping,\nThe SwiftCart Team\n")

	return b.String()
}

func buildWishlistReminderBody(user *entity.User, product *entity.Product) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear %s,\n\n", user.FullName)
	b.WriteString("A product on your wishlist is still waiting for you!\n\n")
	writeProductBlock(&b, product)
	writeAddressBlock(&b, user)
	b.WriteString("Treat yourself today!\n\n")
	b.WriteString("Happy shopping,\nThe SwiftCart Team\n")

	return b.String()
}

func writeProductBlock(b *strings.Builder, product *entity.Product) {
	b.WriteString("=====================================\n")
	fmt.Fprintf(b, "Product: %s\n", product.Name)
	fmt.Fprintf(b, "Price: Rs. %.2f\n", product.Price)
	if product.StockQuantity > 0 && product.StockQuantity <= lowStockThreshold {
		fmt.Fprintf(b, "Only %d left in stock!\n", product.StockQuantity)
	}
	b.WriteString("=====================================\n\n")
}

func writeAddressBlock(b *strings.Builder, user *entity.User) {
	addr := user.DefaultAddress()
	if addr == nil {
		return
	}
	b.WriteString("Delivery Address:\n")
	b.WriteString("-------------------------------------\n")
	fmt.Fprintf(b, "%s\n", addr.AddressLine)
	fmt.Fprintf(b, "%s, %s %s\n", addr.City, addr.State, addr.PostalCode)
	fmt.Fprintf(b, "%s\n\n", addr.Country)
}
