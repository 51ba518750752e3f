// Package notice holds the confirmation messages shown after successful writes.
package notice

import "fmt"

const (
	OrderPlaced    = "Order placed successfully!"
	OrderCreated   = "Order has been created successfully!"
	StatusUpdated  = "Order status has been updated."
	PaymentUpdated = "Order payment has been updated."
	ProductAdded   = "Product has been added successfully!"
	ProductUpdated = "Product has been updated successfully!"
	ProfileSaved   = "Profile created successfully!"
	InvoiceReady   = "Your invoice is ready."
	ReportReady    = "Your report is ready."
	DeviceUpdated  = "FCM token updated successfully"
	DeviceRemoved  = "Device deactivated successfully"
	SignedOut      = "You have been signed out."
)

// ProductDeleted confirms the deletion of the named product.
func ProductDeleted(name string) string {
	if name == "" {
		return "Product has been deleted."
	}

	return fmt.Sprintf("%q has been deleted.", name)
}
