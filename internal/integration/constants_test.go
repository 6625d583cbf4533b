package integration_test

import "fmt"

const (
	// Cart item constants
	TestItemId          = "hoodie-7"
	TestItemName        = "Trail Hoodie"
	TestItemSubtitle    = "Fleece lined"
	TestItemColor       = "Moss"
	TestItemSize        = "M"
	TestItemImage       = "https://cdn.example.com/hoodie-7.jpg"
	TestItemPrice       = 54.5
	TestItemArrivalDate = "Mon, Sep 7"

	// Checkout constants
	TestCheckoutSubtotal = 109.0
	TestCheckoutTax      = 9.81
	TestCheckoutTotal    = 118.81
)

func testItemJSON(quantity int) string {
	return fmt.Sprintf(`{
		"id": "%s",
		"name": "%s",
		"subtitle": "%s",
		"color": "%s",
		"size": "%s",
		"image": "%s",
		"price": %v,
		"quantity": %d,
		"arrivalDate": "%s"
	}`, TestItemId, TestItemName, TestItemSubtitle, TestItemColor, TestItemSize,
		TestItemImage, TestItemPrice, quantity, TestItemArrivalDate)
}
