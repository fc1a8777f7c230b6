package fields

// Candidate label tables for the order-export schemas of both supported
// marketplaces. Both platforms ship the same logical columns under
// different headings, so a single table per canonical field serves both;
// entries are ordered most-specific first.
var (
	// OrderID matches "Order ID", "Order Number", "Order No.", "OrderID".
	OrderID = []string{"Order ID", "Order Number", "Order No", "OrderID", "Order number"}

	// ProductName matches the base product column.
	ProductName = []string{"Product Name", "Product", "Products"}

	// Variation matches the variation/variant column. "SKU Options" is the
	// TikTok wording.
	Variation = []string{"Variation Name", "Variation", "Variant", "SKU Options"}

	// Quantity includes the "quanity" typo observed in real exports.
	Quantity = []string{"Quantity", "Qty", "quanity"}

	// Status matches order status columns.
	Status = []string{"Status", "Order Status", "order status"}

	// Date matches the settlement/payout date columns of both platforms.
	Date = []string{
		"DATE", "Date",
		"delivered date / estimated payout date",
		"PAYOUT COMPLETED DATE",
		"Created Time",
	}

	// Tax matches the per-row tax amount column.
	Tax = []string{"Tax"}

	// ItemPrice matches the per-unit price column.
	ItemPrice = []string{"Item Price", "Price"}

	// BuyerPayment matches the buyer-paid total column.
	BuyerPayment = []string{"Total Buyer Payment"}

	// Buyer matches buyer identity columns.
	Buyer = []string{"Buyer Username", "buyer username", "Buyer Name", "Buyer"}
)
