package components

// Tab is one entry of the page's tab bar.
type Tab struct {
	ID    string
	Label string
}

// Tabs lists the two tools in display order.
var Tabs = []Tab{
	{ID: "qr", Label: "QR Code Generator"},
	{ID: "sketch", Label: "Image to Sketch Converter"},
}

// DefaultLink prefills the QR text field.
const DefaultLink = "www.linkedin.com/in/parth-kale13"
