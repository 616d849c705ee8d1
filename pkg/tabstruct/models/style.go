package models

// TooltipElement is the element label assigned to colors found in
// tooltip text runs rather than style rules.
const TooltipElement = "tooltip"

// StyleColor represents one color assignment on a worksheet.
type StyleColor struct {
	// Sheet is the owning worksheet name.
	Sheet string `json:"sheet"`
	// Element is the styled element name, or "tooltip" for text runs.
	Element string `json:"element"`
	// Color is the hex color value.
	Color string `json:"color"`
}
