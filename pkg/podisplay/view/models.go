package view

// PurchaseOrder is the header data the PO display view binds to.
type PurchaseOrder struct {
	PONumber          string
	CreatedBy         string
	DocumentType      string
	Vendor            string
	DocumentDate      string
	PaymentTerms      string
	Incoterms         string
	GRMessage         bool
	Currency          string
	ExchangeRate      string
	ExchangeRateFixed bool
}

// DefaultPurchaseOrder returns the sample document the view opens with.
func DefaultPurchaseOrder() PurchaseOrder {
	return PurchaseOrder{
		PONumber:          "4500017100",
		CreatedBy:         "ZECHA",
		DocumentType:      "NB",
		Vendor:            "1000",
		DocumentDate:      "2023-10-27",
		PaymentTerms:      "0001",
		Incoterms:         "FOB",
		GRMessage:         true,
		Currency:          "EUR",
		ExchangeRate:      "1.00000",
		ExchangeRateFixed: false,
	}
}

// Action identifies a toolbar button on the PO display view.
type Action int

const (
	ActionAddPlanning Action = iota
	ActionDocumentOverview
	ActionPrintPreview
	ActionMessages
	ActionPersonalSetting
	ActionCancel
	ActionExit
)

// Label returns the button text.
func (a Action) Label() string {
	switch a {
	case ActionAddPlanning:
		return "Add Planning"
	case ActionDocumentOverview:
		return "Document Overview"
	case ActionPrintPreview:
		return "Print Preview"
	case ActionMessages:
		return "Messages"
	case ActionPersonalSetting:
		return "Personal Setting"
	case ActionCancel:
		return "Cancel"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Actions lists every toolbar action in display order.
func Actions() []Action {
	return []Action{
		ActionAddPlanning,
		ActionDocumentOverview,
		ActionPrintPreview,
		ActionMessages,
		ActionPersonalSetting,
		ActionCancel,
		ActionExit,
	}
}
