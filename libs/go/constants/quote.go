package constants

// Invoice section kinds, in display order.
const (
	SectionLabor     = "labor"
	SectionMaterials = "materials"
	SectionEquipment = "equipment"
)

// Lead sources reported to the CRM.
const (
	LeadSourceContact = "contact_form"
	LeadSourceOrder   = "order_form"
	LeadSourceQuote   = "quote_form"
)

// Lead statuses reported to the CRM.
const (
	LeadStatusNew     = "New Lead"
	LeadStatusOrdered = "Order Placed"
)

// Invoice store backends selectable with INVOICE_STORE.
const (
	StorePostgres  = "postgres"
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
)

// Generation providers selectable with GENERATION_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)
