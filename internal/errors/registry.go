package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Schema Errors (E101-E199)
	// ============================================

	"E101": {
		Category: CategorySchema,
		Message:  "Invalid East value JSON",
		Detail:   "The byte content could not be decoded as a serialized East value.",
		DocURL:   "https://elara.ai/docs/east-ui/errors/E101",
	},
	"E102": {
		Category: CategorySchema,
		Message:  "Unknown value kind",
		Detail:   "The value carries a kind tag outside the known set.",
		DocURL:   "https://elara.ai/docs/east-ui/errors/E102",
	},
	"E103": {
		Category: CategorySchema,
		Message:  "Variant missing case",
		Detail:   "A variant value must name exactly one active case.",
		DocURL:   "https://elara.ai/docs/east-ui/errors/E103",
	},
	"E104": {
		Category: CategorySchema,
		Message:  "Float not representable in JSON",
		Detail:   "JSON has no encoding for NaN or infinite floats.",
		DocURL:   "https://elara.ai/docs/east-ui/errors/E104",
	},

	// ============================================
	// Render Errors (E201-E299)
	// ============================================

	"E201": {
		Category: CategoryRender,
		Message:  "Unknown component type",
		Detail:   "The renderer has no adapter for this component's type tag.",
		DocURL:   "https://elara.ai/docs/east-ui/errors/E201",
	},
	"E202": {
		Category: CategoryRender,
		Message:  "Table sort failed",
		Detail:   "The table's sort state references a column with no registered comparator.",
		DocURL:   "https://elara.ai/docs/east-ui/errors/E202",
	},

	// ============================================
	// Dataset Errors (E301-E399)
	// ============================================

	"E301": {
		Category: CategoryDataset,
		Message:  "Dataset not found",
		Detail:   "No dataset exists at the requested workspace path.",
		DocURL:   "https://elara.ai/docs/east-ui/errors/E301",
	},
	"E302": {
		Category: CategoryDataset,
		Message:  "Dataset write failed",
		Detail:   "The remote store rejected the write. The cached value has been rolled back.",
		DocURL:   "https://elara.ai/docs/east-ui/errors/E302",
	},
	"E303": {
		Category: CategoryDataset,
		Message:  "Dataset store closed",
		Detail:   "The store has been closed and can no longer serve requests.",
		DocURL:   "https://elara.ai/docs/east-ui/errors/E303",
	},

	// ============================================
	// Config Errors (E401-E499)
	// ============================================

	"E401": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be parsed.",
		DocURL:   "https://elara.ai/docs/east-ui/errors/E401",
	},
	"E402": {
		Category: CategoryConfig,
		Message:  "Unknown store backend",
		Detail:   "The configured dataset store backend is not one of: memory, s3.",
		DocURL:   "https://elara.ai/docs/east-ui/errors/E402",
	},
	"E403": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No eastui.json or eastui.yaml exists at the requested location.",
		DocURL:   "https://elara.ai/docs/east-ui/errors/E403",
	},
}

// Register adds a custom error template to the registry.
// Intended for applications extending east-ui with their own error codes.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
