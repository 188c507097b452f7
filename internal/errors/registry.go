package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E101-E119)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No featuregrid.json was found at the given path.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "featuregrid.json is not valid JSON.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Config write failed",
	},

	// ============================================
	// Catalog Errors (E201-E219)
	// ============================================

	"E201": {
		Category: CategoryCatalog,
		Message:  "Catalog parse failed",
		Detail:   "The catalog file is not valid HCL or does not match the catalog schema.",
	},
	"E202": {
		Category: CategoryCatalog,
		Message:  "Duplicate catalog id",
	},
	"E203": {
		Category: CategoryCatalog,
		Message:  "Layout has no variants",
		Detail:   "Every layout block needs at least one variant block.",
	},
	"E204": {
		Category: CategoryCatalog,
		Message:  "Unknown layout",
		Detail:   "The layout id has no arranger.",
	},
	"E205": {
		Category: CategoryCatalog,
		Message:  "Invalid attribute value",
	},
	"E206": {
		Category: CategoryCatalog,
		Message:  "Guide rendering failed",
	},
	"E207": {
		Category: CategoryCatalog,
		Message:  "Card registration failed",
	},

	// ============================================
	// Builder Errors (E301-E319)
	// ============================================

	"E301": {
		Category: CategoryBuilder,
		Message:  "Unknown layout",
	},
	"E302": {
		Category: CategoryBuilder,
		Message:  "Unknown variant",
		Detail:   "The variant does not belong to the selected layout.",
	},
	"E303": {
		Category: CategoryBuilder,
		Message:  "Slot out of range",
	},
	"E304": {
		Category: CategoryBuilder,
		Message:  "Unknown view mode",
	},
	"E305": {
		Category: CategoryBuilder,
		Message:  "Unknown preview mode",
	},
	"E306": {
		Category: CategoryBuilder,
		Message:  "Unknown theme",
	},
	"E307": {
		Category: CategoryBuilder,
		Message:  "Unknown action",
	},
	"E308": {
		Category: CategoryBuilder,
		Message:  "Render failed",
	},
	"E309": {
		Category: CategoryBuilder,
		Message:  "Unknown card category",
	},

	// ============================================
	// Export Errors (E401-E419)
	// ============================================

	"E401": {
		Category: CategoryExport,
		Message:  "Invalid export target",
	},
	"E402": {
		Category: CategoryExport,
		Message:  "Export write failed",
	},
	"E403": {
		Category: CategoryExport,
		Message:  "S3 upload failed",
	},

	// ============================================
	// Server Errors (E501-E519)
	// ============================================

	"E501": {
		Category: CategoryServer,
		Message:  "Session not found",
		Detail:   "The session expired or was never created. Reload the page.",
	},
	"E502": {
		Category: CategoryServer,
		Message:  "Session limit reached",
	},
	"E503": {
		Category: CategoryServer,
		Message:  "Invalid message",
	},
	"E504": {
		Category: CategoryServer,
		Message:  "Stale event",
		Detail:   "The event refers to an older render; the client was resynchronized.",
	},
	"E505": {
		Category: CategoryServer,
		Message:  "Handler not found",
	},
	"E506": {
		Category: CategoryServer,
		Message:  "Server failed",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
