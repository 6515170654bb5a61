package errors

import "sort"

// Registered error codes.
const (
	CodeConfigNotFound = "E100"
	CodeConfigInvalid  = "E101"
	CodeConfigSyntax   = "E102"
	CodeInvalidFlags   = "E120"
	CodeServeFailed    = "E121"
	CodeExportFailed   = "E130"
	CodeExportNoBucket = "E131"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E100-E119)
	// ============================================

	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "slider.json not found",
		Detail:   "No slider.json was found in the given directory. Defaults are used unless --config names a file.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "slider.json was read but a value is out of range or inconsistent.",
	},
	CodeConfigSyntax: {
		Category: CategoryConfig,
		Message:  "Malformed slider.json",
		Detail:   "slider.json is not valid JSON or a field has the wrong type.",
	},

	// ============================================
	// CLI Errors (E120-E129)
	// ============================================

	CodeInvalidFlags: {
		Category: CategoryCLI,
		Message:  "Invalid slider flags",
		Detail:   "The state flags do not describe a slider that can be rendered.",
	},
	CodeServeFailed: {
		Category: CategoryCLI,
		Message:  "Server failed",
		Detail:   "The HTTP server stopped with an error.",
	},

	// ============================================
	// Export Errors (E130-E139)
	// ============================================

	CodeExportFailed: {
		Category: CategoryExport,
		Message:  "Export failed",
		Detail:   "The rendered slider could not be uploaded to the bucket.",
	},
	CodeExportNoBucket: {
		Category: CategoryExport,
		Message:  "No export bucket",
		Detail:   "Set export.bucket in slider.json or pass --bucket.",
	},
}

// GetAllCodes returns all registered error codes, sorted.
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

// Register adds a custom error template.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
