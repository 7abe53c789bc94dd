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
	// Descriptor errors (E100-E119)

	"E100": {
		Category: CategoryDescriptor,
		Message:  "Descriptor file not found",
		Detail:   "The element descriptor file could not be opened.",
	},
	"E101": {
		Category: CategoryDescriptor,
		Message:  "Descriptor syntax error",
		Detail:   "The descriptor is not valid YAML or JSON.",
	},
	"E102": {
		Category: CategoryDescriptor,
		Message:  "Invalid descriptor shape",
		Detail:   "A descriptor is a mapping with optional tag, attrs and children fields. attrs must be a mapping and children a scalar, a descriptor or a sequence of them.",
	},
	"E103": {
		Category: CategoryDescriptor,
		Message:  "Unsupported descriptor format",
		Detail:   "Descriptor files must end in .yaml, .yml or .json.",
	},

	// Configuration errors (E120-E139)

	"E120": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "The configuration file specified with --config does not exist.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid config syntax",
		Detail:   "The configuration file could not be parsed.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration field has a value outside its allowed range.",
	},

	// CLI errors (E140-E159)

	"E140": {
		Category: CategoryCLI,
		Message:  "Missing argument",
		Detail:   "The command requires at least one argument.",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Output failed",
		Detail:   "The result could not be written.",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Invalid usage",
		Detail:   "The command line could not be parsed. Run vjsx --help for the list of commands and flags.",
	},
}

// GetAllCodes returns all registered error codes in ascending order.
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
