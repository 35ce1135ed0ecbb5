package catalog

// DefaultRoot is the display label used for the document root when the schema
// carries no explicit label.
const DefaultRoot = "value"

// DefaultKey is the prefix template used to compose a nested failure into its
// parent's message.
const DefaultKey = `child "{{!key}}" fails because `

// defaults maps every built-in "<type>.<rule>" key to its template. The table
// is never mutated; overlays shadow it per validation call.
var defaults = map[string]string{
	"any.unknown":   "is not allowed",
	"any.invalid":   "contains an invalid value",
	"any.empty":     "is not allowed to be empty",
	"any.required":  "is required",
	"any.allowOnly": "must be one of {{!valids}}",
	"any.default":   "threw an error when running default method",

	"alternatives.base": "not matching any of the allowed alternatives",

	"array.base":     "must be an array",
	"array.includes": "at position {{!pos}} does not match any of the allowed types",
	"array.min":      "must contain at least {{!limit}} items",
	"array.max":      "must contain less than or equal to {{!limit}} items",
	"array.length":   "must contain {{!limit}} items",
	"array.unique":   "position {{!pos}} contains a duplicate value",

	"boolean.base": "must be a boolean",

	"date.base":    "must be a number of milliseconds or valid date string",
	"date.min":     "must be larger than or equal to {{!limit}}",
	"date.max":     "must be less than or equal to {{!limit}}",
	"date.isoDate": "must be a valid ISO 8601 date",

	"number.base":     "must be a number",
	"number.min":      "must be larger than or equal to {{!limit}}",
	"number.max":      "must be less than or equal to {{!limit}}",
	"number.greater":  "must be greater than {{!limit}}",
	"number.less":     "must be less than {{!limit}}",
	"number.integer":  "must be an integer",
	"number.positive": "must be a positive number",
	"number.negative": "must be a negative number",
	"number.multiple": "must be a multiple of {{!multiple}}",

	"object.base":            "must be an object",
	"object.allowUnknown":    "is not allowed",
	"object.length":          "must have {{!limit}} children",
	"object.min":             "must have at least {{!limit}} children",
	"object.max":             "must have less than or equal to {{!limit}} children",
	"object.with":            "missing required peer {{peer}}",
	"object.without":         "conflict with forbidden peer {{peer}}",
	"object.rename.override": "cannot rename child {{from}} because override is disabled and target {{to}} exists",
	"object.assert":          "validation failed because {{!ref}} failed to {{!message}}",

	"string.base":      "must be a string",
	"string.min":       "length must be at least {{!limit}} characters long",
	"string.max":       "length must be less than or equal to {{!limit}} characters long",
	"string.length":    "length must be {{!limit}} characters long",
	"string.email":     "must be a valid email",
	"string.regex":     "fails to match the required pattern",
	"string.alphanum":  "must only contain alpha-numeric characters",
	"string.token":     "must only contain alpha-numeric and underscore characters",
	"string.guid":      "must be a valid GUID",
	"string.lowercase": "must only contain lowercase characters",
	"string.uppercase": "must only contain uppercase characters",
	"string.trim":      "must not have leading or trailing whitespace",
}

// Default returns the built-in template for key, if one exists.
func Default(key string) (string, bool) {
	tmpl, ok := defaults[key]
	return tmpl, ok
}
