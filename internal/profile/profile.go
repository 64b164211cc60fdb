package profile

// Profile holds the fixed descriptive metadata attached to every report
// generated for a module type.
type Profile struct {
	// Name is the identifier selected with --profile (e.g., "helm-kubernetes")
	Name string `yaml:"name"`

	// ModuleType is emitted as module_type in JSON reports
	ModuleType string `yaml:"module_type"`

	// ComplianceFramework is emitted as compliance_framework in JSON reports
	ComplianceFramework string `yaml:"compliance_framework"`

	// Notes is the free-form note emitted in JSON reports
	Notes string `yaml:"notes"`

	// Title is the top-level heading of Markdown reports
	Title string `yaml:"title"`

	// Scope is the paragraph under the Markdown summary heading
	Scope string `yaml:"scope"`

	// NoteItems are the bullets under the Markdown notes heading
	NoteItems []string `yaml:"note_items"`
}
