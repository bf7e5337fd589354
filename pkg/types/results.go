package types

// PatchReport counts what each rewrite rule did during one pass
type PatchReport struct {
	// ProbesDisabled counts commented-out library probes
	ProbesDisabled int `yaml:"probesDisabled" json:"probesDisabled"`
	// PrivateInserted counts synthesized PRIVATE keywords
	PrivateInserted int `yaml:"privateInserted" json:"privateInserted"`
	// PrivateKept counts PRIVATE keywords that were already in place
	PrivateKept int `yaml:"privateKept" json:"privateKept"`
	// PathsInserted counts include directives that received the snappy paths
	PathsInserted int `yaml:"pathsInserted" json:"pathsInserted"`
	// PathsPresent counts include directives that already listed them
	PathsPresent int `yaml:"pathsPresent" json:"pathsPresent"`
	// LinksReplaced counts link directives redirected to the static archive
	LinksReplaced int `yaml:"linksReplaced" json:"linksReplaced"`
	// Changed is true when the output differs from the input
	Changed bool `yaml:"changed" json:"changed"`
}

// PatchResult is returned by the patch command
type PatchResult struct {
	File     string      `yaml:"file" json:"file"`
	Platform Platform    `yaml:"platform" json:"platform"`
	Encoding string      `yaml:"encoding" json:"encoding"`
	DryRun   bool        `yaml:"dryRun" json:"dryRun"`
	Written  bool        `yaml:"written" json:"written"`
	Report   PatchReport `yaml:"report" json:"report"`
	Diff     string      `yaml:"diff,omitempty" json:"diff,omitempty"`
}

// CheckResult is returned by the check command
type CheckResult struct {
	File     string      `yaml:"file" json:"file"`
	Platform Platform    `yaml:"platform" json:"platform"`
	UpToDate bool        `yaml:"upToDate" json:"upToDate"`
	Report   PatchReport `yaml:"report" json:"report"`
	Diff     string      `yaml:"diff,omitempty" json:"diff,omitempty"`
}

// GenConfigResult is returned by the gen-config command
type GenConfigResult struct {
	ConfigContent string   `yaml:"configContent" json:"configContent"`
	FilesWritten  []string `yaml:"filesWritten" json:"filesWritten"`
}
