package manifest

// FileName is the project file name looked up in the working directory.
const FileName = "fmodlink.yaml"

// Project is the contents of an fmodlink.yaml file. Every field is optional;
// environment variables and flags fill in what the file leaves out.
type Project struct {
	SDKRoot       string   `yaml:"sdk_root,omitempty" json:"sdk_root,omitempty"`
	SDKVersion    string   `yaml:"sdk_version,omitempty" json:"sdk_version,omitempty"`
	Target        string   `yaml:"target,omitempty" json:"target,omitempty"`
	Debug         bool     `yaml:"debug,omitempty" json:"debug,omitempty"`
	Features      []string `yaml:"features,omitempty" json:"features,omitempty"`
	Library       string   `yaml:"library,omitempty" json:"library,omitempty"`
	ExtraIncludes []string `yaml:"extra_includes,omitempty" json:"extra_includes,omitempty"`
	Format        string   `yaml:"format,omitempty" json:"format,omitempty"`
}
