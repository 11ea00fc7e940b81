// Package manifest handles parsing and validation of fmodlink.yaml project
// files. Validation runs against the JSON schema embedded from
// schema/project.schema.json.
package manifest
