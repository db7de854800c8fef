// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for finding .hcl run files, decoding their
// `contraption` blocks and translating them into the format-agnostic model.
package hcl
