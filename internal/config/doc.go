// Package config defines the format-agnostic settings model for the sampler
// and the Loader interface for reading it from a file. The concrete HCL
// implementation lives in the hclconf package.
package config
