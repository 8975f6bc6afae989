// Package hclconf implements config.Loader for HCL settings files.
//
// A settings file holds one optional settings block:
//
//	settings {
//	  log_level  = "debug"
//	  log_format = "json"
//	  skip       = [3, 7]
//	}
//
// Attribute expressions may reference the process environment through the
// env object, e.g. log_format = env.SAMPLER_LOG_FORMAT.
package hclconf
