// Package config provides configuration loading, merging, and validation
// facilities for the web client.
//
// Configuration is assembled from multiple sources. Sources are consulted in
// the following order, and the first source to set a field wins:
//  1. Environment variables (including values loaded from an optional .env
//     file in the working directory)
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The main entry point is [GetConfig], which runs the full chain and returns
// a validated [StructuredConfig].
package config
