// Package ucd builds runemap property maps from the Unicode tables shipped
// with the Go standard library and from uniseg display widths.
package ucd
