// Package razorgen holds module-wide metadata for the razorgen tool.
package razorgen

// Version is the current razorgen release.
const Version = "0.1.0"
