package main

// Version is the version of the rnversion CLI. Release builds override it
// with -ldflags "-X main.Version=...".
var Version = "1.0.0"
