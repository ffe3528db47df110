package brio

// Version is the library/CLI release identifier.
const Version = "0.2.0"
