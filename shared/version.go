package shared

// Version of the history agent package.
const Version = "0.1.0"
