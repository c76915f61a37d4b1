package wren

// Version is the current wren release, shown by `wren --version`.
const Version = "0.2.0"
