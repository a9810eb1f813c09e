package main

// Version is the release tag stamped into the startup log line.
const Version = "0.4.0"
