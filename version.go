package dateconv

// Version is the module release version
const Version = "0.1.0"
