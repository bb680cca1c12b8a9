package common

// UnknownStr is the fallback name for values outside their known range.
const UnknownStr = "unknown"
