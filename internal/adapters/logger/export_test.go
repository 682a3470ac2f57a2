package logger

var FormatErrorEntries = formatErrorEntries
