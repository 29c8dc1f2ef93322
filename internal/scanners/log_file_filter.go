package scanners

import "regexp"

var logFilePattern = regexp.MustCompile(`^\d+\.log$`)

// IsLogFile reports whether name is a day log: one or more ASCII digits followed by ".log".
func IsLogFile(name string) bool {
	return logFilePattern.MatchString(name)
}
