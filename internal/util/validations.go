package util

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// IsNotEmpty checks if value stored at given key is empty.
// if it is empty it returns an error.
func IsNotEmpty(value interface{}, key string) error {
	s, ok := value.(string)
	if !ok {
		return errors.Errorf("Value for %s needs to be a string.", key)
	}

	if len(s) == 0 {
		return errors.Errorf("Value for %s cannot be empty.", key)
	}
	return nil
}

// IsInt checks if values stored at a given key is an int.
func IsInt(value interface{}, key string) error {
	_, err := strconv.Atoi(value.(string))
	if err != nil {
		return errors.Errorf("Value for %s needs to be an integer.", key)
	}
	return nil
}

// IsBool checks if value stored at a given key is a bool.
func IsBool(value interface{}, key string) error {
	_, err := strconv.ParseBool(value.(string))
	if err != nil {
		return errors.Errorf("Value for %s needs to be a bool.", key)
	}
	return nil
}

// IsCommaSeparatedList checks that the value is a string whose non-empty
// comma-separated entries contain no surrounding whitespace. The empty
// string is a valid (empty) list.
func IsCommaSeparatedList(value interface{}, key string) error {
	s, ok := value.(string)
	if !ok {
		return errors.Errorf("Value for %s needs to be a string.", key)
	}
	if s == "" {
		return nil
	}
	for _, entry := range strings.Split(s, ",") {
		if entry == "" || entry != strings.TrimSpace(entry) {
			return errors.Errorf("Value for %s needs to be a comma separated list without blanks.", key)
		}
	}
	return nil
}
