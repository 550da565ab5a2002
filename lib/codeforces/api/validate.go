package api

import (
	"fmt"

	"codeforces-client/lib/codeforces/cferr"
	"codeforces-client/lib/codeforces/signer"
)

const (
	MaxHandles           = 10000
	MaxRecentStatusCount = 1000
	MaxRecentActions     = 100
)

func requireId(name string, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be a positive id, got %d", cferr.ErrMissingArgument, name, id)
	}
	return nil
}

func requireHandle(name, handle string) error {
	if handle == "" {
		return fmt.Errorf("%w: %s must not be empty", cferr.ErrMissingArgument, name)
	}
	return nil
}

func checkHandles(name string, handles []string) error {
	if len(handles) > MaxHandles {
		return fmt.Errorf(
			"%w: %s holds %d handles, at most %d are allowed",
			cferr.ErrOverflow, name, len(handles), MaxHandles,
		)
	}
	for i, h := range handles {
		if h == "" {
			return fmt.Errorf("%w: %s[%d] is empty", cferr.ErrMissingArgument, name, i)
		}
	}
	return nil
}

func checkNonNegative(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", cferr.ErrInvalidArgument, name, value)
	}
	return nil
}

// checkCount validates a required count that must lie in [1, max].
func checkCount(name string, value, max int) error {
	switch {
	case value == 0:
		return fmt.Errorf("%w: %s is required", cferr.ErrMissingArgument, name)
	case value < 0:
		return fmt.Errorf("%w: %s must be positive, got %d", cferr.ErrInvalidArgument, name, value)
	case value > max:
		return fmt.Errorf("%w: %s must be at most %d, got %d", cferr.ErrOverflow, name, max, value)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// optional parameters are left out entirely at their zero value

func setInt(fields signer.Fields, key string, value int) {
	if value != 0 {
		fields[key] = signer.Int(value)
	}
}

func setString(fields signer.Fields, key, value string) {
	if value != "" {
		fields[key] = signer.String(value)
	}
}

func setList(fields signer.Fields, key string, values []string) {
	if len(values) > 0 {
		fields[key] = signer.List(values...)
	}
}

func setFlag(fields signer.Fields, key string, value bool) {
	if value {
		fields[key] = signer.Bool(true)
	}
}
