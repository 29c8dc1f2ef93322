package configs

import (
	"fmt"

	"log-reader/internal/shared/svcerrors"
)

const (
	codeConfigInvalid = "CFG_1000"
)

// errConfigInvalid returns an error when the configuration cannot be read or does not validate.
func errConfigInvalid(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeConfigInvalid, msg, cause)
}

func errConfigUnreadable(configPath string, cause error) *svcerrors.ServiceError {
	return errConfigInvalid(fmt.Sprintf("failed to read config file %q", configPath), cause)
}
