package notifier

import (
	"context"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/logging"
	"registration/internal/core/domain/user"
)

// Log stands in for a real mail transport: the activation code is written
// to the application log.
type Log struct {
	log logging.Logger
}

func NewLog(log logging.Logger) *Log {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Log{log: log}
}

func (n *Log) SendActivationCode(ctx context.Context, u user.User) error {
	n.log.Info(
		ctx,
		"Activation code issued.",
		logging.Entry("email", u.Email),
		logging.Entry("code", string(u.ActivationCode)),
		logging.Entry("expiresAt", u.ActivationExpiresAt),
	)
	return nil
}
