package signupwithemail

import (
	"context"
	"errors"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/logging"
	"registration/internal/core/domain/user"
	"registration/internal/core/services"
)

type serviceWithActivationCodeSending struct {
	log    logging.Logger
	sender user.ActivationCodeSender
	inner  services.Service[Input, Result]
}

// NewWithActivationCodeSending delivers the activation code once inner has
// committed the new user. A delivery failure is returned to the caller but
// the user stays stored.
func NewWithActivationCodeSending(
	log logging.Logger,
	sender user.ActivationCodeSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithActivationCodeSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithActivationCodeSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending activation code.", logging.Entry("err", err))
		return result, err
	}

	err = s.sender.SendActivationCode(ctx, result.User)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send activation code.",
			logging.Entry("userId", result.User.ID),
			logging.Entry("email", result.User.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Activation code has been sent to the user.",
		logging.Entry("userId", result.User.ID),
		logging.Entry("expiresAt", result.User.ActivationExpiresAt),
	)
	return result, nil
}
