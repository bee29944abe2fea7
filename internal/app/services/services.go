package services

import (
	"registration/internal/app/deps"
	"registration/internal/core/services"
	activateuser "registration/internal/core/services/activate_user"
	signupwithemail "registration/internal/core/services/sign_up_with_email"
)

type Services struct {
	SignUpWithEmail services.Service[signupwithemail.Input, signupwithemail.Result]
	ActivateUser    services.Service[activateuser.Input, activateuser.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.NewWithActivationCodeSending(
		deps.Logger,
		deps.ActivationCodeSender,
		signupwithemail.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.ActivationCodeGenerator,
			deps.Config.ActivationCodeTTL,
			deps.Now,
		),
	)
	s.ActivateUser = activateuser.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)

	return s
}
