package activateuser

import (
	"context"
	"errors"
	c "registration/internal/core/domain/common"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/logging"
	uow "registration/internal/core/domain/unit_of_work"
	"registration/internal/core/domain/user"
	"registration/internal/core/services"
	"time"
)

type Input struct {
	Email          c.Email
	Password       user.RawPassword
	ActivationCode user.ActivationCode
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	uow            uow.UnitOfWork
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	uow uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if uow == nil {
		panic(e.NewNilArgumentError("uow"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		uow:            uow,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.uow.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	u, err := uow.Users().GetByEmail(ctx, input.Email)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, &user.CredentialsError{Err: user.ErrInvalidEmail, Email: input.Email}
	}
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by email.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	// The order of the checks below is observable by callers.
	if err := s.check(u, input); err != nil {
		s.log.Info(
			ctx,
			"User activation rejected.",
			logging.Entry("userId", u.ID),
			logging.Entry("reason", err),
		)
		return result, err
	}

	activatedUser, err := uow.Users().Activate(ctx, u.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not activate user.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User successfully activated.", logging.Entry("userId", activatedUser.ID))
	return Result{User: activatedUser}, nil
}

func (s *service) check(u user.User, input Input) error {
	if !s.passwordHasher.ValidatePassword(input.Password, u.PasswordHash) {
		return &user.CredentialsError{Err: user.ErrInvalidPassword, Email: input.Email}
	}
	if u.IsActive {
		return &user.UserAlreadyActivatedError{Email: u.Email}
	}
	if input.ActivationCode != u.ActivationCode {
		return &user.InvalidActivationCodeError{Code: input.ActivationCode}
	}
	if u.IsActivationCodeExpired(s.now()) {
		return &user.ExpiredActivationCodeError{Code: input.ActivationCode}
	}
	return nil
}
