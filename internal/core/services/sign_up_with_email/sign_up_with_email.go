package signupwithemail

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
	Email    c.Email
	Password user.RawPassword
}

type Result struct {
	User user.User
}

type service struct {
	log                     logging.Logger
	unitOfWork              uow.UnitOfWork
	passwordHasher          user.PasswordHasher
	activationCodeGenerator user.ActivationCodeGenerator
	activationCodeTTL       time.Duration
	now                     func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	activationCodeGenerator user.ActivationCodeGenerator,
	activationCodeTTL time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if activationCodeGenerator == nil {
		panic(e.NewNilArgumentError("activationCodeGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if activationCodeTTL <= 0 {
		panic("activation code TTL must be positive")
	}
	return &service{
		log:                     log,
		unitOfWork:              unitOfWork,
		passwordHasher:          passwordHasher,
		activationCodeGenerator: activationCodeGenerator,
		activationCodeTTL:       activationCodeTTL,
		now:                     now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
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

	_, err = uow.Users().GetByEmail(ctx, input.Email)
	if err == nil {
		s.log.Info(ctx, "User with the email already exists.", logging.Entry("email", input.Email))
		return result, &user.EmailAlreadyExistsError{Email: input.Email}
	}
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if !errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Error(
			ctx,
			"Could not look up user by email.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	now := s.now()
	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:               input.Email,
		PasswordHash:        passwordHash,
		ActivationCode:      s.activationCodeGenerator.GenerateActivationCode(),
		ActivationExpiresAt: now.Add(s.activationCodeTTL),
		CreatedAt:           now,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		// Lost a race against a concurrent sign-up with the same email.
		s.log.Info(ctx, "User with the email already exists.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new user.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New user has been created.",
		logging.Entry("userId", createdUser.ID),
		logging.Entry("email", createdUser.Email),
	)
	return Result{User: createdUser}, nil
}
