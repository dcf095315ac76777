package rest

import (
	"context"
	"github.com/heartmarshall/bud-backend/internal/domain"
	authsvc "github.com/heartmarshall/bud-backend/internal/service/auth"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginWithGoogleFunc    func(ctx context.Context, input authsvc.GoogleLoginInput) (*authsvc.AuthResult, error)
	LoginWithPasswordFunc  func(ctx context.Context, input authsvc.LoginPasswordInput) (*authsvc.AuthResult, error)
	LogoutFunc             func(ctx context.Context) error
	RefreshFunc            func(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error)
	RegisterFunc           func(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error)
	ResendVerificationFunc func(ctx context.Context, email string) error
	VerifyEmailFunc        func(ctx context.Context, code string) (*authsvc.AuthResult, error)

	calls struct {
		LoginWithGoogle []struct {
			Ctx   context.Context
			Input authsvc.GoogleLoginInput
		}
		LoginWithPassword []struct {
			Ctx   context.Context
			Input authsvc.LoginPasswordInput
		}
		Logout []struct {
			Ctx context.Context
		}
		Refresh []struct {
			Ctx   context.Context
			Input authsvc.RefreshInput
		}
		Register []struct {
			Ctx   context.Context
			Input authsvc.RegisterInput
		}
		ResendVerification []struct {
			Ctx   context.Context
			Email string
		}
		VerifyEmail []struct {
			Ctx  context.Context
			Code string
		}
	}
	lockLoginWithGoogle    sync.RWMutex
	lockLoginWithPassword  sync.RWMutex
	lockLogout             sync.RWMutex
	lockRefresh            sync.RWMutex
	lockRegister           sync.RWMutex
	lockResendVerification sync.RWMutex
	lockVerifyEmail        sync.RWMutex
}

func (mock *authServiceMock) LoginWithGoogle(ctx context.Context, input authsvc.GoogleLoginInput) (*authsvc.AuthResult, error) {
	if mock.LoginWithGoogleFunc == nil {
		panic("authServiceMock.LoginWithGoogleFunc: method is nil but authService.LoginWithGoogle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.GoogleLoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLoginWithGoogle.Lock()
	mock.calls.LoginWithGoogle = append(mock.calls.LoginWithGoogle, callInfo)
	mock.lockLoginWithGoogle.Unlock()
	return mock.LoginWithGoogleFunc(ctx, input)
}

func (mock *authServiceMock) LoginWithGoogleCalls() []struct {
	Ctx   context.Context
	Input authsvc.GoogleLoginInput
} {
	mock.lockLoginWithGoogle.RLock()
	calls := mock.calls.LoginWithGoogle
	mock.lockLoginWithGoogle.RUnlock()
	return calls
}

func (mock *authServiceMock) LoginWithPassword(ctx context.Context, input authsvc.LoginPasswordInput) (*authsvc.AuthResult, error) {
	if mock.LoginWithPasswordFunc == nil {
		panic("authServiceMock.LoginWithPasswordFunc: method is nil but authService.LoginWithPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.LoginPasswordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLoginWithPassword.Lock()
	mock.calls.LoginWithPassword = append(mock.calls.LoginWithPassword, callInfo)
	mock.lockLoginWithPassword.Unlock()
	return mock.LoginWithPasswordFunc(ctx, input)
}

func (mock *authServiceMock) LoginWithPasswordCalls() []struct {
	Ctx   context.Context
	Input authsvc.LoginPasswordInput
} {
	mock.lockLoginWithPassword.RLock()
	calls := mock.calls.LoginWithPassword
	mock.lockLoginWithPassword.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authServiceMock) Refresh(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.RefreshInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx   context.Context
	Input authsvc.RefreshInput
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *authServiceMock) Register(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input authsvc.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) ResendVerification(ctx context.Context, email string) error {
	if mock.ResendVerificationFunc == nil {
		panic("authServiceMock.ResendVerificationFunc: method is nil but authService.ResendVerification was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockResendVerification.Lock()
	mock.calls.ResendVerification = append(mock.calls.ResendVerification, callInfo)
	mock.lockResendVerification.Unlock()
	return mock.ResendVerificationFunc(ctx, email)
}

func (mock *authServiceMock) ResendVerificationCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockResendVerification.RLock()
	calls := mock.calls.ResendVerification
	mock.lockResendVerification.RUnlock()
	return calls
}

func (mock *authServiceMock) VerifyEmail(ctx context.Context, code string) (*authsvc.AuthResult, error) {
	if mock.VerifyEmailFunc == nil {
		panic("authServiceMock.VerifyEmailFunc: method is nil but authService.VerifyEmail was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{
		Ctx:  ctx,
		Code: code,
	}
	mock.lockVerifyEmail.Lock()
	mock.calls.VerifyEmail = append(mock.calls.VerifyEmail, callInfo)
	mock.lockVerifyEmail.Unlock()
	return mock.VerifyEmailFunc(ctx, code)
}

func (mock *authServiceMock) VerifyEmailCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockVerifyEmail.RLock()
	calls := mock.calls.VerifyEmail
	mock.lockVerifyEmail.RUnlock()
	return calls
}
