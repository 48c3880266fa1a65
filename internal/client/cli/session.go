package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/gophcal/internal/client/auth"
)

func (c *Cli) runSignUp(ctx context.Context) error {
	c.io.Println("=== Sign Up ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	name, err := c.io.ReadInput("Display name (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read display name: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return ErrPasswordMismatch
	}

	c.io.Println()
	c.io.Println("Creating account...")

	res := c.session.SignUp(ctx, auth.Credentials{
		Email:       email,
		Password:    password,
		DisplayName: name,
	})
	if !res.Success {
		return resultError(res)
	}

	c.printSignedIn("Account created", res)
	return nil
}

func (c *Cli) runLogin(ctx context.Context, email string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	if email == "" {
		var err error
		email, err = c.io.ReadInput("Email: ")
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	res := c.session.SignIn(ctx, auth.KindPassword, auth.Credentials{Email: email, Password: password})
	if !res.Success {
		return resultError(res)
	}

	c.printSignedIn("Login successful", res)
	return nil
}

// runSocialLogin Apple и Kakao не принимают учетных данных
func (c *Cli) runSocialLogin(ctx context.Context, kind auth.Kind) error {
	c.io.Printf("=== Login with %s ===\n\n", providerTitle(kind))

	res := c.session.SignIn(ctx, kind, auth.Credentials{})
	if !res.Success {
		if errors.Is(res.Err, auth.ErrCanceled) {
			c.io.Println("Login canceled.")
			return nil
		}
		return resultError(res)
	}

	c.printSignedIn("Login successful", res)
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	ok := c.session.LogoutAll(ctx)
	// события вышедшего пользователя не должны остаться в кэше
	c.calendar.Reset()
	if !ok {
		return errors.New("logout failed, local credentials may remain")
	}
	c.io.Println("✓ Signed out of all providers")
	return nil
}

func (c *Cli) runStatus(ctx context.Context, format string) error {
	status := c.session.CheckIntegratedStatus(ctx)

	view := statusView{
		LoggedIn: status.LoggedIn,
		Password: status.Password,
		Apple:    status.Apple,
		Kakao:    status.Kakao,
	}
	if status.LoggedIn {
		view.Active = status.Active.String()
	}
	return c.render(format, lookup("status"), view, view)
}

func (c *Cli) runWhoAmI(ctx context.Context, format string) error {
	info := c.session.IntegratedUserInfo(ctx)
	if info == nil {
		c.io.Println("Not signed in.")
		c.io.Println("Run 'gophcal login' to authenticate.")
		return nil
	}

	view := userView{
		Provider:    info.Kind.String(),
		ID:          info.ID,
		UID:         info.UID,
		DisplayName: info.DisplayName,
		Email:       info.Email,
		PhotoURL:    info.PhotoURL,
	}
	return c.render(format, lookup("user"), view, view)
}

func (c *Cli) printSignedIn(title string, res auth.Result) {
	c.io.Println()
	c.io.Printf("✓ %s!\n", title)
	if res.Identity == nil {
		return
	}
	c.io.Printf("Signed in as: %s (%s)\n", auth.ResolveDisplayName(res.Identity), res.Identity.Kind)
}

func providerTitle(kind auth.Kind) string {
	switch kind {
	case auth.KindApple:
		return "Apple"
	case auth.KindKakao:
		return "Kakao"
	default:
		return "email"
	}
}
