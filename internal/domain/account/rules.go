package account

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/BruksfildServices01/connect-marketplace/internal/auth"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/validators"
)

const MinPasswordLength = 8

const (
	MsgEmailTaken       = "user with this email already exists."
	MsgEmailInvalid     = "Enter a valid email address."
	MsgPhoneInvalid     = "Please enter a valid phone number (10-15 digits)."
	MsgCompanyTooShort  = "Company name must be at least 2 characters."
	MsgPreviousPassword = "Previous password is incorrect."
	MsgPasswordMismatch = "Passwords do not match."
	MsgFieldBlank       = "This field may not be blank."
)

func MsgPasswordTooShort() string {
	return fmt.Sprintf("Ensure this field has at least %d characters.", MinPasswordLength)
}

// CheckEmailAvailable validates the address and rejects it when another
// user holds it. excludeUserID is the account being edited, or 0.
func CheckEmailAvailable(ctx context.Context, repo Repository, email string, excludeUserID uint) error {
	if !validators.IsEmailValid(email) {
		return httperr.Invalid("email", MsgEmailInvalid)
	}

	taken, err := repo.EmailTaken(ctx, email, excludeUserID)
	if err != nil {
		return err
	}
	if taken {
		return httperr.Invalid("email", MsgEmailTaken)
	}
	return nil
}

// CheckPasswordChange verifies the previous password first. A wrong previous
// password is reported alone, whatever the new and confirm values are.
func CheckPasswordChange(hasher auth.PasswordHasher, currentHash, previous, next, confirm string) error {
	if !hasher.Verify(currentHash, previous) {
		return httperr.Invalid("previous_password", MsgPreviousPassword)
	}

	v := &httperr.ValidationError{}
	switch {
	case next == "":
		v.Add("new_password", MsgFieldBlank)
	case utf8.RuneCountInString(next) < MinPasswordLength:
		v.Add("new_password", MsgPasswordTooShort())
	}
	if next != confirm {
		v.Add("confirm_password", MsgPasswordMismatch)
	}
	return v.OrNil()
}

// CheckProfileFields validates the optional contact fields shared by
// registration and profile updates. Nil pointers are skipped.
func CheckProfileFields(phone, company *string) error {
	v := &httperr.ValidationError{}
	if phone != nil && !validators.IsPhoneValid(*phone) {
		v.Add("phone_number", MsgPhoneInvalid)
	}
	if company != nil && *company != "" && utf8.RuneCountInString(*company) < 2 {
		v.Add("company_name", MsgCompanyTooShort)
	}
	return v.OrNil()
}
